package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its footprint in the spatial index
type ObjectData struct {
	*resolv.Object
}

// FootprintCenter returns the footprint center in space coordinates.
func (o *ObjectData) FootprintCenter() (x, y float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton spatial index holding every cuttable footprint.
var Space = donburi.NewComponentType[resolv.Space]()
