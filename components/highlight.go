package components

import "github.com/yohamta/donburi"

// HighlightData marks the tree currently targeted by the cutter
type HighlightData struct {
	On bool
}

var Highlight = donburi.NewComponentType[HighlightData]()
