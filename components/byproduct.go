package components

import (
	cfg "github.com/automoto/timber/config"
	"github.com/yohamta/donburi"
)

// ByproductData is attached to entities spawned from a felled tree
// (stump, falling trunk, logs).
type ByproductData struct {
	Kind cfg.PrefabKind
}

var Byproduct = donburi.NewComponentType[ByproductData]()
