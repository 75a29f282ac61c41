package components

import (
	cfg "github.com/automoto/timber/config"
	"github.com/yohamta/donburi"
)

// RenderableData names the model a renderer would draw for an entity
type RenderableData struct {
	Prefab  cfg.PrefabID
	Model   string
	Visible bool
}

var Renderable = donburi.NewComponentType[RenderableData]()
