package factory

import (
	"github.com/automoto/timber/archetypes"
	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the spatial index covering the forest floor.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(cfg.Space.Width, cfg.Space.Height, cfg.Space.CellSize, cfg.Space.CellSize)
	components.Space.Set(space, spaceData)
	return space
}

// WorldToSpace maps a world position onto the 2D index (X stays X, Z becomes Y).
func WorldToSpace(pos mgl64.Vec3) (x, y float64) {
	return pos[0] - cfg.Space.OriginX, pos[2] - cfg.Space.OriginZ
}

// InSpace reports whether a world position lies inside the indexed area.
func InSpace(pos mgl64.Vec3) bool {
	x, y := WorldToSpace(pos)
	return x >= 0 && y >= 0 && x < float64(cfg.Space.Width) && y < float64(cfg.Space.Height)
}
