package factory

import (
	"fmt"

	"github.com/automoto/timber/archetypes"
	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/automoto/timber/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnByproduct places a stump, trunk or logs prefab in the world.
func SpawnByproduct(ecs *ecs.ECS, id cfg.PrefabID, pos mgl64.Vec3, rot mgl64.Quat) (*donburi.Entry, error) {
	prefab, ok := cfg.Prefabs[id]
	if !ok {
		return nil, fmt.Errorf("byproduct prefab %q: %w", id, ErrUnknownPrefab)
	}

	var kindTag donburi.IComponentType
	switch prefab.Kind {
	case cfg.PrefabKindStump:
		kindTag = tags.Stump
	case cfg.PrefabKindTrunk:
		kindTag = tags.Trunk
	case cfg.PrefabKindLogs:
		kindTag = tags.Logs
	default:
		return nil, fmt.Errorf("prefab %q is not a byproduct", id)
	}

	e := archetypes.Byproduct.Spawn(ecs, kindTag)
	components.Byproduct.SetValue(e, components.ByproductData{Kind: prefab.Kind})
	components.Transform.SetValue(e, components.TransformData{
		Position: pos,
		Rotation: rot,
	})
	components.Renderable.SetValue(e, components.RenderableData{
		Prefab:  id,
		Model:   prefab.Model,
		Visible: true,
	})
	return e, nil
}
