package factory

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/timber/archetypes"
	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/automoto/timber/mathutil"
	"github.com/automoto/timber/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrUnknownPrefab = errors.New("unknown prefab")
	ErrNoSpace       = errors.New("no spatial index in world")
)

// CreateTree spawns an intact tree at full health and registers its
// footprint in the spatial index. Every prefab the tree refers to must be
// in the catalog; byproduct prefabs may be left empty.
func CreateTree(ecs *ecs.ECS, pos mgl64.Vec3, yaw float64, tuning cfg.TreeConfig) (*donburi.Entry, error) {
	prefab, ok := cfg.Prefabs[tuning.Prefab]
	if !ok {
		return nil, fmt.Errorf("tree prefab %q: %w", tuning.Prefab, ErrUnknownPrefab)
	}
	for _, id := range []cfg.PrefabID{tuning.StumpPrefab, tuning.TrunkPrefab, tuning.LogsPrefab} {
		if id == cfg.PrefabNone {
			continue
		}
		if _, ok := cfg.Prefabs[id]; !ok {
			return nil, fmt.Errorf("byproduct prefab %q: %w", id, ErrUnknownPrefab)
		}
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, ErrNoSpace
	}
	space := components.Space.Get(spaceEntry)

	if !InSpace(pos) {
		log.Printf("Warning: tree at %v is outside the spatial index and cannot be targeted", pos)
	}

	tree := archetypes.Tree.Spawn(ecs)

	components.Tree.SetValue(tree, components.TreeData{
		State:  components.TreeIntact,
		Tuning: tuning,
	})
	components.Health.SetValue(tree, components.HealthData{
		Current: tuning.MaxHealth,
		Max:     tuning.MaxHealth,
	})
	components.Transform.SetValue(tree, components.TransformData{
		Position: pos,
		Rotation: mathutil.YawRotation(yaw),
	})
	components.Renderable.SetValue(tree, components.RenderableData{
		Prefab:  tuning.Prefab,
		Model:   prefab.Model,
		Visible: true,
	})

	size := tuning.CollisionSize
	sx, sy := WorldToSpace(pos)
	obj := resolv.NewObject(sx-size/2, sy-size/2, size, size, tags.ResolvCuttable, tags.ResolvTree)
	obj.Data = tree.Entity()
	components.Object.SetValue(tree, components.ObjectData{Object: obj})
	space.Add(obj)

	return tree, nil
}
