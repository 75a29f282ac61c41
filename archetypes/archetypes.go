package archetypes

import (
	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/automoto/timber/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Minigame,
		components.Cutter,
	)
	Tree = newArchetype(
		tags.Tree,
		components.Tree,
		components.Health,
		components.Transform,
		components.Object,
		components.Highlight,
		components.Renderable,
	)
	Byproduct = newArchetype(
		components.Byproduct,
		components.Transform,
		components.Renderable,
	)
	Space = newArchetype(
		components.Space,
	)
	Input = newArchetype(
		components.Input,
	)
	Feedback = newArchetype(
		components.Feedback,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
