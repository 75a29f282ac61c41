package systems

import (
	"github.com/automoto/timber/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MarkDespawn flags an entity for removal at the end of the frame.
func MarkDespawn(e *donburi.Entry, reason string) {
	if !e.Valid() {
		return
	}
	if !e.HasComponent(components.Despawn) {
		e.AddComponent(components.Despawn)
	}
	components.Despawn.SetValue(e, components.DespawnData{Reason: reason})
}

// UpdateDespawn removes every entity marked during the frame, along with its
// footprint in the spatial index. Must run last.
func UpdateDespawn(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry
	components.Despawn.Each(ecs.World, func(e *donburi.Entry) {
		toDestroy = append(toDestroy, e)
	})
	if len(toDestroy) == 0 {
		return
	}

	spaceEntry, hasSpace := components.Space.First(ecs.World)
	for _, e := range toDestroy {
		if hasSpace && e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
		ecs.World.Remove(e.Entity())
	}
}
