package components

import "github.com/yohamta/donburi"

// DespawnData marks an entity for removal in the end-of-frame sweep.
// Entities never remove themselves mid-update.
type DespawnData struct {
	Reason string
}

var Despawn = donburi.NewComponentType[DespawnData]()
