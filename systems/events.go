package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TreeFelledEvent is published once when a tree finishes its fall. It is
// delivered at the end of the same AdvanceTrees call, while Tree is still in
// the world and Dead; the despawn sweep removes it afterwards.
type TreeFelledEvent struct {
	Tree donburi.Entity
}

var TreeFelled = events.NewEventType[TreeFelledEvent]()

// RegisterCutterEvents subscribes the cutter's felled handler to the world.
// Call once per world.
func RegisterCutterEvents(w donburi.World) {
	TreeFelled.Subscribe(w, onTreeFelled)
}
