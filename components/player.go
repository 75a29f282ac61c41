package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData holds first-person controller state. The cutter clears the
// enabled flags while a minigame session is running.
type PlayerData struct {
	MoveEnabled bool
	LookEnabled bool
	Yaw         float64 // degrees about the up axis
	Pitch       float64 // degrees, camera only
	Sprinting   bool

	VelocityY float64
	Grounded  bool
}

var Player = donburi.NewComponentType[PlayerData]()
