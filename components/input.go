package components

import (
	cfg "github.com/automoto/timber/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus this frame's look delta. JustPressed/JustReleased are computed
// on demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LookX, LookY    float64 // cursor movement since last frame, pixels
	LastCursorX     int
	LastCursorY     int
	CursorTracked   bool
	LastInputMethod InputMethod
}

// Action returns the full ActionState for an action ID.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
