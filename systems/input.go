package systems

import (
	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Right stick look speed in cursor pixels per frame at full tilt
const stickLookScale = 12.0

// UpdateInput polls raw input and updates the input singleton.
// Must run BEFORE UpdateMovement and UpdateCutter in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.LookX, input.LookY = 0, 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	if pollSticks(input, gamepadIDs) {
		gamepadUsed = true
	}
	pollCursor(input)

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// pollCursor turns cursor movement since last frame into a look delta.
// The first frame only records the cursor so the view doesn't jump.
func pollCursor(input *components.InputData) {
	x, y := ebiten.CursorPosition()
	if input.CursorTracked {
		input.LookX += float64(x - input.LastCursorX)
		input.LookY += float64(y - input.LastCursorY)
	}
	input.LastCursorX, input.LastCursorY = x, y
	input.CursorTracked = true
}

// pollSticks merges the left stick into movement actions and the right stick
// into the look delta. Reports whether any stick left its deadzone.
func pollSticks(input *components.InputData, gamepads []ebiten.GamepadID) bool {
	deadzone := cfg.Input.AnalogDeadzone
	used := false

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		lx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if lx < -deadzone {
			input.Current[cfg.ActionMoveLeft] = true
			used = true
		}
		if lx > deadzone {
			input.Current[cfg.ActionMoveRight] = true
			used = true
		}
		if ly < -deadzone {
			input.Current[cfg.ActionMoveForward] = true
			used = true
		}
		if ly > deadzone {
			input.Current[cfg.ActionMoveBack] = true
			used = true
		}

		rx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)
		if rx < -deadzone || rx > deadzone {
			input.LookX += rx * stickLookScale
			used = true
		}
		if ry < -deadzone || ry > deadzone {
			input.LookY += ry * stickLookScale
			used = true
		}
	}

	return used
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
