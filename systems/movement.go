package systems

import (
	"math"

	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/automoto/timber/mathutil"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement applies look, walk and jump input to the player for one
// frame. Look and walk are skipped while the cutter has them disabled; gravity
// always applies.
func UpdateMovement(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	dt := cfg.C.FrameDelta()

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		transform := components.Transform.Get(e)
		if player.LookEnabled {
			ApplyLook(player, transform, input, dt)
		}
		if player.MoveEnabled {
			ApplyMove(player, transform, input, dt)
		} else {
			player.Sprinting = false
		}
		ApplyVertical(player, transform, input, dt)
	})
}

// ApplyLook turns the player by the frame's look delta and key turning.
// Pitch is clamped and only affects the camera, not the facing used for hits.
func ApplyLook(player *components.PlayerData, transform *components.TransformData, input *components.InputData, dt float64) {
	sens := cfg.Player.MouseSensitivity
	player.Yaw -= input.LookX * sens
	player.Pitch = mathutil.ClampFloat(player.Pitch-input.LookY*sens, -cfg.Player.MaxPitch, cfg.Player.MaxPitch)

	if input.Action(cfg.ActionTurnLeft).Pressed {
		player.Yaw += cfg.Player.KeyTurnSpeed * dt
	}
	if input.Action(cfg.ActionTurnRight).Pressed {
		player.Yaw -= cfg.Player.KeyTurnSpeed * dt
	}

	transform.Rotation = mathutil.YawRotation(player.Yaw)
}

// ApplyMove walks the player along the ground relative to its facing.
func ApplyMove(player *components.PlayerData, transform *components.TransformData, input *components.InputData, dt float64) {
	forward := mathutil.Flatten(transform.Forward())
	right := forward.Cross(mathutil.Up)

	var wish mgl64.Vec3
	if input.Action(cfg.ActionMoveForward).Pressed {
		wish = wish.Add(forward)
	}
	if input.Action(cfg.ActionMoveBack).Pressed {
		wish = wish.Sub(forward)
	}
	if input.Action(cfg.ActionMoveRight).Pressed {
		wish = wish.Add(right)
	}
	if input.Action(cfg.ActionMoveLeft).Pressed {
		wish = wish.Sub(right)
	}

	player.Sprinting = input.Action(cfg.ActionSprint).Pressed && player.Grounded
	dir, ok := mathutil.SafeNormalize(wish, 1e-6)
	if !ok {
		return
	}

	speed := cfg.Player.WalkSpeed
	if player.Sprinting {
		speed = cfg.Player.SprintSpeed
	}
	transform.Position = transform.Position.Add(dir.Mul(speed * dt))
}

// ApplyVertical integrates gravity and jumping against the flat ground plane.
// Jumps need the player grounded and movement enabled.
func ApplyVertical(player *components.PlayerData, transform *components.TransformData, input *components.InputData, dt float64) {
	ground := cfg.Player.GroundHeight
	if player.Grounded && player.VelocityY < 0 {
		player.VelocityY = 0
	}

	if player.Grounded && player.MoveEnabled && input.Action(cfg.ActionJump).JustPressed {
		player.VelocityY = math.Sqrt(cfg.Player.JumpHeight * -2 * cfg.Player.Gravity)
	}

	player.VelocityY += cfg.Player.Gravity * dt
	y := transform.Position.Y() + player.VelocityY*dt
	if y <= ground {
		y = ground
		player.VelocityY = 0
		player.Grounded = true
	} else {
		player.Grounded = false
	}
	transform.Position[1] = y
}
