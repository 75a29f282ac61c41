package components

import (
	"github.com/automoto/timber/mathutil"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's world position and orientation.
// +Y is up and the local facing axis is +Z.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Forward returns the facing direction.
func (t *TransformData) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(mathutil.Forward)
}

// Backward returns the direction opposite the facing.
func (t *TransformData) Backward() mgl64.Vec3 {
	return t.Forward().Mul(-1)
}

var Transform = donburi.NewComponentType[TransformData]()
