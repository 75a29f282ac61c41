// Package mathutil holds small float and vector helpers shared by systems.
package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// Up is the world up axis.
	Up = mgl64.Vec3{0, 1, 0}
	// Forward is the local facing axis of every transform.
	Forward = mgl64.Vec3{0, 0, 1}
)

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Flatten projects v onto the ground plane.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// SafeNormalize returns v scaled to unit length. ok is false, and the zero
// vector is returned, when v's squared length is below minSq.
func SafeNormalize(v mgl64.Vec3, minSq float64) (n mgl64.Vec3, ok bool) {
	lsq := v.LenSqr()
	if lsq < minSq || lsq == 0 {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / math.Sqrt(lsq)), true
}

// YawRotation returns a rotation of deg degrees about the up axis.
func YawRotation(deg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), Up)
}

// AxisAngle returns a rotation of deg degrees about axis.
func AxisAngle(deg float64, axis mgl64.Vec3) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), axis)
}

// GroundDistance is the straight-line distance between a and b ignoring height.
func GroundDistance(a, b mgl64.Vec3) float64 {
	dx := a[0] - b[0]
	dz := a[2] - b[2]
	return math.Sqrt(dx*dx + dz*dz)
}
