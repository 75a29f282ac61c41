package mathutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClampFloat(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{-1, 0, 1, 0},
		{0.5, 0, 1, 0.5},
		{2, 0, 1, 1},
	}
	for _, tt := range tests {
		if got := ClampFloat(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampFloat(%f, %f, %f) = %f, want %f", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestSafeNormalize(t *testing.T) {
	n, ok := SafeNormalize(mgl64.Vec3{3, 0, 4}, 0.01)
	if !ok {
		t.Fatal("expected a valid direction")
	}
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("expected unit length, got %f", n.Len())
	}

	if _, ok := SafeNormalize(mgl64.Vec3{}, 0.01); ok {
		t.Error("zero vector should be rejected")
	}
	if _, ok := SafeNormalize(mgl64.Vec3{0.05, 0, 0.05}, 0.01); ok {
		t.Error("vector below the threshold should be rejected")
	}
}

func TestYawRotationTurnsForward(t *testing.T) {
	got := YawRotation(90).Rotate(Forward)
	want := mgl64.Vec3{1, 0, 0}
	if got.Sub(want).Len() > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGroundDistanceIgnoresHeight(t *testing.T) {
	d := GroundDistance(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{3, -2, 4})
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("expected 5, got %f", d)
	}
}
