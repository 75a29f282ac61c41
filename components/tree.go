package components

import (
	cfg "github.com/automoto/timber/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TreeState is the felling state of a cuttable tree
type TreeState int

const (
	TreeIntact TreeState = iota
	TreeBeingCut
	TreeFalling
	TreeDead
)

func (s TreeState) String() string {
	switch s {
	case TreeIntact:
		return "Intact"
	case TreeBeingCut:
		return "BeingCut"
	case TreeFalling:
		return "Falling"
	case TreeDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// TreeData holds a tree's felling state. Health lives in HealthData.
type TreeData struct {
	State          TreeState
	AccumulatedDir mgl64.Vec3 // sum of every hit direction, picks the fall direction

	// Fall animation, filled in once when the tree starts falling
	FallTimer float64
	FallDir   mgl64.Vec3
	Axis      mgl64.Vec3
	StartRot  mgl64.Quat
	LeanRot   mgl64.Quat
	EndRot    mgl64.Quat
	LeanTween *gween.Tween
	FallTween *gween.Tween

	// Trunk is the spawned cut trunk that carries the fall rotation.
	// When HasTrunk is false the tree animates itself.
	Trunk    donburi.Entity
	HasTrunk bool

	Tuning cfg.TreeConfig
}

// CanBeCut reports whether the tree still accepts hits.
func (t *TreeData) CanBeCut() bool {
	return t.State == TreeIntact || t.State == TreeBeingCut
}

// TotalFallDuration is the combined length of the lean, fall and settle phases.
func (t *TreeData) TotalFallDuration() float64 {
	return t.Tuning.LeanDuration + t.Tuning.FallDuration + t.Tuning.SettleDuration
}

var Tree = donburi.NewComponentType[TreeData]()
