package systems

import (
	"log"
	"math"

	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/automoto/timber/mathutil"
	"github.com/automoto/timber/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartCutting marks an intact tree as being cut.
func StartCutting(e *donburi.Entry) {
	tree := components.Tree.Get(e)
	if tree.State == components.TreeIntact {
		tree.State = components.TreeBeingCut
	}
}

// StopCutting returns a tree that is being cut to intact. Other states are left alone.
func StopCutting(e *donburi.Entry) {
	tree := components.Tree.Get(e)
	if tree.State == components.TreeBeingCut {
		tree.State = components.TreeIntact
	}
}

// CanBeCut reports whether the tree still accepts hits.
func CanBeCut(e *donburi.Entry) bool {
	return components.Tree.Get(e).CanBeCut()
}

// HealthFraction returns the tree's remaining health in [0, 1].
func HealthFraction(e *donburi.Entry) float64 {
	return components.Health.Get(e).Fraction()
}

// ApplyTreeDamage deals a hit coming from hitDir. The hit direction is
// accumulated to choose where the tree falls, and a hit cue fires at the
// impact point. Trees that are falling or dead ignore hits.
func ApplyTreeDamage(ecs *ecs.ECS, e *donburi.Entry, amount int, hitDir mgl64.Vec3, perfect bool) {
	tree := components.Tree.Get(e)
	if !tree.CanBeCut() {
		return
	}

	health := components.Health.Get(e)
	health.Current -= amount
	tree.AccumulatedDir = tree.AccumulatedDir.Add(hitDir)

	transform := components.Transform.Get(e)
	cue := cfg.CueHit
	if perfect {
		cue = cfg.CuePerfectHit
	}
	PlayCue(ecs, cue, impactPoint(transform.Position, hitDir, &tree.Tuning))

	if health.Current <= 0 {
		startFalling(ecs, e)
	}
}

// impactPoint is where the axe meets the trunk: cut height above the base,
// nudged sideways across the hit direction.
func impactPoint(base, hitDir mgl64.Vec3, tuning *cfg.TreeConfig) mgl64.Vec3 {
	p := base.Add(mathutil.Up.Mul(tuning.CutHeight))
	flat, ok := mathutil.SafeNormalize(mathutil.Flatten(hitDir), tuning.MinFallDirSq)
	if !ok {
		return p
	}
	side := mathutil.Up.Cross(flat)
	return p.Add(side.Mul(tuning.ImpactSideOffset))
}

// fallDirection picks the horizontal direction the tree falls toward:
// the accumulated hit direction, or the tree's backward facing when hits
// cancelled out or never happened.
func fallDirection(accumulated mgl64.Vec3, transform *components.TransformData, minSq float64) mgl64.Vec3 {
	backward, ok := mathutil.SafeNormalize(mathutil.Flatten(transform.Backward()), minSq)
	if !ok {
		backward = mathutil.Forward.Mul(-1)
	}

	dir, ok := mathutil.SafeNormalize(accumulated, minSq)
	if !ok {
		return backward
	}
	flat, ok := mathutil.SafeNormalize(mathutil.Flatten(dir), minSq)
	if !ok {
		return backward
	}
	return flat
}

func startFalling(ecs *ecs.ECS, e *donburi.Entry) {
	tree := components.Tree.Get(e)
	tuning := &tree.Tuning
	transform := components.Transform.Get(e)
	base := transform.Position
	start := transform.Rotation

	tree.State = components.TreeFalling
	tree.FallTimer = 0
	components.Highlight.Get(e).On = false

	if tuning.StumpPrefab != cfg.PrefabNone {
		if _, err := factory.SpawnByproduct(ecs, tuning.StumpPrefab, base, start); err != nil {
			log.Printf("Warning: failed to spawn stump: %v", err)
		}
	}

	tree.HasTrunk = false
	if tuning.TrunkPrefab != cfg.PrefabNone {
		trunk, err := factory.SpawnByproduct(ecs, tuning.TrunkPrefab, base, start)
		if err != nil {
			log.Printf("Warning: failed to spawn falling trunk, animating tree instead: %v", err)
		} else {
			tree.Trunk = trunk.Entity()
			tree.HasTrunk = true
		}
	}
	// Without a trunk the tree itself falls, so it stays visible.
	if tree.HasTrunk {
		components.Renderable.Get(e).Visible = false
	}

	tree.FallDir = fallDirection(tree.AccumulatedDir, transform, tuning.MinFallDirSq)
	tree.Axis = mathutil.Up.Cross(tree.FallDir)
	tree.StartRot = start
	tree.LeanRot = mathutil.AxisAngle(tuning.LeanAngle, tree.Axis).Mul(start)
	tree.EndRot = mathutil.AxisAngle(tuning.FallAngle, tree.Axis).Mul(start)
	tree.LeanTween = gween.New(0, 1, float32(tuning.LeanDuration), ease.OutQuad)
	tree.FallTween = gween.New(0, 1, float32(tuning.FallDuration), ease.InQuad)

	PlayCue(ecs, cfg.CueTreeFall, base)
}

// UpdateTrees advances every falling tree by one frame.
func UpdateTrees(ecs *ecs.ECS) {
	AdvanceTrees(ecs, cfg.C.FrameDelta())
}

// AdvanceTrees advances every falling tree by dt seconds and finishes the
// ones whose fall has run its full length.
func AdvanceTrees(ecs *ecs.ECS, dt float64) {
	var falling []*donburi.Entry
	components.Tree.Each(ecs.World, func(e *donburi.Entry) {
		if components.Tree.Get(e).State == components.TreeFalling {
			falling = append(falling, e)
		}
	})

	for _, e := range falling {
		tree := components.Tree.Get(e)
		if dt > 0 {
			tree.FallTimer += dt
		}
		if tree.FallTimer >= tree.TotalFallDuration() {
			setFallRotation(ecs.World, e, tree.EndRot)
			completeFall(ecs, e)
			continue
		}
		setFallRotation(ecs.World, e, FallRotation(tree, tree.FallTimer))
	}

	// Deliver felled notifications while the dead trees are still in the world
	TreeFelled.ProcessEvents(ecs.World)
}

// FallRotation returns the falling trunk's orientation t seconds into the fall.
func FallRotation(tree *components.TreeData, t float64) mgl64.Quat {
	lean := tree.Tuning.LeanDuration
	fall := tree.Tuning.FallDuration
	settle := tree.Tuning.SettleDuration

	switch {
	case t <= 0:
		return tree.StartRot
	case t < lean:
		// Eased out: quick crack, then slowing
		f, _ := tree.LeanTween.Set(float32(t))
		return mgl64.QuatSlerp(tree.StartRot, tree.LeanRot, float64(f))
	case t < lean+fall:
		// Eased in: accelerating collapse
		f, _ := tree.FallTween.Set(float32(t - lean))
		return mgl64.QuatSlerp(tree.LeanRot, tree.EndRot, float64(f))
	case t < lean+fall+settle:
		s := (t - lean - fall) / settle
		angle := tree.Tuning.FallAngle + math.Sin(2*math.Pi*s)*(1-s)*tree.Tuning.SettleWobble
		return mathutil.AxisAngle(angle, tree.Axis).Mul(tree.StartRot)
	default:
		return tree.EndRot
	}
}

// setFallRotation applies rot to whatever is animating the fall.
func setFallRotation(w donburi.World, e *donburi.Entry, rot mgl64.Quat) {
	target := fallingBody(w, e)
	components.Transform.Get(target).Rotation = rot
}

func fallingBody(w donburi.World, e *donburi.Entry) *donburi.Entry {
	tree := components.Tree.Get(e)
	if tree.HasTrunk && w.Valid(tree.Trunk) {
		return w.Entry(tree.Trunk)
	}
	return e
}

func completeFall(ecs *ecs.ECS, e *donburi.Entry) {
	tree := components.Tree.Get(e)
	tuning := &tree.Tuning
	transform := components.Transform.Get(e)
	base := transform.Position

	if tuning.LogsPrefab != cfg.PrefabNone {
		dir, ok := mathutil.SafeNormalize(tree.AccumulatedDir, tuning.MinFallDirSq)
		if !ok {
			dir = tree.FallDir
		}
		pos := base.Add(dir.Mul(tuning.LogsOffset))
		pos[1] = base[1]
		if _, err := factory.SpawnByproduct(ecs, tuning.LogsPrefab, pos, transform.Rotation); err != nil {
			log.Printf("Warning: failed to spawn logs: %v", err)
		}
	}

	tree.State = components.TreeDead
	TreeFelled.Publish(ecs.World, TreeFelledEvent{Tree: e.Entity()})

	if tree.HasTrunk && ecs.World.Valid(tree.Trunk) {
		MarkDespawn(ecs.World.Entry(tree.Trunk), "fall finished")
	}
	MarkDespawn(e, "felled")
}
