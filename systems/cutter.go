package systems

import (
	"math"

	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/automoto/timber/systems/factory"
	"github.com/automoto/timber/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCutter handles target acquisition and the interact/cancel inputs for
// every cutter. Must run after UpdateInput.
func UpdateCutter(ecs *ecs.ECS) {
	var input *components.InputData
	if entry, ok := components.Input.First(ecs.World); ok {
		input = components.Input.Get(entry)
	}

	// Hits can spawn byproducts, so don't mutate inside the query
	var cutters []*donburi.Entry
	components.Cutter.Each(ecs.World, func(e *donburi.Entry) {
		cutters = append(cutters, e)
	})

	for _, e := range cutters {
		updateCutter(ecs, e, input)
	}
}

func updateCutter(ecs *ecs.ECS, e *donburi.Entry, input *components.InputData) {
	cutter := components.Cutter.Get(e)

	// The target can disappear under a running session
	if cutter.Cutting && currentTarget(ecs.World, cutter) == nil {
		stopSession(ecs.World, e)
		clearTarget(cutter)
	}

	if !cutter.Cutting {
		scanForTarget(ecs, e)
	}

	if input == nil {
		return
	}
	if input.Action(cfg.ActionInteract).JustPressed {
		OnInteractPressed(ecs, e)
	} else if input.Action(cfg.ActionCancel).JustPressed {
		OnCancelPressed(ecs, e)
	}
}

func scanForTarget(ecs *ecs.ECS, e *donburi.Entry) {
	cutter := components.Cutter.Get(e)
	pos := components.Transform.Get(e).Position

	nearest, found := FindNearestTree(ecs, pos, cutter.Radius)
	if found != cutter.HasTarget || (found && nearest != cutter.Target) {
		SetTarget(ecs, e, nearest, found)
	}
}

// FindTreesInRadius returns every cuttable tree whose footprint center is
// within radius of pos on the ground plane, in spatial index order.
func FindTreesInRadius(ecs *ecs.ECS, pos mgl64.Vec3, radius float64) []*donburi.Entry {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)
	px, py := factory.WorldToSpace(pos)

	var trees []*donburi.Entry
	for _, obj := range space.Objects() {
		if !obj.HasTags(tags.ResolvCuttable) {
			continue
		}
		entity, ok := obj.Data.(donburi.Entity)
		if !ok || !ecs.World.Valid(entity) {
			continue
		}
		entry := ecs.World.Entry(entity)
		if !entry.HasComponent(components.Tree) {
			continue
		}
		cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
		if math.Hypot(cx-px, cy-py) > radius {
			continue
		}
		trees = append(trees, entry)
	}
	return trees
}

// FindNearestTree returns the closest tree within radius that can still be
// cut. Ties go to the first tree found.
func FindNearestTree(ecs *ecs.ECS, pos mgl64.Vec3, radius float64) (donburi.Entity, bool) {
	px, py := factory.WorldToSpace(pos)

	var best donburi.Entity
	bestDist := 0.0
	found := false
	for _, entry := range FindTreesInRadius(ecs, pos, radius) {
		if !CanBeCut(entry) {
			continue
		}
		obj := components.Object.Get(entry)
		cx, cy := obj.FootprintCenter()
		d := math.Hypot(cx-px, cy-py)
		if !found || d < bestDist {
			best = entry.Entity()
			bestDist = d
			found = true
		}
	}
	return best, found
}

// SetTarget switches the cutter to a new target, or to none when has is
// false. The old target is unhighlighted before the new one is highlighted.
func SetTarget(ecs *ecs.ECS, e *donburi.Entry, target donburi.Entity, has bool) {
	cutter := components.Cutter.Get(e)
	if has == cutter.HasTarget && (!has || target == cutter.Target) {
		return
	}

	if old := currentTarget(ecs.World, cutter); old != nil {
		components.Highlight.Get(old).On = false
	}

	clearTarget(cutter)
	if has && ecs.World.Valid(target) {
		cutter.Target = target
		cutter.HasTarget = true
		components.Highlight.Get(ecs.World.Entry(target)).On = true
	}

	if cutter.Presenter != nil {
		cutter.Presenter.ShowInteractPrompt(cutter.HasTarget)
	}
}

// OnInteractPressed hits during a session, otherwise starts one against the
// current target.
func OnInteractPressed(ecs *ecs.ECS, e *donburi.Entry) {
	cutter := components.Cutter.Get(e)
	if cutter.Cutting {
		AttemptHit(ecs, e)
		return
	}
	if cutter.HasTarget {
		StartSession(ecs, e)
	}
}

// OnCancelPressed ends a running session.
func OnCancelPressed(ecs *ecs.ECS, e *donburi.Entry) {
	if components.Cutter.Get(e).Cutting {
		StopSession(ecs, e)
	}
}

// StartSession locks the player in place and starts the minigame against
// the current target.
func StartSession(ecs *ecs.ECS, e *donburi.Entry) {
	cutter := components.Cutter.Get(e)
	if cutter.Cutting {
		return
	}
	target := currentTarget(ecs.World, cutter)
	if target == nil || !CanBeCut(target) {
		return
	}

	cutter.Cutting = true
	StartCutting(target)
	setControlsEnabled(e, false)
	components.Minigame.Get(e).Activate()

	if cutter.Presenter != nil {
		cutter.Presenter.ShowInteractPrompt(false)
		cutter.Presenter.ShowMinigame(true)
	}
}

// StopSession ends the minigame and gives control back to the player.
// Safe to call when no session is running.
func StopSession(ecs *ecs.ECS, e *donburi.Entry) {
	stopSession(ecs.World, e)
}

func stopSession(w donburi.World, e *donburi.Entry) {
	cutter := components.Cutter.Get(e)
	if !cutter.Cutting {
		return
	}
	cutter.Cutting = false

	target := currentTarget(w, cutter)
	if target != nil {
		StopCutting(target)
	}
	setControlsEnabled(e, true)
	components.Minigame.Get(e).Deactivate()

	if cutter.Presenter != nil {
		cutter.Presenter.ShowMinigame(false)
		cutter.Presenter.ShowInteractPrompt(target != nil && CanBeCut(target))
	}
}

// AttemptHit judges the timing bar and deals the resulting damage to the
// target along the player's facing. Without a valid target it does nothing.
// The session ends as soon as the tree starts to fall.
func AttemptHit(ecs *ecs.ECS, e *donburi.Entry) {
	cutter := components.Cutter.Get(e)
	target := currentTarget(ecs.World, cutter)
	if target == nil {
		return
	}
	minigame := components.Minigame.Get(e)
	transform := components.Transform.Get(e)

	judgment, damage := minigame.TryHit()
	switch judgment {
	case components.JudgmentPerfect, components.JudgmentGood:
		ApplyTreeDamage(ecs, target, damage, transform.Forward(), judgment == components.JudgmentPerfect)
	default:
		PlayCue(ecs, cfg.CueMiss, transform.Position)
	}

	if cutter.Presenter != nil {
		cutter.Presenter.ShowHitResult(judgment, minigame.ComboCount)
	}

	if components.Tree.Get(target).State == components.TreeFalling {
		StopSession(ecs, e)
	}
}

// onTreeFelled drops the felled tree from any cutter still tracking it.
func onTreeFelled(w donburi.World, event TreeFelledEvent) {
	components.Cutter.Each(w, func(e *donburi.Entry) {
		cutter := components.Cutter.Get(e)
		if !cutter.HasTarget || cutter.Target != event.Tree {
			return
		}
		stopSession(w, e)
		clearTarget(cutter)
		if cutter.Presenter != nil {
			cutter.Presenter.ShowInteractPrompt(false)
		}
	})
}

// currentTarget resolves the tracked target, or nil when there is none or
// it has been removed from the world.
func currentTarget(w donburi.World, cutter *components.CutterData) *donburi.Entry {
	if !cutter.HasTarget || !w.Valid(cutter.Target) {
		return nil
	}
	entry := w.Entry(cutter.Target)
	if !entry.HasComponent(components.Tree) {
		return nil
	}
	return entry
}

func clearTarget(cutter *components.CutterData) {
	cutter.Target = donburi.Null
	cutter.HasTarget = false
}

func setControlsEnabled(e *donburi.Entry, enabled bool) {
	if !e.HasComponent(components.Player) {
		return
	}
	player := components.Player.Get(e)
	player.MoveEnabled = enabled
	player.LookEnabled = enabled
}
