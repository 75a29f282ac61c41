package systems

import (
	"math"
	"testing"

	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/automoto/timber/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

type playedCue struct {
	cue cfg.CueID
	pos mgl64.Vec3
}

type recordingCues struct {
	played []playedCue
}

func (r *recordingCues) Play(cue cfg.CueID, pos mgl64.Vec3) {
	r.played = append(r.played, playedCue{cue: cue, pos: pos})
}

type recordingPresenter struct {
	prompt   []bool
	minigame []bool
	results  []components.Judgment
	combos   []int
}

func (p *recordingPresenter) ShowInteractPrompt(show bool) { p.prompt = append(p.prompt, show) }
func (p *recordingPresenter) ShowMinigame(show bool)       { p.minigame = append(p.minigame, show) }
func (p *recordingPresenter) ShowHitResult(result components.Judgment, combo int) {
	p.results = append(p.results, result)
	p.combos = append(p.combos, combo)
}

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e)
	factory.CreateInput(e)
	factory.CreateFeedback(e, nil)
	RegisterCutterEvents(e.World)
	return e
}

func testTreeTuning(maxHealth int) cfg.TreeConfig {
	tuning := cfg.Tree
	tuning.MaxHealth = maxHealth
	return tuning
}

func spawnTree(t *testing.T, e *ecs.ECS, pos mgl64.Vec3, yaw float64, tuning cfg.TreeConfig) *donburi.Entry {
	t.Helper()
	tree, err := factory.CreateTree(e, pos, yaw, tuning)
	if err != nil {
		t.Fatalf("Failed to create tree: %v", err)
	}
	return tree
}

func spawnPlayer(e *ecs.ECS, pos mgl64.Vec3, presenter components.Presenter) *donburi.Entry {
	return factory.CreatePlayer(e, pos, 0, presenter)
}

// pendingCues returns the cues queued this frame without dispatching them.
func pendingCues(e *ecs.ECS) []cfg.CueID {
	entry, ok := components.Feedback.First(e.World)
	if !ok {
		return nil
	}
	var cues []cfg.CueID
	for _, p := range components.Feedback.Get(entry).Pending {
		cues = append(cues, p.Cue)
	}
	return cues
}

func clearCues(e *ecs.ECS) {
	entry, ok := components.Feedback.First(e.World)
	if ok {
		fb := components.Feedback.Get(entry)
		fb.Pending = fb.Pending[:0]
	}
}

func countEntities(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

func vecNear(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

// quatNear compares rotations, treating q and -q as the same rotation.
func quatNear(a, b mgl64.Quat, tol float64) bool {
	d := math.Abs(a.Dot(b))
	return math.Abs(1-d) <= tol && math.Abs(a.Len()-b.Len()) <= tol
}
