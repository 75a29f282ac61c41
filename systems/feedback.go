package systems

import (
	"log"

	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// PlayCue queues a feedback cue for this frame. Without a feedback
// singleton the cue is dropped.
func PlayCue(ecs *ecs.ECS, cue cfg.CueID, pos mgl64.Vec3) {
	if cue == cfg.CueNone {
		return
	}
	entry, ok := components.Feedback.First(ecs.World)
	if !ok {
		return
	}
	fb := components.Feedback.Get(entry)
	fb.Pending = append(fb.Pending, components.PendingCue{Cue: cue, Position: pos})
}

// UpdateFeedback hands every queued cue to the cue player and clears the queue.
func UpdateFeedback(ecs *ecs.ECS) {
	entry, ok := components.Feedback.First(ecs.World)
	if !ok {
		return
	}
	fb := components.Feedback.Get(entry)
	if fb.Player != nil {
		for _, p := range fb.Pending {
			fb.Player.Play(p.Cue, p.Position)
		}
	}
	fb.Played += len(fb.Pending)
	fb.Pending = fb.Pending[:0]
}

// LogCuePlayer prints cues instead of playing them. Used with -debug.
type LogCuePlayer struct{}

func (LogCuePlayer) Play(cue cfg.CueID, pos mgl64.Vec3) {
	log.Printf("cue %s at (%.2f, %.2f, %.2f)", cue, pos[0], pos[1], pos[2])
}
