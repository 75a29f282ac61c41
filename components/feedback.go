package components

import (
	cfg "github.com/automoto/timber/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CuePlayer plays fire-and-forget feedback (sound, particles, shake)
type CuePlayer interface {
	Play(cue cfg.CueID, pos mgl64.Vec3)
}

// PendingCue is a cue queued during the frame
type PendingCue struct {
	Cue      cfg.CueID
	Position mgl64.Vec3
}

// FeedbackData is the singleton cue queue. Player may be nil, in which
// case queued cues are dropped.
type FeedbackData struct {
	Pending []PendingCue
	Player  CuePlayer
	Played  int // total cues dispatched, for the debug overlay
}

var Feedback = donburi.NewComponentType[FeedbackData]()
