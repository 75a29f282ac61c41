package components

import (
	"github.com/yohamta/donburi"
)

// Presenter is the presentation layer the cutter reports to. It only
// receives snapshots and never changes game state.
type Presenter interface {
	ShowInteractPrompt(show bool)
	ShowMinigame(show bool)
	ShowHitResult(result Judgment, combo int)
}

// CutterData tracks the tree the player is aimed at and whether a
// minigame session is running against it. Target is a generation-checked
// handle: always confirm it with World.Valid before use.
type CutterData struct {
	Target    donburi.Entity
	HasTarget bool
	Cutting   bool
	Radius    float64

	Presenter Presenter // optional
}

var Cutter = donburi.NewComponentType[CutterData]()
