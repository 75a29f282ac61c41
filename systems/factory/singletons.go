package factory

import (
	"github.com/automoto/timber/archetypes"
	"github.com/automoto/timber/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateInput creates the input singleton. Zero-value InputData is correct.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

// CreateFeedback creates the cue queue singleton. player may be nil.
func CreateFeedback(ecs *ecs.ECS, player components.CuePlayer) *donburi.Entry {
	e := archetypes.Feedback.Spawn(ecs)
	components.Feedback.SetValue(e, components.FeedbackData{Player: player})
	return e
}
