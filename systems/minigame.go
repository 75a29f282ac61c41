package systems

import (
	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMinigame advances every active timing bar by one frame.
func UpdateMinigame(ecs *ecs.ECS) {
	AdvanceMinigame(ecs, cfg.C.FrameDelta())
}

// AdvanceMinigame advances every active timing bar by dt seconds.
func AdvanceMinigame(ecs *ecs.ECS, dt float64) {
	components.Minigame.Each(ecs.World, func(e *donburi.Entry) {
		components.Minigame.Get(e).Advance(dt)
	})
}
