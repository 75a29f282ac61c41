package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug lists every tree's state and health plus the cutter status.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	ebitenutil.DebugPrint(screen, DebugText(ecs))
}

// DebugText builds the overlay text.
func DebugText(ecs *ecs.ECS) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f\n", ebiten.ActualTPS())

	components.Cutter.Each(ecs.World, func(e *donburi.Entry) {
		cutter := components.Cutter.Get(e)
		pos := components.Transform.Get(e).Position
		fmt.Fprintf(&b, "player (%.1f, %.1f) target=%v cutting=%v\n", pos[0], pos[2], cutter.HasTarget, cutter.Cutting)
		if e.HasComponent(components.Minigame) {
			m := components.Minigame.Get(e)
			fmt.Fprintf(&b, "bar %.2f speed %.2f zone %.3f combo %d\n", m.Position, m.Speed, m.ZoneWidth, m.ComboCount)
		}
	})

	components.Tree.Each(ecs.World, func(e *donburi.Entry) {
		tree := components.Tree.Get(e)
		pos := components.Transform.Get(e).Position
		marker := " "
		if components.Highlight.Get(e).On {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s tree (%.1f, %.1f) %-8s hp %.0f%%\n", marker, pos[0], pos[2], tree.State, HealthFraction(e)*100)
	})

	if entry, ok := components.Feedback.First(ecs.World); ok {
		fmt.Fprintf(&b, "cues played %d\n", components.Feedback.Get(entry).Played)
	}
	return b.String()
}
