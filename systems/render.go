package systems

import (
	"image/color"

	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/automoto/timber/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Pixels per meter on the top-down map
const mapScale = 16.0

// DrawForestMap draws a top-down view centered on the player: trees with
// their health bars, byproducts and the player's facing.
func DrawForestMap(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Transform.Get(playerEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	toScreen := func(p mgl64.Vec3) (float32, float32) {
		// +Z is up the screen, +X is to the left when facing +Z
		x := float64(width)/2 - (p[0]-player.Position[0])*mapScale
		y := float64(height)/2 - (p[2]-player.Position[2])*mapScale
		return float32(x), float32(y)
	}

	components.Byproduct.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Renderable.Get(e).Visible {
			return
		}
		transform := components.Transform.Get(e)
		x, y := toScreen(transform.Position)
		switch components.Byproduct.Get(e).Kind {
		case cfg.PrefabKindTrunk:
			// Trunk tip shows the fall progress
			tip := transform.Position.Add(transform.Rotation.Rotate(mgl64.Vec3{0, 3, 0}))
			tx, ty := toScreen(tip)
			vector.StrokeLine(screen, x, y, tx, ty, 3, cfg.Brown, false)
		default:
			vector.FillRect(screen, x-3, y-3, 6, 6, cfg.Brown, false)
		}
	})

	components.Tree.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Renderable.Get(e).Visible {
			return
		}
		transform := components.Transform.Get(e)
		x, y := toScreen(transform.Position)

		var c color.Color = cfg.Green
		if components.Highlight.Get(e).On {
			c = cfg.ZoneGold
		}
		vector.FillRect(screen, x-5, y-5, 10, 10, c, false)

		// Health bar above the tree, red background with green fill
		barWidth := float32(24)
		barX := x - barWidth/2
		barY := y - 12
		vector.FillRect(screen, barX, barY, barWidth, 3, cfg.Red, false)
		vector.FillRect(screen, barX, barY, barWidth*float32(HealthFraction(e)), 3, cfg.Green, false)
	})

	x, y := toScreen(player.Position)
	vector.FillRect(screen, x-4, y-4, 8, 8, cfg.Blue, false)
	fx, fy := toScreen(player.Position.Add(player.Forward()))
	vector.StrokeLine(screen, x, y, fx, fy, 2, cfg.Blue, false)
}
