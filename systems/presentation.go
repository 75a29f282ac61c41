package systems

import (
	"image/color"

	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// MinigameView is a read-only snapshot of the timing bar for drawing.
type MinigameView struct {
	Active       bool
	Position     float64
	ZoneWidth    float64
	PerfectWidth float64
	BottomCenter float64
	TopCenter    float64
	Combo        int
}

// ProjectMinigame copies the drawable state out of a minigame.
func ProjectMinigame(m *components.MinigameData) MinigameView {
	return MinigameView{
		Active:       m.Active,
		Position:     m.Position,
		ZoneWidth:    m.ZoneWidth,
		PerfectWidth: m.PerfectZoneWidth(),
		BottomCenter: m.BottomCenter(),
		TopCenter:    m.TopCenter(),
		Combo:        m.ComboCount,
	}
}

// BarY converts a bar value in [0, 1] to a vertical offset from the top of
// a bar barHeight pixels tall. 0 is the bottom of the bar.
func BarY(value, barHeight float64) float64 {
	return (1 - value) * barHeight
}

// DrawMinigameHUD draws the timing bar while a session is running.
func DrawMinigameHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Minigame.First(ecs.World)
	if !ok {
		return
	}
	view := ProjectMinigame(components.Minigame.Get(entry))
	if !view.Active {
		return
	}
	drawTimingBar(screen, view)
}

func drawTimingBar(screen *ebiten.Image, view MinigameView) {
	p := cfg.Presentation
	x, y := float32(p.BarX), float32(p.BarY)
	w := float32(p.BarWidth)

	vector.FillRect(screen, x, y, w, float32(p.BarHeight), p.BarColor, false)

	for _, center := range []float64{view.BottomCenter, view.TopCenter} {
		drawZone(screen, center, view.ZoneWidth, p.GreenZoneColor)
		drawZone(screen, center, view.PerfectWidth, p.PerfectColor)
	}

	iy := float32(p.BarY + BarY(view.Position, p.BarHeight) - p.IndicatorHeight/2)
	vector.FillRect(screen, x-4, iy, w+8, float32(p.IndicatorHeight), p.IndicatorColor, false)
}

// drawZone fills the band of the bar covering center ± width/2, clipped to the bar.
func drawZone(screen *ebiten.Image, center, width float64, c color.Color) {
	p := cfg.Presentation
	top := min(center+width/2, 1)
	bottom := max(center-width/2, 0)
	if top <= bottom {
		return
	}
	y := p.BarY + BarY(top, p.BarHeight)
	h := (top - bottom) * p.BarHeight
	vector.FillRect(screen, float32(p.BarX), float32(y), float32(p.BarWidth), float32(h), c, false)
}
