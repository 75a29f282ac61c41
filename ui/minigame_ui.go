package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const promptText = "Press E to chop"

// ResultText is the label shown after a hit attempt.
func ResultText(result components.Judgment, combo int) string {
	switch result {
	case components.JudgmentPerfect:
		if combo > 1 {
			return fmt.Sprintf("PERFECT! x%d", combo)
		}
		return "PERFECT!"
	case components.JudgmentGood:
		return "Good"
	default:
		return "Miss"
	}
}

// ComboText is the combo counter label, empty when there is no combo.
func ComboText(combo int) string {
	if combo <= 0 {
		return ""
	}
	return fmt.Sprintf("x%d", combo)
}

// hudState is what the labels should show. It only changes through the
// Presenter calls and the result timer.
type hudState struct {
	promptVisible   bool
	minigameVisible bool

	result      string
	judgment    components.Judgment
	resultTimer float64
	combo       int
}

func (s *hudState) showHitResult(result components.Judgment, combo int) {
	s.result = ResultText(result, combo)
	s.resultTimer = cfg.Presentation.ResultDisplayDuration
	s.judgment = result
	s.combo = combo
}

func (s *hudState) showMinigame(show bool) {
	s.minigameVisible = show
	if !show {
		s.result = ""
		s.resultTimer = 0
		s.combo = 0
	}
}

func (s *hudState) tick(dt float64) {
	if s.resultTimer <= 0 {
		return
	}
	s.resultTimer -= dt
	if s.resultTimer <= 0 {
		s.resultTimer = 0
		s.result = ""
	}
}

// MinigameUI draws the interact prompt, hit result and combo labels. It
// implements components.Presenter.
type MinigameUI struct {
	UI *ebitenui.UI

	state hudState

	promptLabel  *widget.Label
	resultLabels map[components.Judgment]*widget.Label
	comboLabel   *widget.Label

	promptFace text.Face
	resultFace text.Face
	comboFace  text.Face
}

func NewMinigameUI() *MinigameUI {
	ui := &MinigameUI{
		resultLabels: make(map[components.Judgment]*widget.Label),
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *MinigameUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.promptFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.resultFace = &text.GoTextFace{Source: fontSource, Size: 22}
	ui.comboFace = &text.GoTextFace{Source: fontSource, Size: 16}
}

func (ui *MinigameUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	ui.promptLabel = newLabel(&ui.promptFace, cfg.White)
	rootContainer.AddChild(anchored(ui.promptLabel,
		widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionEnd))

	// One label per judgment so each keeps its own color
	results := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	for j, c := range map[components.Judgment]color.RGBA{
		components.JudgmentPerfect: cfg.Presentation.PerfectColor,
		components.JudgmentGood:    cfg.Presentation.GreenZoneColor,
		components.JudgmentMiss:    cfg.Presentation.MissColor,
	} {
		ui.resultLabels[j] = newLabel(&ui.resultFace, c)
	}
	for _, j := range []components.Judgment{components.JudgmentMiss, components.JudgmentGood, components.JudgmentPerfect} {
		results.AddChild(ui.resultLabels[j])
	}
	rootContainer.AddChild(results)

	ui.comboLabel = newLabel(&ui.comboFace, cfg.ZoneGold)
	rootContainer.AddChild(anchored(ui.comboLabel,
		widget.AnchorLayoutPositionEnd, widget.AnchorLayoutPositionStart))

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func newLabel(face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", face, &widget.LabelColor{Idle: c}),
	)
}

// anchored wraps a widget in a padded container placed by the root anchor layout.
func anchored(w widget.PreferredSizeLocateableWidget, h, v widget.AnchorLayoutPosition) *widget.Container {
	c := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: h,
				VerticalPosition:   v,
			}),
		),
	)
	c.AddChild(w)
	return c
}

func (ui *MinigameUI) ShowInteractPrompt(show bool) {
	ui.state.promptVisible = show
}

func (ui *MinigameUI) ShowMinigame(show bool) {
	ui.state.showMinigame(show)
}

func (ui *MinigameUI) ShowHitResult(result components.Judgment, combo int) {
	ui.state.showHitResult(result, combo)
}

// Update runs the result timer and pushes the current state into the labels.
func (ui *MinigameUI) Update(dt float64) {
	ui.state.tick(dt)
	ui.syncLabels()
	ui.UI.Update()
}

func (ui *MinigameUI) syncLabels() {
	s := &ui.state

	ui.promptLabel.Label = ""
	if s.promptVisible && !s.minigameVisible {
		ui.promptLabel.Label = promptText
	}

	for j, label := range ui.resultLabels {
		label.Label = ""
		if s.result != "" && j == s.judgment {
			label.Label = s.result
		}
	}

	ui.comboLabel.Label = ""
	if s.minigameVisible {
		ui.comboLabel.Label = ComboText(s.combo)
	}
}

func (ui *MinigameUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
