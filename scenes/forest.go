package scenes

import (
	"fmt"
	"sync"

	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/automoto/timber/systems"
	"github.com/automoto/timber/systems/factory"
	"github.com/automoto/timber/ui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ForestScene is a clearing of cuttable trees around the player.
type ForestScene struct {
	ecs  *ecs.ECS
	hud  *ui.MinigameUI
	once sync.Once
}

func NewForestScene() *ForestScene {
	return &ForestScene{}
}

func (fs *ForestScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()
}

func (fs *ForestScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Ground)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
	fs.hud.Draw(screen)
}

func (fs *ForestScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	fs.hud = ui.NewMinigameUI()

	ecs.AddSystem(systems.UpdateInput)
	for _, system := range simulationSystems(fs.updateHUD) {
		ecs.AddSystem(system)
	}

	ecs.AddRenderer(cfg.Default, systems.DrawForestMap)
	ecs.AddRenderer(cfg.HUD, systems.DrawMinigameHUD)
	ecs.AddRenderer(cfg.HUD, systems.DrawDebug)

	fs.ecs = ecs
	systems.RegisterCutterEvents(ecs.World)

	if err := Populate(ecs, fs.hud, cuePlayer()); err != nil {
		panic(err)
	}
}

// simulationSystems is the per-frame order after input polling: controls,
// then the minigame and cutter, then trees; feedback and the HUD read the
// results, despawn runs last.
func simulationSystems(hud ecs.System) []ecs.System {
	return []ecs.System{
		systems.UpdateMovement,
		systems.UpdateMinigame,
		systems.UpdateCutter,
		systems.UpdateTrees,
		systems.UpdateFeedback,
		hud,
		systems.UpdateDespawn,
	}
}

func (fs *ForestScene) updateHUD(_ *ecs.ECS) {
	fs.hud.Update(cfg.C.FrameDelta())
}

// Populate spawns the forest layout, the player and the frame singletons.
func Populate(ecs *ecs.ECS, presenter components.Presenter, cues components.CuePlayer) error {
	factory.CreateSpace(ecs)
	factory.CreateInput(ecs)
	factory.CreateFeedback(ecs, cues)

	for i, spawn := range cfg.Forest.Trees {
		pos := mgl64.Vec3{spawn.X, spawn.Y, spawn.Z}
		if _, err := factory.CreateTree(ecs, pos, spawn.Yaw, cfg.Tree); err != nil {
			return fmt.Errorf("failed to create tree %d: %w", i, err)
		}
	}

	spawn := mgl64.Vec3{cfg.Player.SpawnX, cfg.Player.SpawnY, cfg.Player.SpawnZ}
	factory.CreatePlayer(ecs, spawn, 0, presenter)
	return nil
}

func cuePlayer() components.CuePlayer {
	if cfg.Debug.Overlay {
		return systems.LogCuePlayer{}
	}
	return nil
}
