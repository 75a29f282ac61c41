package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/timber/config"
	"github.com/automoto/timber/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewForestScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	debug := flag.Bool("debug", false, "Show the debug overlay and log feedback cues")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	} else if err := config.Validate(); err != nil {
		log.Fatalf("Invalid built-in config: %v", err)
	}
	config.Debug.Overlay = *debug

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Timber")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
