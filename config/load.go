package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the on-disk layout of a tuning override file. Every section is
// optional; keys left out keep their built-in defaults.
type document struct {
	Game         Config             `yaml:"game"`
	Minigame     MinigameConfig     `yaml:"minigame"`
	Tree         TreeConfig         `yaml:"tree"`
	Cutter       CutterConfig       `yaml:"cutter"`
	Player       PlayerConfig       `yaml:"player"`
	Presentation PresentationConfig `yaml:"presentation"`
	Space        SpaceConfig        `yaml:"space"`
	Forest       ForestConfig       `yaml:"forest"`
}

// Load reads a YAML override file and applies it on top of the defaults.
// Nothing is applied if the file fails to parse or validate.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return nil
}

// Apply parses YAML override data and installs it into the package-level config.
func Apply(data []byte) error {
	doc := document{
		Game:         *C,
		Minigame:     Minigame,
		Tree:         Tree,
		Cutter:       Cutter,
		Player:       Player,
		Presentation: Presentation,
		Space:        Space,
		Forest:       Forest,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := doc.validate(); err != nil {
		return err
	}

	game := doc.Game
	C = &game
	Minigame = doc.Minigame
	Tree = doc.Tree
	Cutter = doc.Cutter
	Player = doc.Player
	Presentation = doc.Presentation
	Space = doc.Space
	Forest = doc.Forest
	return nil
}

// Validate checks the currently installed configuration.
func Validate() error {
	doc := document{
		Game:     *C,
		Minigame: Minigame,
		Tree:     Tree,
		Cutter:   Cutter,
		Player:   Player,
		Space:    Space,
	}
	return doc.validate()
}

func (d *document) validate() error {
	if d.Game.TPS <= 0 {
		return fmt.Errorf("game: tps must be positive, got %d", d.Game.TPS)
	}
	if err := d.Minigame.validate(); err != nil {
		return fmt.Errorf("minigame: %w", err)
	}
	if err := d.Tree.validate(); err != nil {
		return fmt.Errorf("tree: %w", err)
	}
	if d.Cutter.DetectionRadius <= 0 {
		return fmt.Errorf("cutter: detectionRadius must be positive, got %f", d.Cutter.DetectionRadius)
	}
	if d.Player.Gravity >= 0 {
		return fmt.Errorf("player: gravity must be negative, got %f", d.Player.Gravity)
	}
	if d.Player.JumpHeight < 0 {
		return fmt.Errorf("player: jumpHeight cannot be negative, got %f", d.Player.JumpHeight)
	}
	if d.Space.Width <= 0 || d.Space.Height <= 0 || d.Space.CellSize <= 0 {
		return fmt.Errorf("space: width, height and cellSize must be positive")
	}
	return nil
}

func (m *MinigameConfig) validate() error {
	if m.BaseSpeed <= 0 {
		return fmt.Errorf("baseSpeed must be positive, got %f", m.BaseSpeed)
	}
	if m.MaxSpeed < m.BaseSpeed {
		return fmt.Errorf("maxSpeed %f is below baseSpeed %f", m.MaxSpeed, m.BaseSpeed)
	}
	if m.MinZoneWidth <= 0 || m.MinZoneWidth > m.BaseZoneWidth {
		return fmt.Errorf("minZoneWidth must be in (0, baseZoneWidth], got %f", m.MinZoneWidth)
	}
	if m.PerfectRatio <= 0 || m.PerfectRatio > 1 {
		return fmt.Errorf("perfectRatio must be in (0, 1], got %f", m.PerfectRatio)
	}
	if m.BottomCenter < 0 || m.BottomCenter > 1 || m.TopCenter < 0 || m.TopCenter > 1 {
		return fmt.Errorf("zone centers must be within [0, 1]")
	}
	if m.SpeedIncrement < 0 || m.ZoneShrink < 0 {
		return fmt.Errorf("speedIncrement and zoneShrink cannot be negative")
	}
	if m.BaseDamage < 0 || m.PerfectBonus < 0 || m.ComboMultiplier < 0 {
		return fmt.Errorf("damage values cannot be negative")
	}
	return nil
}

func (t *TreeConfig) validate() error {
	if t.MaxHealth <= 0 {
		return fmt.Errorf("maxHealth must be positive, got %d", t.MaxHealth)
	}
	if t.LeanDuration <= 0 || t.FallDuration <= 0 || t.SettleDuration <= 0 {
		return fmt.Errorf("fall phase durations must be positive")
	}
	if _, ok := Prefabs[t.Prefab]; !ok {
		return fmt.Errorf("unknown tree prefab %q", t.Prefab)
	}
	for _, id := range []PrefabID{t.StumpPrefab, t.TrunkPrefab, t.LogsPrefab} {
		if id == PrefabNone {
			continue
		}
		if _, ok := Prefabs[id]; !ok {
			return fmt.Errorf("unknown byproduct prefab %q", id)
		}
	}
	return nil
}
