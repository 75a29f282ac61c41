package config

import "image/color"

// MinigameConfig contains the timing minigame tuning values
type MinigameConfig struct {
	// Oscillation
	BaseSpeed      float64 `yaml:"baseSpeed"`      // bar lengths per second
	SpeedIncrement float64 `yaml:"speedIncrement"` // added per perfect hit
	MaxSpeed       float64 `yaml:"maxSpeed"`

	// Zones
	BaseZoneWidth float64 `yaml:"baseZoneWidth"` // green zone width, two zones so kept small
	MinZoneWidth  float64 `yaml:"minZoneWidth"`
	ZoneShrink    float64 `yaml:"zoneShrink"` // removed per perfect hit
	PerfectRatio  float64 `yaml:"perfectRatio"`
	BottomCenter  float64 `yaml:"bottomCenter"`
	TopCenter     float64 `yaml:"topCenter"`

	// Damage
	BaseDamage      int     `yaml:"baseDamage"`
	PerfectBonus    int     `yaml:"perfectBonus"`
	ComboMultiplier float64 `yaml:"comboMultiplier"`
}

// TreeConfig contains health, fall animation and byproduct settings for cuttable trees
type TreeConfig struct {
	MaxHealth int `yaml:"maxHealth"`

	// Fall phases (seconds)
	LeanDuration   float64 `yaml:"leanDuration"`   // slow lean with cracking
	FallDuration   float64 `yaml:"fallDuration"`   // the actual fall
	SettleDuration float64 `yaml:"settleDuration"` // wobble on the ground

	// Angles (degrees)
	LeanAngle    float64 `yaml:"leanAngle"`
	FallAngle    float64 `yaml:"fallAngle"`
	SettleWobble float64 `yaml:"settleWobble"`

	CutHeight        float64 `yaml:"cutHeight"`        // where the axe lands, for impact cues
	ImpactSideOffset float64 `yaml:"impactSideOffset"` // sideways shift of the impact point
	LogsOffset       float64 `yaml:"logsOffset"`       // distance logs land from the stump
	MinFallDirSq     float64 `yaml:"minFallDirSq"`     // below this the tree falls backwards

	CollisionSize float64 `yaml:"collisionSize"` // trunk footprint in the spatial index

	Prefab      PrefabID `yaml:"prefab"`
	StumpPrefab PrefabID `yaml:"stumpPrefab"`
	TrunkPrefab PrefabID `yaml:"trunkPrefab"`
	LogsPrefab  PrefabID `yaml:"logsPrefab"`
}

// CutterConfig contains target acquisition settings
type CutterConfig struct {
	DetectionRadius float64 `yaml:"detectionRadius"`
}

// PlayerConfig contains first-person movement and look settings
type PlayerConfig struct {
	WalkSpeed        float64 `yaml:"walkSpeed"`
	SprintSpeed      float64 `yaml:"sprintSpeed"`
	MouseSensitivity float64 `yaml:"mouseSensitivity"` // degrees per pixel
	MaxPitch         float64 `yaml:"maxPitch"`         // degrees
	KeyTurnSpeed     float64 `yaml:"keyTurnSpeed"`     // degrees per second when turning with keys
	Gravity          float64 `yaml:"gravity"`          // m/s², negative is down
	JumpHeight       float64 `yaml:"jumpHeight"`
	GroundHeight     float64 `yaml:"groundHeight"` // flat ground plane the player stands on

	SpawnX float64 `yaml:"spawnX"`
	SpawnY float64 `yaml:"spawnY"`
	SpawnZ float64 `yaml:"spawnZ"`
}

// PresentationConfig contains minigame HUD layout values
type PresentationConfig struct {
	ResultDisplayDuration float64 `yaml:"resultDisplayDuration"` // seconds

	BarX      float64 `yaml:"barX"`
	BarY      float64 `yaml:"barY"`
	BarWidth  float64 `yaml:"barWidth"`
	BarHeight float64 `yaml:"barHeight"`

	IndicatorHeight float64 `yaml:"indicatorHeight"`

	BarColor       color.RGBA `yaml:"-"`
	GreenZoneColor color.RGBA `yaml:"-"`
	PerfectColor   color.RGBA `yaml:"-"`
	IndicatorColor color.RGBA `yaml:"-"`
	MissColor      color.RGBA `yaml:"-"`
}

// SpaceConfig describes the spatial index covering the forest floor.
// The index is 2D: world X maps to space X and world Z maps to space Y.
type SpaceConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize int     `yaml:"cellSize"`
	OriginX  float64 `yaml:"originX"` // world X at space X = 0
	OriginZ  float64 `yaml:"originZ"` // world Z at space Y = 0
}

// TreeSpawn is one tree placement in the forest layout
type TreeSpawn struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Z   float64 `yaml:"z"`
	Yaw float64 `yaml:"yaw"` // degrees
}

// ForestConfig contains the default scene layout
type ForestConfig struct {
	Trees []TreeSpawn `yaml:"trees"`
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// FrameDelta returns the fixed simulation step in seconds.
func (c *Config) FrameDelta() float64 {
	if c.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TPS)
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Overlay bool // Draw tree states and log feedback cues
}

// Global configuration instances
var C *Config
var Minigame MinigameConfig
var Tree TreeConfig
var Cutter CutterConfig
var Player PlayerConfig
var Presentation PresentationConfig
var Space SpaceConfig
var Forest ForestConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	Brown        = color.RGBA{R: 120, G: 80, B: 40, A: 255}
	Blue         = color.RGBA{R: 60, G: 120, B: 255, A: 255}
	Ground       = color.RGBA{R: 24, G: 40, B: 28, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 220}
	ZoneGreen    = color.RGBA{R: 51, G: 204, B: 51, A: 128}
	ZoneGold     = color.RGBA{R: 255, G: 204, B: 0, A: 180}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Minigame = MinigameConfig{
		BaseSpeed:      0.8,
		SpeedIncrement: 0.08,
		MaxSpeed:       2.0,

		BaseZoneWidth: 0.18,
		MinZoneWidth:  0.08,
		ZoneShrink:    0.01,
		PerfectRatio:  0.35,
		BottomCenter:  0.15,
		TopCenter:     0.85,

		BaseDamage:      1,
		PerfectBonus:    1,
		ComboMultiplier: 0.2,
	}

	Tree = TreeConfig{
		MaxHealth: 10,

		LeanDuration:   2.5,
		FallDuration:   3.0,
		SettleDuration: 1.0,

		LeanAngle:    15,
		FallAngle:    85,
		SettleWobble: 2,

		CutHeight:        1.2,
		ImpactSideOffset: 0.3,
		LogsOffset:       2.0,
		MinFallDirSq:     0.01,

		CollisionSize: 0.6,

		Prefab:      PrefabFruitTree,
		StumpPrefab: PrefabFruitTreeStump,
		TrunkPrefab: PrefabFruitTreeCut,
		LogsPrefab:  PrefabFruitTreeLogs,
	}

	Cutter = CutterConfig{
		DetectionRadius: 3.0,
	}

	Player = PlayerConfig{
		WalkSpeed:        5.0,
		SprintSpeed:      10.0,
		MouseSensitivity: 0.1,
		MaxPitch:         90,
		KeyTurnSpeed:     120,
		Gravity:          -19.62,
		JumpHeight:       3,
		GroundHeight:     0,

		SpawnX: 0,
		SpawnY: 0.05,
		SpawnZ: -5,
	}

	Presentation = PresentationConfig{
		ResultDisplayDuration: 0.5,

		BarX:      580,
		BarY:      80,
		BarWidth:  24,
		BarHeight: 200,

		IndicatorHeight: 4,

		BarColor:       DarkGray,
		GreenZoneColor: ZoneGreen,
		PerfectColor:   ZoneGold,
		IndicatorColor: White,
		MissColor:      Red,
	}

	Space = SpaceConfig{
		Width:    128,
		Height:   128,
		CellSize: 4,
		OriginX:  -64,
		OriginZ:  -64,
	}

	Forest = ForestConfig{
		Trees: []TreeSpawn{
			{X: 0, Y: 0, Z: 5},
			{X: 5, Y: 0, Z: 8, Yaw: 40},
			{X: -4, Y: 0, Z: 6, Yaw: 110},
			{X: 3, Y: 0, Z: 12, Yaw: 200},
			{X: -6, Y: 0, Z: 10, Yaw: 300},
		},
	}
}
