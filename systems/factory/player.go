package factory

import (
	"github.com/automoto/timber/archetypes"
	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/automoto/timber/mathutil"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the first-person player carrying the timing minigame
// and the cutter. presenter may be nil.
func CreatePlayer(ecs *ecs.ECS, pos mgl64.Vec3, yaw float64, presenter components.Presenter) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		MoveEnabled: true,
		LookEnabled: true,
		Yaw:         yaw,
	})
	components.Transform.SetValue(player, components.TransformData{
		Position: pos,
		Rotation: mathutil.YawRotation(yaw),
	})
	components.Minigame.SetValue(player, components.NewMinigame(cfg.Minigame))
	components.Cutter.SetValue(player, components.CutterData{
		Radius:    cfg.Cutter.DetectionRadius,
		Presenter: presenter,
	})

	return player
}
