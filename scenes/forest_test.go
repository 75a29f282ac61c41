package scenes

import (
	"testing"

	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
	"github.com/automoto/timber/systems"
	"github.com/automoto/timber/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func TestPopulate(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	systems.RegisterCutterEvents(e.World)

	if err := Populate(e, nil, nil); err != nil {
		t.Fatalf("Failed to populate: %v", err)
	}

	trees := 0
	tags.Tree.Each(e.World, func(*donburi.Entry) { trees++ })
	if trees != len(cfg.Forest.Trees) {
		t.Errorf("Expected %d trees, got %d", len(cfg.Forest.Trees), trees)
	}

	player, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("Expected a player")
	}
	pos := components.Transform.Get(player).Position
	if pos[2] != cfg.Player.SpawnZ {
		t.Errorf("Expected player at z=%f, got %f", cfg.Player.SpawnZ, pos[2])
	}

	for _, c := range []donburi.IComponentType{components.Space, components.Input, components.Feedback} {
		if _, ok := donburi.NewQuery(filter.Contains(c)).First(e.World); !ok {
			t.Errorf("Expected singleton %v", c)
		}
	}

	// Spawn is out of reach of every tree
	systems.UpdateCutter(e)
	if components.Cutter.Get(player).HasTarget {
		t.Error("Expected no target at spawn")
	}
}

func TestPopulate_BadPrefab(t *testing.T) {
	saved := cfg.Tree
	t.Cleanup(func() { cfg.Tree = saved })
	cfg.Tree.Prefab = "missing"

	e := ecs.NewECS(donburi.NewWorld())
	if err := Populate(e, nil, nil); err == nil {
		t.Error("Expected an error for a missing tree prefab")
	}
}

func TestForestFrames_FelledDeliveredBeforeRemoval(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	for _, system := range simulationSystems(func(*ecs.ECS) {}) {
		e.AddSystem(system)
	}
	systems.RegisterCutterEvents(e.World)
	if err := Populate(e, nil, nil); err != nil {
		t.Fatalf("Failed to populate: %v", err)
	}

	player, _ := tags.Player.First(e.World)
	first := cfg.Forest.Trees[0]
	components.Transform.Get(player).Position = mgl64.Vec3{first.X, 0, first.Z - 1}

	e.Update()
	cutter := components.Cutter.Get(player)
	if !cutter.HasTarget {
		t.Fatal("Expected the nearest tree targeted")
	}
	target := cutter.Target

	frame := 0
	delivered := -1
	validAtDelivery := false
	deadAtDelivery := false
	systems.TreeFelled.Subscribe(e.World, func(w donburi.World, event systems.TreeFelledEvent) {
		if event.Tree != target {
			return
		}
		delivered = frame
		validAtDelivery = w.Valid(event.Tree)
		if validAtDelivery {
			deadAtDelivery = components.Tree.Get(w.Entry(event.Tree)).State == components.TreeDead
		}
	})

	systems.OnInteractPressed(e, player)
	minigame := components.Minigame.Get(player)
	for i := 0; i < 20 && cutter.Cutting; i++ {
		minigame.Position = minigame.BottomCenter()
		systems.AttemptHit(e, player)
	}
	if components.Tree.Get(e.World.Entry(target)).State != components.TreeFalling {
		t.Fatal("Expected perfect hits to fell the tree")
	}

	removed := -1
	for frame = 1; frame < 1000 && removed < 0; frame++ {
		e.Update()
		if !e.World.Valid(target) {
			removed = frame
		}
	}

	if delivered < 0 {
		t.Fatal("Expected a felled notification")
	}
	if delivered != removed {
		t.Errorf("Expected notification in the removal frame %d, got frame %d", removed, delivered)
	}
	if !validAtDelivery || !deadAtDelivery {
		t.Errorf("Expected a valid Dead tree at delivery, got valid=%v dead=%v", validAtDelivery, deadAtDelivery)
	}
	if cutter.HasTarget {
		t.Error("Expected the cutter to drop the felled tree")
	}
}
