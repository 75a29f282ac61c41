package components

import (
	"math"
	"testing"

	cfg "github.com/automoto/timber/config"
)

const epsilon = 1e-9

func testTuning() cfg.MinigameConfig {
	return cfg.MinigameConfig{
		BaseSpeed:       0.8,
		SpeedIncrement:  0.08,
		MaxSpeed:        2.0,
		BaseZoneWidth:   0.18,
		MinZoneWidth:    0.08,
		ZoneShrink:      0.01,
		PerfectRatio:    0.35,
		BottomCenter:    0.15,
		TopCenter:       0.85,
		BaseDamage:      1,
		PerfectBonus:    1,
		ComboMultiplier: 0.2,
	}
}

func activeMinigame() MinigameData {
	m := NewMinigame(testTuning())
	m.Activate()
	return m
}

func TestMinigame_ActivateResets(t *testing.T) {
	m := NewMinigame(testTuning())
	m.Position = 0.7
	m.Direction = -1
	m.Speed = 1.5
	m.ZoneWidth = 0.1
	m.ComboCount = 4

	m.Activate()

	if !m.Active {
		t.Error("Expected minigame to be active")
	}
	if m.Position != 0 || m.Direction != 1 {
		t.Errorf("Expected position 0 direction +1, got %f %d", m.Position, m.Direction)
	}
	if m.Speed != 0.8 || m.ZoneWidth != 0.18 || m.ComboCount != 0 {
		t.Errorf("Expected base difficulty, got speed=%f zone=%f combo=%d", m.Speed, m.ZoneWidth, m.ComboCount)
	}
}

func TestMinigame_DeactivateKeepsState(t *testing.T) {
	m := activeMinigame()
	m.Advance(0.5)
	pos, speed := m.Position, m.Speed

	m.Deactivate()

	if m.Active {
		t.Error("Expected minigame to be inactive")
	}
	if m.Position != pos || m.Speed != speed {
		t.Errorf("Expected position %f speed %f to be kept, got %f %f", pos, speed, m.Position, m.Speed)
	}
}

func TestMinigame_AdvanceStaysInBounds(t *testing.T) {
	tests := []struct {
		name      string
		position  float64
		direction int
		speed     float64
		dt        float64
	}{
		{"slow from bottom", 0, 1, 0.8, 1.0 / 60},
		{"fast from top", 1, -1, 2.0, 1.0 / 60},
		{"huge step", 0.5, 1, 2.0, 3.7},
		{"mid falling", 0.42, -1, 1.3, 0.05},
		{"zero step", 0.3, 1, 0.8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := activeMinigame()
			m.Position = tt.position
			m.Direction = tt.direction
			m.Speed = tt.speed

			for i := 0; i < 2000; i++ {
				prevDir := m.Direction
				m.Advance(tt.dt)

				if m.Position < 0 || m.Position > 1 {
					t.Fatalf("Step %d: position %f left [0, 1]", i, m.Position)
				}
				if m.Direction != prevDir && m.Position != 0 && m.Position != 1 {
					t.Fatalf("Step %d: direction flipped away from a bound at %f", i, m.Position)
				}
				if m.Position == 1 && m.Direction != -1 {
					t.Fatalf("Step %d: expected direction -1 at top, got %d", i, m.Direction)
				}
				if m.Position == 0 && tt.dt > 0 && m.Direction != 1 {
					t.Fatalf("Step %d: expected direction +1 at bottom, got %d", i, m.Direction)
				}
			}
		})
	}
}

func TestMinigame_AdvanceClampsWithoutOvershoot(t *testing.T) {
	m := activeMinigame()
	m.Position = 0.95
	m.Speed = 1

	m.Advance(0.2)

	if m.Position != 1 {
		t.Errorf("Expected position clamped to 1, got %f", m.Position)
	}
	if m.Direction != -1 {
		t.Errorf("Expected direction -1, got %d", m.Direction)
	}

	m.Advance(0.1)
	if math.Abs(m.Position-0.9) > epsilon {
		t.Errorf("Expected position 0.9 on the way back, got %f", m.Position)
	}
}

func TestMinigame_AdvanceInactiveOrNegative(t *testing.T) {
	m := NewMinigame(testTuning())
	m.Advance(1)
	if m.Position != 0 {
		t.Errorf("Expected inactive minigame not to move, got %f", m.Position)
	}

	m.Activate()
	m.Position = 0.5
	m.Advance(-0.1)
	if m.Position != 0.5 || m.Direction != 1 {
		t.Errorf("Expected negative dt to be ignored, got %f %d", m.Position, m.Direction)
	}
}

func TestMinigame_TryHitInactive(t *testing.T) {
	m := NewMinigame(testTuning())
	m.Position = m.BottomCenter()
	before := m

	judgment, damage := m.TryHit()

	if judgment != JudgmentMiss || damage != 0 {
		t.Errorf("Expected (Miss, 0), got (%s, %d)", judgment, damage)
	}
	if m != before {
		t.Errorf("Expected no state change, got %+v", m)
	}
}

func TestMinigame_TryHitJudgments(t *testing.T) {
	// Base zone 0.18 -> green half 0.09, perfect half 0.0315
	tests := []struct {
		name     string
		position float64
		want     Judgment
		damage   int
	}{
		{"bottom center", 0.15, JudgmentPerfect, 2},
		{"top center", 0.85, JudgmentPerfect, 2},
		{"inside perfect edge", 0.15 + 0.03, JudgmentPerfect, 2},
		{"good below top", 0.85 - 0.06, JudgmentGood, 1},
		{"good above bottom", 0.15 + 0.08, JudgmentGood, 1},
		{"middle of bar", 0.5, JudgmentMiss, 0},
		{"very top", 1.0, JudgmentMiss, 0},
		{"very bottom", 0.0, JudgmentMiss, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := activeMinigame()
			m.Position = tt.position

			judgment, damage := m.TryHit()

			if judgment != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, judgment)
			}
			if damage != tt.damage {
				t.Errorf("Expected damage %d, got %d", tt.damage, damage)
			}
		})
	}
}

func TestMinigame_GoodHitLeavesDifficulty(t *testing.T) {
	m := activeMinigame()
	m.Position = m.BottomCenter()
	m.TryHit()
	speed, zone, combo := m.Speed, m.ZoneWidth, m.ComboCount

	m.Position = m.TopCenter() - 0.06
	judgment, _ := m.TryHit()

	if judgment != JudgmentGood {
		t.Fatalf("Expected Good, got %s", judgment)
	}
	if m.Speed != speed || m.ZoneWidth != zone || m.ComboCount != combo {
		t.Errorf("Expected Good to change nothing, got speed=%f zone=%f combo=%d", m.Speed, m.ZoneWidth, m.ComboCount)
	}
}

func TestMinigame_PerfectStreakThenMiss(t *testing.T) {
	tuning := testTuning()

	for n := 1; n <= 20; n++ {
		m := activeMinigame()
		for i := 0; i < n; i++ {
			m.Position = m.BottomCenter()
			if judgment, _ := m.TryHit(); judgment != JudgmentPerfect {
				t.Fatalf("n=%d hit %d: expected Perfect, got %s", n, i, judgment)
			}
		}

		wantSpeed := math.Min(tuning.BaseSpeed+float64(n)*tuning.SpeedIncrement, tuning.MaxSpeed)
		wantZone := math.Max(tuning.BaseZoneWidth-float64(n)*tuning.ZoneShrink, tuning.MinZoneWidth)
		if math.Abs(m.Speed-wantSpeed) > epsilon {
			t.Errorf("n=%d: expected speed %f, got %f", n, wantSpeed, m.Speed)
		}
		if math.Abs(m.ZoneWidth-wantZone) > epsilon {
			t.Errorf("n=%d: expected zone width %f, got %f", n, wantZone, m.ZoneWidth)
		}
		if m.ComboCount != n {
			t.Errorf("n=%d: expected combo %d, got %d", n, n, m.ComboCount)
		}

		// A miss resets difficulty but leaves the indicator where it is
		m.Position = 0.5
		m.Direction = -1
		if judgment, damage := m.TryHit(); judgment != JudgmentMiss || damage != 0 {
			t.Fatalf("n=%d: expected (Miss, 0), got (%s, %d)", n, judgment, damage)
		}
		if m.Speed != tuning.BaseSpeed || m.ZoneWidth != tuning.BaseZoneWidth || m.ComboCount != 0 {
			t.Errorf("n=%d: expected reset to base, got speed=%f zone=%f combo=%d", n, m.Speed, m.ZoneWidth, m.ComboCount)
		}
		if m.Position != 0.5 || m.Direction != -1 {
			t.Errorf("n=%d: expected miss to keep position/direction, got %f %d", n, m.Position, m.Direction)
		}
	}
}

func TestMinigame_PerfectDamageFormula(t *testing.T) {
	m := activeMinigame()
	m.ComboCount = 2 // third perfect in a row

	m.Position = m.TopCenter()
	judgment, damage := m.TryHit()

	if judgment != JudgmentPerfect {
		t.Fatalf("Expected Perfect, got %s", judgment)
	}
	if m.ComboCount != 3 {
		t.Fatalf("Expected combo 3, got %d", m.ComboCount)
	}
	// 1 + 1 + floor(3 * 0.2)
	if damage != 2 {
		t.Errorf("Expected damage 2, got %d", damage)
	}

	m.ComboCount = 4
	m.Position = m.BottomCenter()
	if _, damage := m.TryHit(); damage != 3 {
		t.Errorf("Expected damage 3 at combo 5, got %d", damage)
	}
}

func TestMinigame_NearerZoneWins(t *testing.T) {
	tuning := testTuning()
	tuning.BottomCenter = 0.45
	tuning.TopCenter = 0.55
	m := NewMinigame(tuning)
	m.Activate()

	// 0.01 from the top zone, 0.09 from the bottom one
	m.Position = 0.54
	if judgment, _ := m.TryHit(); judgment != JudgmentPerfect {
		t.Errorf("Expected Perfect from the nearer zone, got %s", judgment)
	}
}

func TestMinigame_PerfectZoneWidth(t *testing.T) {
	m := NewMinigame(testTuning())
	if got := m.PerfectZoneWidth(); math.Abs(got-0.063) > epsilon {
		t.Errorf("Expected perfect width 0.063, got %f", got)
	}
}
