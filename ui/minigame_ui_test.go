package ui

import (
	"testing"

	"github.com/automoto/timber/components"
	cfg "github.com/automoto/timber/config"
)

func TestResultText(t *testing.T) {
	tests := []struct {
		result components.Judgment
		combo  int
		want   string
	}{
		{components.JudgmentPerfect, 1, "PERFECT!"},
		{components.JudgmentPerfect, 4, "PERFECT! x4"},
		{components.JudgmentGood, 3, "Good"},
		{components.JudgmentMiss, 0, "Miss"},
	}
	for _, tt := range tests {
		if got := ResultText(tt.result, tt.combo); got != tt.want {
			t.Errorf("ResultText(%s, %d): expected %q, got %q", tt.result, tt.combo, tt.want, got)
		}
	}
}

func TestComboText(t *testing.T) {
	if got := ComboText(0); got != "" {
		t.Errorf("Expected no combo text, got %q", got)
	}
	if got := ComboText(5); got != "x5" {
		t.Errorf("Expected x5, got %q", got)
	}
}

func TestHudState_ResultExpires(t *testing.T) {
	var s hudState
	s.showMinigame(true)
	s.showHitResult(components.JudgmentPerfect, 2)

	if s.result != "PERFECT! x2" {
		t.Fatalf("Expected result text, got %q", s.result)
	}

	dt := 1.0 / 60
	steps := int(cfg.Presentation.ResultDisplayDuration/dt) - 2
	for i := 0; i < steps; i++ {
		s.tick(dt)
	}
	if s.result == "" {
		t.Error("Expected result still shown before the display duration")
	}

	for i := 0; i < 4; i++ {
		s.tick(dt)
	}
	if s.result != "" {
		t.Errorf("Expected result cleared, got %q", s.result)
	}
	if s.combo != 2 {
		t.Errorf("Expected combo kept after the result fades, got %d", s.combo)
	}
}

func TestHudState_HidingMinigameClears(t *testing.T) {
	var s hudState
	s.showMinigame(true)
	s.showHitResult(components.JudgmentGood, 3)

	s.showMinigame(false)

	if s.minigameVisible || s.result != "" || s.combo != 0 {
		t.Errorf("Expected hidden minigame to clear result and combo, got %+v", s)
	}
}
