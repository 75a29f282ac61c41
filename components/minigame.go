package components

import (
	"math"

	cfg "github.com/automoto/timber/config"
	"github.com/yohamta/donburi"
)

// Judgment is the outcome of a timing hit attempt
type Judgment int

const (
	JudgmentMiss Judgment = iota
	JudgmentGood
	JudgmentPerfect
)

func (j Judgment) String() string {
	switch j {
	case JudgmentPerfect:
		return "Perfect"
	case JudgmentGood:
		return "Good"
	default:
		return "Miss"
	}
}

// MinigameData is the timing bar: an indicator bouncing between 0 (bottom)
// and 1 (top) with a green zone centered on BottomCenter and TopCenter.
// Speed only grows and ZoneWidth only shrinks through perfect hits; both
// return to base on Activate or a miss.
type MinigameData struct {
	Active     bool
	Position   float64 // 0-1, bottom to top
	Direction  int     // +1 rising, -1 falling
	Speed      float64
	ComboCount int
	ZoneWidth  float64 // green zone width, perfect zone is a fraction of it

	Tuning cfg.MinigameConfig
}

// NewMinigame returns an inactive minigame using the given tuning.
func NewMinigame(tuning cfg.MinigameConfig) MinigameData {
	return MinigameData{
		Direction: 1,
		Speed:     tuning.BaseSpeed,
		ZoneWidth: tuning.BaseZoneWidth,
		Tuning:    tuning,
	}
}

// BottomCenter is the center of the lower zone.
func (m *MinigameData) BottomCenter() float64 { return m.Tuning.BottomCenter }

// TopCenter is the center of the upper zone.
func (m *MinigameData) TopCenter() float64 { return m.Tuning.TopCenter }

// PerfectZoneWidth is the width of the perfect window inside each green zone.
func (m *MinigameData) PerfectZoneWidth() float64 {
	return m.ZoneWidth * m.Tuning.PerfectRatio
}

// Activate starts a new session from the bottom of the bar with base difficulty.
func (m *MinigameData) Activate() {
	m.Active = true
	m.resetDifficulty()
	m.Position = 0
	m.Direction = 1
}

// Deactivate stops the session. Position and speed are left as they were
// until the next Activate.
func (m *MinigameData) Deactivate() {
	m.Active = false
}

func (m *MinigameData) resetDifficulty() {
	m.ComboCount = 0
	m.Speed = m.Tuning.BaseSpeed
	m.ZoneWidth = m.Tuning.BaseZoneWidth
}

// Advance moves the indicator by dt seconds, reflecting off either end of
// the bar. Overshoot past a bound is dropped, not carried into the return trip.
func (m *MinigameData) Advance(dt float64) {
	if !m.Active || dt <= 0 {
		return
	}

	m.Position += float64(m.Direction) * m.Speed * dt

	if m.Position >= 1 {
		m.Position = 1
		m.Direction = -1
	} else if m.Position <= 0 {
		m.Position = 0
		m.Direction = 1
	}
}

// DistanceFromZone returns the distance from the indicator to the nearer zone center.
func (m *MinigameData) DistanceFromZone() float64 {
	fromBottom := math.Abs(m.Position - m.Tuning.BottomCenter)
	fromTop := math.Abs(m.Position - m.Tuning.TopCenter)
	return math.Min(fromBottom, fromTop)
}

// TryHit judges the indicator's current position and returns the damage to
// deal. Perfect hits raise the combo and difficulty, good hits change
// nothing, misses reset difficulty but leave the indicator where it is.
func (m *MinigameData) TryHit() (Judgment, int) {
	if !m.Active {
		return JudgmentMiss, 0
	}

	dist := m.DistanceFromZone()
	halfGreen := m.ZoneWidth / 2
	halfPerfect := m.PerfectZoneWidth() / 2

	switch {
	case dist <= halfPerfect:
		m.ComboCount++
		m.Speed = math.Min(m.Speed+m.Tuning.SpeedIncrement, m.Tuning.MaxSpeed)
		m.ZoneWidth = math.Max(m.ZoneWidth-m.Tuning.ZoneShrink, m.Tuning.MinZoneWidth)

		damage := m.Tuning.BaseDamage + m.Tuning.PerfectBonus +
			int(math.Floor(float64(m.ComboCount)*m.Tuning.ComboMultiplier))
		return JudgmentPerfect, damage

	case dist <= halfGreen:
		return JudgmentGood, m.Tuning.BaseDamage

	default:
		m.resetDifficulty()
		return JudgmentMiss, 0
	}
}

var Minigame = donburi.NewComponentType[MinigameData]()
