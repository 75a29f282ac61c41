package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Fraction returns Current/Max for display. It is not clamped, so a tree
// taken below zero reports a negative fraction.
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

var Health = donburi.NewComponentType[HealthData]()
