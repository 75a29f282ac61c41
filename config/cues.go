package config

// CueID represents a logical feedback cue (sound, particles, camera shake)
type CueID int

const (
	CueNone CueID = iota
	CueHit
	CuePerfectHit
	CueMiss
	CueTreeFall
)

// CueNames maps cue IDs to the names used by feedback players and logs
var CueNames = map[CueID]string{
	CueNone:       "none",
	CueHit:        "hit",
	CuePerfectHit: "perfect_hit",
	CueMiss:       "miss",
	CueTreeFall:   "tree_fall",
}

func (c CueID) String() string {
	if name, ok := CueNames[c]; ok {
		return name
	}
	return "unknown"
}
