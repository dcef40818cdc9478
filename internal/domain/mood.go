package domain

import "time"

// Stat bounds shared by every mood stat
const (
	MinStat = 0.0
	MaxStat = 100.0
)

// Stat names, also used as keys in StatDeltas and item effect payloads
const (
	StatHappiness   = "happiness"
	StatHealth      = "health"
	StatEnergy      = "energy"
	StatHunger      = "hunger"
	StatCleanliness = "cleanliness"
	StatAffection   = "affection"
)

// AllStats lists the six mood stats in display order
var AllStats = []string{
	StatHappiness,
	StatHealth,
	StatEnergy,
	StatHunger,
	StatCleanliness,
	StatAffection,
}

// Action is a care action a player performs on the pet
type Action string

const (
	ActionFeed     Action = "feed"
	ActionPlay     Action = "play"
	ActionSleep    Action = "sleep"
	ActionBathe    Action = "bathe"
	ActionMedicine Action = "medicine"
	ActionPet      Action = "pet"
)

// AllActions lists every supported care action
var AllActions = []Action{ActionFeed, ActionPlay, ActionSleep, ActionBathe, ActionMedicine, ActionPet}

// ParseAction converts a raw string into an Action
func ParseAction(s string) (Action, bool) {
	for _, a := range AllActions {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// MoodState holds the six bounded pet stats.
// Hunger is a fullness gauge: 100 means full, 0 means starving.
type MoodState struct {
	Happiness   float64 `json:"happiness"`
	Health      float64 `json:"health"`
	Energy      float64 `json:"energy"`
	Hunger      float64 `json:"hunger"`
	Cleanliness float64 `json:"cleanliness"`
	Affection   float64 `json:"affection"`

	LastFed    *time.Time `json:"lastFed,omitempty"`
	LastPlayed *time.Time `json:"lastPlayed,omitempty"`
	LastSlept  *time.Time `json:"lastSlept,omitempty"`
	LastBathed *time.Time `json:"lastBathed,omitempty"`

	// LastDecayed marks how far decay has been applied
	LastDecayed *time.Time `json:"lastDecayed,omitempty"`
}

// DefaultMoodState returns the stats a freshly created pet starts with
func DefaultMoodState() MoodState {
	return MoodState{
		Happiness:   80,
		Health:      100,
		Energy:      80,
		Hunger:      70,
		Cleanliness: 90,
		Affection:   50,
	}
}

// StatDeltas maps stat names to signed changes
type StatDeltas map[string]float64

// Get returns the named stat value
func (m *MoodState) Get(stat string) (float64, bool) {
	switch stat {
	case StatHappiness:
		return m.Happiness, true
	case StatHealth:
		return m.Health, true
	case StatEnergy:
		return m.Energy, true
	case StatHunger:
		return m.Hunger, true
	case StatCleanliness:
		return m.Cleanliness, true
	case StatAffection:
		return m.Affection, true
	}
	return 0, false
}

// Set writes the named stat, clamped to [MinStat, MaxStat].
// Unknown stat names are ignored and reported as false.
func (m *MoodState) Set(stat string, value float64) bool {
	value = ClampStat(value)
	switch stat {
	case StatHappiness:
		m.Happiness = value
	case StatHealth:
		m.Health = value
	case StatEnergy:
		m.Energy = value
	case StatHunger:
		m.Hunger = value
	case StatCleanliness:
		m.Cleanliness = value
	case StatAffection:
		m.Affection = value
	default:
		return false
	}
	return true
}

// Clamp forces every stat back into range
func (m *MoodState) Clamp() {
	for _, stat := range AllStats {
		v, _ := m.Get(stat)
		m.Set(stat, v)
	}
}

// Valid reports whether every stat is within range
func (m *MoodState) Valid() bool {
	for _, stat := range AllStats {
		v, _ := m.Get(stat)
		if v < MinStat || v > MaxStat || v != v {
			return false
		}
	}
	return true
}

// ClampStat bounds a stat value to [MinStat, MaxStat]
func ClampStat(v float64) float64 {
	if v != v { // NaN
		return MinStat
	}
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// ActionResult is the outcome of a care action.
// A rejected action is a normal outcome, not an error.
type ActionResult struct {
	Action   Action     `json:"action"`
	Accepted bool       `json:"accepted"`
	Message  string     `json:"message"`
	XP       int        `json:"xp"`
	Deltas   StatDeltas `json:"deltas,omitempty"`
}
