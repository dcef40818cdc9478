package domain

import "time"

// Stage is a mascot life phase, derived from cumulative XP
type Stage string

const (
	StageBaby  Stage = "baby"
	StageKid   Stage = "kid"
	StageTeen  Stage = "teen"
	StageAdult Stage = "adult"
	StageOld   Stage = "old"
)

// Stages lists life phases in ascending order
var Stages = []Stage{StageBaby, StageKid, StageTeen, StageAdult, StageOld}

// Index returns the position of the stage in Stages, or -1 if unknown
func (s Stage) Index() int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a known stage
func (s Stage) Valid() bool {
	return s.Index() >= 0
}

// MascotProgression is the XP and unlock state of one entity
type MascotProgression struct {
	Stage                 Stage     `json:"stage"`
	XP                    int       `json:"xp"`
	XPToNext              int       `json:"xpToNext"`
	AgeDays               int       `json:"ageDays"`
	UnlockedFeatures      []string  `json:"unlockedFeatures"`
	UnlockedRooms         []string  `json:"unlockedRooms"`
	LastActivityTimestamp time.Time `json:"lastActivityTimestamp"`
}

// Valid reports whether the record is internally consistent
func (p *MascotProgression) Valid() bool {
	return p.Stage.Valid() && p.XP >= 0 && p.AgeDays >= 0 && p.XPToNext >= 0
}

// Clone returns a deep copy of the record
func (p MascotProgression) Clone() MascotProgression {
	out := p
	out.UnlockedFeatures = append([]string(nil), p.UnlockedFeatures...)
	out.UnlockedRooms = append([]string(nil), p.UnlockedRooms...)
	return out
}

// XPAwardResult contains the outcome of awarding XP
type XPAwardResult struct {
	Source      string   `json:"source"`
	XPGained    int      `json:"xp_gained"`
	NewXP       int      `json:"new_xp"`
	OldStage    Stage    `json:"old_stage"`
	NewStage    Stage    `json:"new_stage"`
	Evolved     bool     `json:"evolved"`
	XPToNext    int      `json:"xp_to_next"`
	BonusCoins  int      `json:"bonus_coins"`
	NewFeatures []string `json:"new_features,omitempty"`
	NewRooms    []string `json:"new_rooms,omitempty"`
}
