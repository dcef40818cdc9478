package progression

import (
	"sort"
	"time"

	"github.com/osse101/BrandishPet_Go/internal/domain"
)

// Unlocks is the set of features and rooms a stage opens
type Unlocks struct {
	Features []string
	Rooms    []string
}

var thresholds = []struct {
	stage domain.Stage
	xp    int
}{
	{domain.StageBaby, ThresholdBaby},
	{domain.StageKid, ThresholdKid},
	{domain.StageTeen, ThresholdTeen},
	{domain.StageAdult, ThresholdAdult},
	{domain.StageOld, ThresholdOld},
}

var stageUnlocks = map[domain.Stage]Unlocks{
	domain.StageBaby:  {Features: []string{"feed", "pet", "sleep"}, Rooms: []string{"nursery"}},
	domain.StageKid:   {Features: []string{"play", "bathe", "shop"}, Rooms: []string{"playroom", "bathroom"}},
	domain.StageTeen:  {Features: []string{"medicine", "minigames", "wardrobe"}, Rooms: []string{"garden"}},
	domain.StageAdult: {Features: []string{"daily_bonus", "trading"}, Rooms: []string{"kitchen", "arcade"}},
	domain.StageOld:   {Features: []string{"memoirs"}, Rooms: []string{"library"}},
}

// StageFor returns the stage reached at xp
func StageFor(xp int) domain.Stage {
	stage := domain.StageBaby
	for _, t := range thresholds {
		if xp >= t.xp {
			stage = t.stage
		}
	}
	return stage
}

// Threshold returns the XP at which stage begins
func Threshold(stage domain.Stage) (int, error) {
	for _, t := range thresholds {
		if t.stage == stage {
			return t.xp, nil
		}
	}
	return 0, domain.ErrUnknownStage
}

// XPToNext returns the distance from xp to the next stage threshold, or 0 at the last stage
func XPToNext(xp int) int {
	for _, t := range thresholds {
		if t.xp > xp {
			return t.xp - xp
		}
	}
	return 0
}

// CumulativeUnlocks returns the union of unlock sets for every stage up to and including stage
func CumulativeUnlocks(stage domain.Stage) Unlocks {
	var out Unlocks
	for _, s := range domain.Stages {
		if s.Index() > stage.Index() {
			break
		}
		u := stageUnlocks[s]
		out.Features = append(out.Features, u.Features...)
		out.Rooms = append(out.Rooms, u.Rooms...)
	}
	out.Features = normalize(out.Features)
	out.Rooms = normalize(out.Rooms)
	return out
}

// DefaultProgression is the record of a newly hatched pet
func DefaultProgression(now time.Time) domain.MascotProgression {
	u := CumulativeUnlocks(domain.StageBaby)
	return domain.MascotProgression{
		Stage:                 domain.StageBaby,
		XP:                    0,
		XPToNext:              XPToNext(0),
		AgeDays:               0,
		UnlockedFeatures:      u.Features,
		UnlockedRooms:         u.Rooms,
		LastActivityTimestamp: now,
	}
}

// merge adds every entry of add to set and returns the sorted union and the entries that were new
func merge(set, add []string) (union []string, added []string) {
	seen := make(map[string]bool, len(set)+len(add))
	for _, s := range set {
		seen[s] = true
	}
	union = append([]string(nil), set...)
	for _, s := range add {
		if !seen[s] {
			seen[s] = true
			union = append(union, s)
			added = append(added, s)
		}
	}
	return normalize(union), added
}

func normalize(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func contains(set []string, v string) bool {
	i := sort.SearchStrings(set, v)
	return i < len(set) && set[i] == v
}
