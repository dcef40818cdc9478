package mood

import "github.com/osse101/BrandishPet_Go/internal/domain"

// ActionDef describes one care action
type ActionDef struct {
	Deltas domain.StatDeltas
	XP     int
	// Guard returns a rejection message when the action must not run
	Guard func(s *domain.MoodState) (string, bool)
}

func rejectWhen(cond func(s *domain.MoodState) bool, msg string) func(s *domain.MoodState) (string, bool) {
	return func(s *domain.MoodState) (string, bool) {
		if cond(s) {
			return msg, true
		}
		return "", false
	}
}

// DefaultActions is the care action table
func DefaultActions() map[domain.Action]ActionDef {
	return map[domain.Action]ActionDef{
		domain.ActionFeed: {
			Deltas: domain.StatDeltas{domain.StatHunger: 25, domain.StatHappiness: 10},
			XP:     20,
			Guard:  rejectWhen(func(s *domain.MoodState) bool { return s.Hunger >= FullThreshold }, MsgRejectFull),
		},
		domain.ActionPlay: {
			Deltas: domain.StatDeltas{domain.StatHappiness: 20, domain.StatEnergy: -15, domain.StatHunger: -10, domain.StatAffection: 5},
			XP:     30,
			Guard:  rejectWhen(func(s *domain.MoodState) bool { return s.Energy <= ExhaustedThreshold }, MsgRejectTired),
		},
		domain.ActionSleep: {
			Deltas: domain.StatDeltas{domain.StatEnergy: 40, domain.StatHappiness: 5},
			XP:     15,
		},
		domain.ActionBathe: {
			Deltas: domain.StatDeltas{domain.StatCleanliness: 35, domain.StatHappiness: 5},
			XP:     25,
			Guard:  rejectWhen(func(s *domain.MoodState) bool { return s.Cleanliness >= FullThreshold }, MsgRejectClean),
		},
		domain.ActionMedicine: {
			Deltas: domain.StatDeltas{domain.StatHealth: 30, domain.StatHappiness: -5},
			XP:     10,
			Guard:  rejectWhen(func(s *domain.MoodState) bool { return s.Health >= FullThreshold }, MsgRejectHealthy),
		},
		domain.ActionPet: {
			Deltas: domain.StatDeltas{domain.StatAffection: 10, domain.StatHappiness: 5},
			XP:     5,
		},
	}
}
