package mood

import "time"

// Defaults for Config
const (
	DefaultTickInterval         = 30 * time.Second
	DefaultAnimationDuration    = 2 * time.Second
	DefaultNeglectHealthPenalty = 0.0

	DefaultHungerDecay      = 1.0
	DefaultEnergyDecay      = 0.5
	DefaultCleanlinessDecay = 0.5
	DefaultHappinessDecay   = 0.75
)

// Guard limits for care actions
const (
	FullThreshold      = 95.0
	ExhaustedThreshold = 15.0
)

// Mood labels, most to least content
const (
	LabelEcstatic  = "ecstatic"
	LabelHappy     = "happy"
	LabelContent   = "content"
	LabelSad       = "sad"
	LabelMiserable = "miserable"
	LabelSick      = "sick"
)

// Log messages
const (
	LogMsgActionApplied  = "Care action applied"
	LogMsgActionRejected = "Care action rejected"
)
