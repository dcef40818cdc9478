package cooldown

import "time"

// Action names with a cooldown
const (
	ActionDailyClaim = "daily_claim"
)

const (
	// DailyClaimCooldown is the minimum gap between two daily coin claims
	DailyClaimCooldown = 24 * time.Hour

	// DefaultCooldownDuration is the fallback cooldown when no specific duration is configured
	DefaultCooldownDuration = 5 * time.Minute
)

const (
	// LogMsgDevModeBypass is logged when dev mode bypasses cooldown enforcement
	LogMsgDevModeBypass = "DEV_MODE: Bypassing cooldown enforcement"
)

const (
	// ErrFmtCooldownWithHours formats cooldown error with hours and minutes
	ErrFmtCooldownWithHours = "You can %s again in %dh %dm"

	// ErrFmtCooldownWithMinutes formats cooldown error with minutes and seconds
	ErrFmtCooldownWithMinutes = "You can %s again in %dm %ds"

	// ErrFmtCooldownSecondsOnly formats cooldown error with seconds only
	ErrFmtCooldownSecondsOnly = "You can %s again in %ds"
)
