package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BrandishPet_Go/internal/clock"
	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/logger"
)

// Service answers cooldown questions against a caller-owned "last used" timestamp.
// It holds no per-entity state; the owner persists the timestamp alongside its record.
type Service interface {
	// CheckCooldown reports whether the action is still cooling down and how long remains
	CheckCooldown(action string, lastUsed time.Time) (bool, time.Duration)

	// EnforceCooldown runs fn only when the action is off cooldown.
	// Callers must hold their own lock across the call so check and mutation are one step.
	EnforceCooldown(ctx context.Context, action string, lastUsed time.Time, fn func() error) error
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	hours := int(e.Remaining.Hours())
	minutes := int(e.Remaining.Minutes()) % 60
	seconds := int(e.Remaining.Seconds()) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf(ErrFmtCooldownWithHours, e.Action, hours, minutes)
	case minutes > 0:
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	default:
		return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
	}
}

// Is allows errors.Is() to match both ErrOnCooldown values and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

type service struct {
	config Config
	clock  clock.Clock
}

// NewService creates a cooldown service
func NewService(cfg Config, clk clock.Clock) Service {
	if clk == nil {
		clk = clock.New()
	}
	return &service{config: cfg, clock: clk}
}

func (s *service) CheckCooldown(action string, lastUsed time.Time) (bool, time.Duration) {
	if s.config.DevMode {
		return false, 0
	}
	return checkCooldownInternal(s.clock.Now(), lastUsed, s.config.GetCooldownDuration(action))
}

func (s *service) EnforceCooldown(ctx context.Context, action string, lastUsed time.Time, fn func() error) error {
	if s.config.DevMode {
		logger.FromContext(ctx).Debug(LogMsgDevModeBypass, "action", action)
		return fn()
	}

	onCooldown, remaining := s.CheckCooldown(action, lastUsed)
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}
	return fn()
}

// checkCooldownInternal is the pure cooldown rule: a zero lastUsed never cools down,
// and the cooldown ends exactly when now - lastUsed reaches duration.
func checkCooldownInternal(now, lastUsed time.Time, duration time.Duration) (bool, time.Duration) {
	if lastUsed.IsZero() {
		return false, 0
	}
	elapsed := now.Sub(lastUsed)
	if elapsed >= duration {
		return false, 0
	}
	return true, duration - elapsed
}
