package cooldown

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishPet_Go/internal/clock"
	"github.com/osse101/BrandishPet_Go/internal/domain"
)

func TestCheckCooldownInternal(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	duration := 24 * time.Hour

	tests := []struct {
		name           string
		lastUsed       time.Time
		wantOnCooldown bool
		wantRemaining  time.Duration
	}{
		{"never used", time.Time{}, false, 0},
		{"just used", now, true, 24 * time.Hour},
		{"active cooldown", now.Add(-2 * time.Hour), true, 22 * time.Hour},
		{"exact boundary", now.Add(-24 * time.Hour), false, 0},
		{"expired", now.Add(-25 * time.Hour), false, 0},
		{"just before expiry", now.Add(-24*time.Hour + time.Second), true, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onCooldown, remaining := checkCooldownInternal(now, tt.lastUsed, duration)
			assert.Equal(t, tt.wantOnCooldown, onCooldown)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}

func TestEnforceCooldown(t *testing.T) {
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	clk := clock.NewSimulated(start)
	svc := NewService(Config{}, clk)
	ctx := context.Background()

	t.Run("runs fn when off cooldown", func(t *testing.T) {
		called := false
		err := svc.EnforceCooldown(ctx, ActionDailyClaim, time.Time{}, func() error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("blocks fn when on cooldown", func(t *testing.T) {
		called := false
		err := svc.EnforceCooldown(ctx, ActionDailyClaim, start.Add(-time.Hour), func() error {
			called = true
			return nil
		})
		require.Error(t, err)
		assert.False(t, called)
		assert.True(t, errors.Is(err, domain.ErrOnCooldown))

		var cdErr ErrOnCooldown
		require.True(t, errors.As(err, &cdErr))
		assert.Equal(t, 23*time.Hour, cdErr.Remaining)
		assert.Contains(t, cdErr.Error(), "23h 0m")
	})

	t.Run("propagates fn error", func(t *testing.T) {
		boom := errors.New("boom")
		err := svc.EnforceCooldown(ctx, ActionDailyClaim, time.Time{}, func() error { return boom })
		assert.ErrorIs(t, err, boom)
	})
}

func TestDevModeBypass(t *testing.T) {
	clk := clock.NewSimulated(time.Now())
	svc := NewService(Config{DevMode: true}, clk)

	onCooldown, _ := svc.CheckCooldown(ActionDailyClaim, clk.Now())
	assert.False(t, onCooldown)
}

func TestGetCooldownDuration(t *testing.T) {
	cfg := Config{Cooldowns: map[string]time.Duration{"custom": time.Minute}}

	assert.Equal(t, time.Minute, cfg.GetCooldownDuration("custom"))
	assert.Equal(t, DailyClaimCooldown, cfg.GetCooldownDuration(ActionDailyClaim))
	assert.Equal(t, DefaultCooldownDuration, cfg.GetCooldownDuration("other"))
}

func TestErrOnCooldownMessages(t *testing.T) {
	assert.Equal(t, "You can claim again in 5m 3s", ErrOnCooldown{Action: "claim", Remaining: 5*time.Minute + 3*time.Second}.Error())
	assert.Equal(t, "You can claim again in 42s", ErrOnCooldown{Action: "claim", Remaining: 42 * time.Second}.Error())
}
