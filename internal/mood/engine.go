// Package mood implements the pet's stat decay and care actions.
package mood

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/BrandishPet_Go/internal/clock"
	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/logger"
	"github.com/osse101/BrandishPet_Go/internal/utils"
)

// Config tunes decay and animation.
// DecayRates holds positive per-tick amounts subtracted from each stat.
type Config struct {
	DecayRates           domain.StatDeltas
	TickInterval         time.Duration
	AnimationDuration    time.Duration
	NeglectHealthPenalty float64
}

// DefaultConfig returns the canonical rate table
func DefaultConfig() Config {
	return Config{
		DecayRates: domain.StatDeltas{
			domain.StatHunger:      DefaultHungerDecay,
			domain.StatEnergy:      DefaultEnergyDecay,
			domain.StatCleanliness: DefaultCleanlinessDecay,
			domain.StatHappiness:   DefaultHappinessDecay,
		},
		TickInterval:         DefaultTickInterval,
		AnimationDuration:    DefaultAnimationDuration,
		NeglectHealthPenalty: DefaultNeglectHealthPenalty,
	}
}

// Engine applies decay and care actions to a MoodState.
// It does not own the state; callers serialize access to it.
type Engine struct {
	cfg     Config
	actions map[domain.Action]ActionDef
	clock   clock.Clock
	rnd     func() float64

	mu             sync.Mutex
	animatingUntil time.Time
}

// NewEngine creates an engine. A nil rnd uses the shared random source.
func NewEngine(cfg Config, clk clock.Clock, rnd func() float64) *Engine {
	if clk == nil {
		clk = clock.New()
	}
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	return &Engine{
		cfg:     cfg,
		actions: DefaultActions(),
		clock:   clk,
		rnd:     rnd,
	}
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// Decay applies elapsedTicks decay ticks. Non-positive tick counts do nothing.
// Health only suffers from neglect when NeglectHealthPenalty is set.
func (e *Engine) Decay(state *domain.MoodState, elapsedTicks int) {
	for i := 0; i < elapsedTicks; i++ {
		before := *state
		for stat, rate := range e.cfg.DecayRates {
			if v, ok := state.Get(stat); ok {
				state.Set(stat, v-rate)
			}
		}
		if state.Hunger <= domain.MinStat || state.Cleanliness <= domain.MinStat {
			state.Set(domain.StatHealth, state.Health-e.cfg.NeglectHealthPenalty)
		}
		if *state == before {
			// every decaying stat is at its floor
			return
		}
	}
}

// TicksIn returns how many whole decay ticks fit in d
func (e *Engine) TicksIn(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d / e.cfg.TickInterval)
}

// Apply runs a care action. A guard rejection returns Accepted=false and leaves state untouched.
func (e *Engine) Apply(ctx context.Context, state *domain.MoodState, action domain.Action) (domain.ActionResult, error) {
	def, ok := e.actions[action]
	if !ok {
		return domain.ActionResult{}, fmt.Errorf("%w: '%s'", domain.ErrUnknownAction, action)
	}

	log := logger.FromContext(ctx)
	if def.Guard != nil {
		if msg, rejected := def.Guard(state); rejected {
			log.Debug(LogMsgActionRejected, "action", action, "reason", msg)
			return domain.ActionResult{Action: action, Accepted: false, Message: msg}, nil
		}
	}

	applied := e.applyDeltas(state, def.Deltas)

	now := e.clock.Now()
	switch action {
	case domain.ActionFeed:
		state.LastFed = &now
	case domain.ActionPlay:
		state.LastPlayed = &now
	case domain.ActionSleep:
		state.LastSlept = &now
	case domain.ActionBathe:
		state.LastBathed = &now
	}

	e.mu.Lock()
	e.animatingUntil = now.Add(e.cfg.AnimationDuration)
	e.mu.Unlock()

	log.Debug(LogMsgActionApplied, "action", action, "deltas", applied)
	return domain.ActionResult{
		Action:   action,
		Accepted: true,
		Message:  e.pickMessage(action),
		XP:       def.XP,
		Deltas:   applied,
	}, nil
}

// ApplyEffect applies an item effect and returns the changes that actually landed after clamping
func (e *Engine) ApplyEffect(state *domain.MoodState, deltas domain.StatDeltas) domain.StatDeltas {
	return e.applyDeltas(state, deltas)
}

func (e *Engine) applyDeltas(state *domain.MoodState, deltas domain.StatDeltas) domain.StatDeltas {
	applied := make(domain.StatDeltas, len(deltas))
	for stat, d := range deltas {
		before, ok := state.Get(stat)
		if !ok {
			continue
		}
		state.Set(stat, before+d)
		after, _ := state.Get(stat)
		applied[stat] = after - before
	}
	return applied
}

// IsAnimating reports whether the last accepted action is still animating
func (e *Engine) IsAnimating() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock.Now().Before(e.animatingUntil)
}

func (e *Engine) pickMessage(action domain.Action) string {
	pool := flavorText[action]
	if idx := utils.PickIndex(e.rnd(), len(pool)); idx >= 0 {
		return pool[idx]
	}
	return ""
}

// Label summarizes a state as a single mood word
func Label(state domain.MoodState) string {
	if state.Health < 30 {
		return LabelSick
	}
	avg := (state.Happiness + state.Energy + state.Hunger + state.Cleanliness + state.Affection) / 5
	switch {
	case avg >= 85:
		return LabelEcstatic
	case avg >= 65:
		return LabelHappy
	case avg >= 45:
		return LabelContent
	case avg >= 25:
		return LabelSad
	default:
		return LabelMiserable
	}
}
