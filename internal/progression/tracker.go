package progression

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/osse101/BrandishPet_Go/internal/clock"
	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/event"
	"github.com/osse101/BrandishPet_Go/internal/logger"
	"github.com/osse101/BrandishPet_Go/internal/utils"
)

// CoinSink receives the bonus coins an XP award produces
type CoinSink interface {
	AddCoins(ctx context.Context, amount int, source string) (int, error)
}

// Tracker owns the progression record of one entity
type Tracker struct {
	mu       sync.Mutex
	entityID string
	state    domain.MascotProgression
	clock    clock.Clock
	sink     CoinSink
	bus      event.Bus
}

// NewTracker wraps a loaded record. A nil sink disables bonus coins; a nil bus disables events.
func NewTracker(entityID string, state domain.MascotProgression, clk clock.Clock, sink CoinSink, bus event.Bus) *Tracker {
	if clk == nil {
		clk = clock.New()
	}
	if bus == nil {
		bus = event.NopBus{}
	}
	state = state.Clone()
	state.UnlockedFeatures = normalize(state.UnlockedFeatures)
	state.UnlockedRooms = normalize(state.UnlockedRooms)
	return &Tracker{entityID: entityID, state: state, clock: clk, sink: sink, bus: bus}
}

// AddXP awards XP, evolves the pet when a threshold is crossed and pays the XP coin bonus
func (t *Tracker) AddXP(ctx context.Context, amount int, source string) (*domain.XPAwardResult, error) {
	if amount < 0 {
		return nil, fmt.Errorf("xp %d: %w", amount, domain.ErrInvalidAmount)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if amount > math.MaxInt-t.state.XP {
		return nil, fmt.Errorf("xp %d on %d overflows: %w", amount, t.state.XP, domain.ErrInvalidAmount)
	}

	log := logger.FromContext(ctx)
	now := t.clock.Now()

	oldStage := t.state.Stage
	newXP := t.state.XP + amount
	newStage := StageFor(newXP)
	if newStage.Index() < oldStage.Index() {
		log.Warn(LogMsgStageRegression, "stored", oldStage, "derived", newStage, "xp", newXP)
		newStage = oldStage
	}

	var ageDays int
	if !t.state.LastActivityTimestamp.IsZero() {
		ageDays = utils.CeilDays(now.Sub(t.state.LastActivityTimestamp))
	}

	result := &domain.XPAwardResult{
		Source:   source,
		XPGained: amount,
		NewXP:    newXP,
		OldStage: oldStage,
		NewStage: newStage,
		Evolved:  newStage != oldStage,
	}

	if result.Evolved {
		// every stage crossed contributes, so skipping a stage never loses its unlocks
		u := CumulativeUnlocks(newStage)
		t.state.UnlockedFeatures, result.NewFeatures = merge(t.state.UnlockedFeatures, u.Features)
		t.state.UnlockedRooms, result.NewRooms = merge(t.state.UnlockedRooms, u.Rooms)
	}

	t.state.XP = newXP
	t.state.Stage = newStage
	t.state.XPToNext = XPToNext(newXP)
	t.state.AgeDays = ageDays
	t.state.LastActivityTimestamp = now
	result.XPToNext = t.state.XPToNext

	log.Info(LogMsgXPAwarded, "entity_id", t.entityID, "xp", amount, "source", source, "new_xp", newXP, "stage", newStage)
	t.publish(ctx, domain.EventTypeXPGained, event.XPPayloadV1{Amount: amount, Source: source, NewXP: newXP})

	if result.Evolved {
		log.Info(LogMsgPetEvolved, "entity_id", t.entityID, "from", oldStage, "to", newStage)
		t.publish(ctx, domain.EventTypePetEvolved, event.EvolutionPayloadV1{
			OldStage:    oldStage,
			NewStage:    newStage,
			NewFeatures: result.NewFeatures,
			NewRooms:    result.NewRooms,
		})
	}

	if bonus := amount / XPCoinDivisor; bonus > 0 && t.sink != nil {
		_, err := t.sink.AddCoins(ctx, bonus, domain.SourceXPBonus)
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			// a full wallet forfeits the bonus but keeps the XP
			log.Warn(LogMsgBonusSkipped, "entity_id", t.entityID, "bonus", bonus, "error", err)
		case err != nil:
			return result, fmt.Errorf("award xp bonus coins: %w", err)
		default:
			result.BonusCoins = bonus
		}
	}

	return result, nil
}

// UnlockPremium adds a feature granted outside the stage table, typically after a purchase.
// It reports whether the feature was newly added.
func (t *Tracker) UnlockPremium(ctx context.Context, feature string) (bool, error) {
	feature = strings.TrimSpace(feature)
	if feature == "" {
		return false, domain.ErrFeatureRequired
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var added []string
	t.state.UnlockedFeatures, added = merge(t.state.UnlockedFeatures, []string{feature})
	if len(added) == 0 {
		return false, nil
	}

	logger.FromContext(ctx).Info(LogMsgPremiumUnlocked, "entity_id", t.entityID, "feature", feature)
	t.publish(ctx, domain.EventTypePremiumUnlocked, event.PremiumPayloadV1{Feature: feature})
	return true, nil
}

// IsFeatureUnlocked reports whether feature is available
func (t *Tracker) IsFeatureUnlocked(feature string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return contains(t.state.UnlockedFeatures, feature)
}

// IsRoomUnlocked reports whether room is available
func (t *Tracker) IsRoomUnlocked(room string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return contains(t.state.UnlockedRooms, room)
}

// Stage returns the current stage
func (t *Tracker) Stage() domain.Stage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Stage
}

// StageIndex returns the zero-based position of the current stage
func (t *Tracker) StageIndex() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Stage.Index()
}

// Snapshot returns a copy of the record
func (t *Tracker) Snapshot() domain.MascotProgression {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Clone()
}

func (t *Tracker) publish(ctx context.Context, eventType string, payload interface{}) {
	if err := t.bus.Publish(ctx, event.New(eventType, t.entityID, t.clock.Now(), payload)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", eventType, "error", err)
	}
}
