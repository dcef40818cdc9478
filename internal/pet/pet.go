// Package pet wires the mood, wallet, inventory and progression components of one entity into an aggregate.
package pet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/osse101/BrandishPet_Go/internal/clock"
	"github.com/osse101/BrandishPet_Go/internal/cooldown"
	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/economy"
	"github.com/osse101/BrandishPet_Go/internal/event"
	"github.com/osse101/BrandishPet_Go/internal/inventory"
	"github.com/osse101/BrandishPet_Go/internal/logger"
	"github.com/osse101/BrandishPet_Go/internal/mood"
	"github.com/osse101/BrandishPet_Go/internal/persistence"
	"github.com/osse101/BrandishPet_Go/internal/progression"
	"github.com/osse101/BrandishPet_Go/internal/scheduler"
)

// Construction errors
var (
	ErrCatalogRequired     = errors.New("catalog is required")
	ErrPersistenceRequired = errors.New("persistence is required")
)

// Deps are the collaborators shared by every pet
type Deps struct {
	Persistence *persistence.Adapter
	Catalog     inventory.Catalog
	Clock       clock.Clock
	Bus         event.Bus
	Cooldowns   cooldown.Service
	Ticker      scheduler.Ticker
	Mood        mood.Config
	Rand        func() float64
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = clock.New()
	}
	if d.Bus == nil {
		d.Bus = event.NopBus{}
	}
	if d.Cooldowns == nil {
		d.Cooldowns = cooldown.NewService(cooldown.Config{}, d.Clock)
	}
	if d.Mood.DecayRates == nil {
		d.Mood = mood.DefaultConfig()
	}
	return d
}

// ActionOutcome is the result of a care action, including any XP award
type ActionOutcome struct {
	domain.ActionResult
	Award *domain.XPAwardResult `json:"award,omitempty"`
	Mood  string                `json:"mood"`
}

// Status is a read-only view of a pet
type Status struct {
	EntityID    string                   `json:"entityId"`
	Mood        domain.MoodState         `json:"mood"`
	MoodLabel   string                   `json:"moodLabel"`
	Animating   bool                     `json:"animating"`
	Wallet      domain.Wallet            `json:"wallet"`
	CanClaim    bool                     `json:"canClaim"`
	NextClaimIn time.Duration            `json:"nextClaimIn"`
	Inventory   domain.Inventory         `json:"inventory"`
	Equipped    []string                 `json:"equipped"`
	Progression domain.MascotProgression `json:"progression"`
}

// Unlocks answers whether a name is unlocked as a feature or a room.
// Unlocks inform presentation only; no operation is gated on them.
type Unlocks struct {
	Name    string `json:"name"`
	Feature bool   `json:"feature"`
	Room    bool   `json:"room"`
}

// Pet is the aggregate for one entity.
// Every operation runs under one lock hold, first adopts any newer saved state and saves as its last step.
type Pet struct {
	mu       sync.Mutex
	id       string
	deps     Deps
	closed   bool
	revision string

	mood      domain.MoodState
	engine    *mood.Engine
	wallet    *economy.Wallet
	inventory *inventory.Store
	tracker   *progression.Tracker

	cancelDecay func()
}

// New builds a pet from a loaded snapshot
func New(entityID string, snap *domain.Snapshot, deps Deps) (*Pet, error) {
	if strings.TrimSpace(entityID) == "" {
		return nil, domain.ErrEntityIDRequired
	}
	if snap == nil {
		return nil, domain.ErrSnapshotNil
	}
	if deps.Catalog == nil {
		return nil, ErrCatalogRequired
	}
	deps = deps.withDefaults()

	p := &Pet{
		id:     entityID,
		deps:   deps,
		engine: mood.NewEngine(deps.Mood, deps.Clock, deps.Rand),
	}
	p.adoptLocked(snap)
	return p, nil
}

// adoptLocked replaces every component with the state in snap
func (p *Pet) adoptLocked(snap *domain.Snapshot) {
	p.revision = snap.Revision
	p.mood = snap.Mood
	p.mood.Clamp()
	if p.mood.LastDecayed == nil {
		now := p.deps.Clock.Now()
		p.mood.LastDecayed = &now
	}
	p.wallet = economy.NewWallet(p.id, snap.Wallet, p.deps.Clock, p.deps.Cooldowns, p.deps.Bus)
	p.inventory = inventory.NewStore(p.id, snap.Inventory, p.wallet, p.deps.Catalog, p.deps.Clock, p.deps.Bus)
	p.tracker = progression.NewTracker(p.id, snap.Progression, p.deps.Clock, p.wallet, p.deps.Bus)
}

// Load restores a pet from persistence, falling back to defaults for any missing component
func Load(ctx context.Context, entityID string, deps Deps) (*Pet, error) {
	if deps.Persistence == nil {
		return nil, fmt.Errorf("load pet %s: %w", entityID, ErrPersistenceRequired)
	}
	snap := deps.Persistence.Load(ctx, entityID)
	p, err := New(entityID, snap, deps)
	if err != nil {
		return nil, err
	}
	ticks := p.catchUpLocked(ctx)
	logger.FromContext(ctx).Debug(LogMsgPetLoaded, "entity_id", entityID, "stage", snap.Progression.Stage, "missed_ticks", ticks)
	return p, nil
}

// ID returns the entity id
func (p *Pet) ID() string {
	return p.id
}

// Act performs a care action. A guard rejection is returned as an outcome, not an error.
func (p *Pet) Act(ctx context.Context, action domain.Action) (*ActionOutcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, domain.ErrPetClosed
	}
	p.refreshLocked(ctx)

	res, err := p.engine.Apply(ctx, &p.mood, action)
	if err != nil {
		return nil, err
	}
	out := &ActionOutcome{ActionResult: res}

	if !res.Accepted {
		p.publish(ctx, domain.EventTypeActionRejected, event.ActionPayloadV1{Action: action, Accepted: false})
		out.Mood = mood.Label(p.mood)
		return out, nil
	}

	award, err := p.tracker.AddXP(ctx, res.XP, xpSourceActionPrefix+string(action))
	if err != nil {
		return nil, err
	}
	out.Award = award
	out.Mood = mood.Label(p.mood)

	p.publish(ctx, domain.EventTypeActionPerformed, event.ActionPayloadV1{Action: action, Accepted: true, XP: res.XP})
	return out, p.saveLocked(ctx)
}

// Buy purchases one unit of a shop item
func (p *Pet) Buy(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, domain.ErrPetClosed
	}
	p.refreshLocked(ctx)

	stack, err := p.inventory.BuyItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return stack, p.saveLocked(ctx)
}

// Use consumes one unit of an owned item and applies its effect to the mood.
// It returns the stat changes that landed after clamping.
func (p *Pet) Use(ctx context.Context, itemID string) (domain.StatDeltas, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, domain.ErrPetClosed
	}
	p.refreshLocked(ctx)

	effect, err := p.inventory.UseItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	applied := p.engine.ApplyEffect(&p.mood, effect)
	return applied, p.saveLocked(ctx)
}

// Equip sets the equipped flag of an owned equippable item
func (p *Pet) Equip(ctx context.Context, itemID string, equipped bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return domain.ErrPetClosed
	}
	p.refreshLocked(ctx)

	if err := p.inventory.ToggleEquip(ctx, itemID, equipped); err != nil {
		return err
	}
	return p.saveLocked(ctx)
}

// ClaimDaily pays the daily reward scaled by the current stage. It returns 0 while on cooldown.
func (p *Pet) ClaimDaily(ctx context.Context) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, domain.ErrPetClosed
	}
	p.refreshLocked(ctx)

	reward, err := p.wallet.ClaimDailyCoins(ctx, p.tracker.StageIndex())
	if err != nil || reward == 0 {
		return reward, err
	}
	return reward, p.saveLocked(ctx)
}

// AddCoins credits coins from an external source such as an ad reward or a purchase
func (p *Pet) AddCoins(ctx context.Context, amount int, source string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, domain.ErrPetClosed
	}
	p.refreshLocked(ctx)

	balance, err := p.wallet.AddCoins(ctx, amount, source)
	if err != nil {
		return 0, err
	}
	return balance, p.saveLocked(ctx)
}

// UnlockPremium grants a feature outside the stage table and reports whether it was new
func (p *Pet) UnlockPremium(ctx context.Context, feature string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false, domain.ErrPetClosed
	}
	p.refreshLocked(ctx)

	added, err := p.tracker.UnlockPremium(ctx, feature)
	if err != nil || !added {
		return added, err
	}
	return true, p.saveLocked(ctx)
}

// Refresh adopts state saved by another process since this pet last read or wrote it
func (p *Pet) Refresh(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.refreshLocked(ctx)
	}
}

// HasFeature reports whether a feature is unlocked by stage or by premium grant
func (p *Pet) HasFeature(feature string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tracker.IsFeatureUnlocked(feature)
}

// HasRoom reports whether the current stage has reached a room
func (p *Pet) HasRoom(room string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tracker.IsRoomUnlocked(room)
}

// Status returns a consistent read-only view
func (p *Pet) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Status{
		EntityID:    p.id,
		Mood:        p.mood,
		MoodLabel:   mood.Label(p.mood),
		Animating:   p.engine.IsAnimating(),
		Wallet:      p.wallet.Snapshot(),
		CanClaim:    p.wallet.CanClaimDailyCoins(),
		NextClaimIn: p.wallet.NextClaimIn(),
		Inventory:   p.inventory.Items(),
		Equipped:    p.inventory.Equipped(),
		Progression: p.tracker.Snapshot(),
	}
}

// Snapshot returns the persisted form of the pet
func (p *Pet) Snapshot() domain.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// Decay applies every whole tick elapsed since the last decay and saves the mood.
// It returns the number of ticks applied; a tick that arrives early applies nothing.
func (p *Pet) Decay(ctx context.Context) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, nil
	}
	ticks := p.refreshLocked(ctx) + p.catchUpLocked(ctx)
	if ticks == 0 || p.deps.Persistence == nil {
		return ticks, nil
	}
	if err := p.deps.Persistence.SaveMood(ctx, p.id, p.mood); err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "entity_id", p.id, "error", err)
		return ticks, fmt.Errorf(ErrFmtSavePet, p.id, err)
	}
	rev, err := p.deps.Persistence.Touch(ctx, p.id)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "entity_id", p.id, "error", err)
		return ticks, fmt.Errorf(ErrFmtSavePet, p.id, err)
	}
	p.revision = rev
	return ticks, nil
}

// catchUpLocked applies the whole ticks between LastDecayed and now.
// LastDecayed advances by whole ticks only, so the remainder carries into the next call.
func (p *Pet) catchUpLocked(ctx context.Context) int {
	now := p.deps.Clock.Now()
	last := *p.mood.LastDecayed
	ticks := p.engine.TicksIn(now.Sub(last))
	if ticks == 0 {
		return 0
	}

	p.engine.Decay(&p.mood, ticks)
	next := last.Add(time.Duration(ticks) * p.engine.Config().TickInterval)
	p.mood.LastDecayed = &next

	logger.FromContext(ctx).Debug(LogMsgDecayApplied, "entity_id", p.id, "ticks", ticks, "mood", mood.Label(p.mood))
	p.publish(ctx, domain.EventTypeMoodDecayed, event.DecayPayloadV1{Ticks: ticks})
	return ticks
}

// refreshLocked reloads the pet when the saved revision differs from the one it last saw
// and returns the decay ticks the reloaded state was behind by.
// A failed revision read keeps the in-memory state.
func (p *Pet) refreshLocked(ctx context.Context) int {
	if p.deps.Persistence == nil {
		return 0
	}
	rev, err := p.deps.Persistence.Revision(ctx, p.id)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRefreshFailed, "entity_id", p.id, "error", err)
		return 0
	}
	if rev == p.revision {
		return 0
	}

	p.adoptLocked(p.deps.Persistence.Load(ctx, p.id))
	ticks := p.catchUpLocked(ctx)
	logger.FromContext(ctx).Debug(LogMsgPetRefreshed, "entity_id", p.id, "revision", p.revision, "missed_ticks", ticks)
	return ticks
}

// StartDecay registers the decay tick on the ticker. Calling it again is a no-op.
func (p *Pet) StartDecay() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.cancelDecay != nil || p.deps.Ticker == nil {
		return
	}

	interval := p.engine.Config().TickInterval
	p.cancelDecay = p.deps.Ticker.Schedule(interval, decayJob{pet: p})
	logger.Debug(LogMsgDecayStarted, "entity_id", p.id, "interval", interval)
}

// Close cancels the decay registration and saves a final time. Later calls do nothing.
func (p *Pet) Close(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}

	if p.cancelDecay != nil {
		p.cancelDecay()
		p.cancelDecay = nil
	}
	p.refreshLocked(ctx)
	err := p.saveLocked(ctx)
	p.closed = true
	logger.FromContext(ctx).Debug(LogMsgPetClosed, "entity_id", p.id)
	return err
}

func (p *Pet) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{
		EntityID:    p.id,
		Mood:        p.mood,
		Wallet:      p.wallet.Snapshot(),
		Inventory:   p.inventory.Items(),
		Progression: p.tracker.Snapshot(),
		Revision:    p.revision,
	}
}

// saveLocked persists every component; in-memory state is kept when the write fails
func (p *Pet) saveLocked(ctx context.Context) error {
	if p.deps.Persistence == nil {
		return nil
	}
	snap := p.snapshotLocked()
	if err := p.deps.Persistence.Save(ctx, p.id, &snap); err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "entity_id", p.id, "error", err)
		return fmt.Errorf(ErrFmtSavePet, p.id, err)
	}
	p.revision = snap.Revision
	return nil
}

func (p *Pet) publish(ctx context.Context, eventType string, payload interface{}) {
	if err := p.deps.Bus.Publish(ctx, event.New(eventType, p.id, p.deps.Clock.Now(), payload)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", eventType, "error", err)
	}
}

// decayJob adapts a pet to the worker.Job interface
type decayJob struct {
	pet *Pet
}

func (j decayJob) Process(ctx context.Context) error {
	_, err := j.pet.Decay(logger.WithEntityID(ctx, j.pet.id))
	return err
}
