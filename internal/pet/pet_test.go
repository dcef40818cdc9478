package pet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishPet_Go/internal/clock"
	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/event"
	"github.com/osse101/BrandishPet_Go/internal/item"
	"github.com/osse101/BrandishPet_Go/internal/mood"
	"github.com/osse101/BrandishPet_Go/internal/persistence"
	"github.com/osse101/BrandishPet_Go/internal/progression"
	"github.com/osse101/BrandishPet_Go/internal/scheduler"
	"github.com/osse101/BrandishPet_Go/internal/storage"
)

var start = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

type harness struct {
	deps   Deps
	clock  *clock.Simulated
	mem    *storage.Memory
	ticker *scheduler.Manual
	bus    *event.MemoryBus
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	catalog, err := item.Load(context.Background(), "")
	require.NoError(t, err)

	clk := clock.NewSimulated(start)
	mem := storage.NewMemory()
	h := &harness{
		clock:  clk,
		mem:    mem,
		ticker: scheduler.NewManual(),
		bus:    event.NewMemoryBus(),
	}
	h.deps = Deps{
		Persistence: persistence.New(mem, clk),
		Catalog:     catalog,
		Clock:       clk,
		Bus:         h.bus,
		Ticker:      h.ticker,
		Rand:        func() float64 { return 0 },
	}
	return h
}

func (h *harness) newPet(t *testing.T, mutate func(s *domain.Snapshot)) *Pet {
	t.Helper()
	snap := &domain.Snapshot{
		EntityID:    "pet-1",
		Mood:        domain.DefaultMoodState(),
		Inventory:   domain.Inventory{},
		Progression: progression.DefaultProgression(start),
	}
	if mutate != nil {
		mutate(snap)
	}
	p, err := New("pet-1", snap, h.deps)
	require.NoError(t, err)
	return p
}

// tick moves the clock one decay interval and fires the ticker, n times
func (h *harness) tick(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		h.clock.Advance(mood.DefaultConfig().TickInterval)
		require.NoError(t, h.ticker.Advance(context.Background(), 1))
	}
}

func (h *harness) count(eventType string) *int {
	n := new(int)
	h.bus.Subscribe(event.Type(eventType), func(context.Context, event.Event) error {
		*n++
		return nil
	})
	return n
}

func TestNew_Validation(t *testing.T) {
	h := newHarness(t)

	_, err := New("", &domain.Snapshot{}, h.deps)
	assert.ErrorIs(t, err, domain.ErrEntityIDRequired)

	_, err = New("pet-1", nil, h.deps)
	assert.ErrorIs(t, err, domain.ErrSnapshotNil)

	deps := h.deps
	deps.Catalog = nil
	_, err = New("pet-1", &domain.Snapshot{}, deps)
	assert.ErrorIs(t, err, ErrCatalogRequired)
}

func TestAct_FeedAwardsXPAndSaves(t *testing.T) {
	h := newHarness(t)
	performed := h.count(domain.EventTypeActionPerformed)
	p := h.newPet(t, func(s *domain.Snapshot) { s.Mood.Hunger = 60 })

	out, err := p.Act(context.Background(), domain.ActionFeed)
	require.NoError(t, err)

	assert.True(t, out.Accepted)
	require.NotNil(t, out.Award)
	assert.Equal(t, 20, out.Award.XPGained)
	assert.Equal(t, 2, out.Award.BonusCoins)

	st := p.Status()
	assert.Equal(t, 85.0, st.Mood.Hunger)
	assert.Equal(t, 90.0, st.Mood.Happiness)
	assert.Equal(t, 20, st.Progression.XP)
	assert.Equal(t, 2, st.Wallet.Balance)
	assert.True(t, st.Animating)
	assert.Equal(t, 1, *performed)

	saved := h.deps.Persistence.LoadMood(context.Background(), "pet-1")
	assert.Equal(t, 85.0, saved.Hunger)
	assert.Equal(t, 2, h.deps.Persistence.LoadWallet(context.Background(), "pet-1").Balance)
}

func TestAct_RejectedFeedChangesNothing(t *testing.T) {
	h := newHarness(t)
	rejected := h.count(domain.EventTypeActionRejected)
	xp := h.count(domain.EventTypeXPGained)
	p := h.newPet(t, func(s *domain.Snapshot) { s.Mood.Hunger = 96 })

	out, err := p.Act(context.Background(), domain.ActionFeed)
	require.NoError(t, err)

	assert.False(t, out.Accepted)
	assert.Nil(t, out.Award)
	st := p.Status()
	assert.Equal(t, 96.0, st.Mood.Hunger)
	assert.Equal(t, 0, st.Progression.XP)
	assert.Equal(t, 1, *rejected)
	assert.Equal(t, 0, *xp)
	assert.Equal(t, 0, h.mem.Len(), "a rejected action is not saved")
}

func TestAct_UnknownAction(t *testing.T) {
	h := newHarness(t)
	p := h.newPet(t, nil)

	_, err := p.Act(context.Background(), domain.Action("juggle"))
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
}

func TestAct_EvolutionUnlocksKidFeatures(t *testing.T) {
	h := newHarness(t)
	evolved := h.count(domain.EventTypePetEvolved)
	p := h.newPet(t, func(s *domain.Snapshot) {
		s.Mood.Energy = 60
		s.Progression.XP = 480
		s.Progression.XPToNext = 20
	})

	out, err := p.Act(context.Background(), domain.ActionPlay)
	require.NoError(t, err)

	require.NotNil(t, out.Award)
	assert.True(t, out.Award.Evolved)
	assert.Equal(t, domain.StageKid, out.Award.NewStage)
	assert.Equal(t, 1, *evolved)

	prog := p.Status().Progression
	assert.Contains(t, prog.UnlockedFeatures, "play")
	assert.Contains(t, prog.UnlockedFeatures, "feed")
	assert.Contains(t, prog.UnlockedRooms, "playroom")
}

func TestBuy_InsufficientFunds(t *testing.T) {
	h := newHarness(t)
	p := h.newPet(t, func(s *domain.Snapshot) { s.Wallet.Balance = 5 })

	_, err := p.Buy(context.Background(), "kibble")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	st := p.Status()
	assert.Equal(t, 5, st.Wallet.Balance)
	assert.Empty(t, st.Inventory)
}

func TestBuy_UnknownItem(t *testing.T) {
	h := newHarness(t)
	p := h.newPet(t, func(s *domain.Snapshot) { s.Wallet.Balance = 500 })

	_, err := p.Buy(context.Background(), "golden_goose")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Equal(t, 500, p.Status().Wallet.Balance)
}

func TestBuyAndUse(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.newPet(t, nil)

	balance, err := p.AddCoins(ctx, 100, domain.SourceAdReward)
	require.NoError(t, err)
	assert.Equal(t, 100, balance)

	stack, err := p.Buy(ctx, "kibble")
	require.NoError(t, err)
	assert.Equal(t, 1, stack.Quantity)
	assert.Equal(t, 90, p.Status().Wallet.Balance)

	applied, err := p.Use(ctx, "kibble")
	require.NoError(t, err)
	assert.Equal(t, 20.0, applied[domain.StatHunger])

	st := p.Status()
	assert.Equal(t, 90.0, st.Mood.Hunger)
	assert.Empty(t, st.Inventory)

	_, err = p.Use(ctx, "kibble")
	assert.ErrorIs(t, err, domain.ErrNotInInventory)

	assert.Empty(t, h.deps.Persistence.LoadInventory(ctx, "pet-1"))
	assert.Equal(t, 90, h.deps.Persistence.LoadWallet(ctx, "pet-1").Balance)
}

func TestEquip(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.newPet(t, func(s *domain.Snapshot) { s.Wallet.Balance = 60 })

	_, err := p.Buy(ctx, "red_bow")
	require.NoError(t, err)

	require.NoError(t, p.Equip(ctx, "red_bow", true))
	assert.Equal(t, []string{"red_bow"}, p.Status().Equipped)

	require.NoError(t, p.Equip(ctx, "red_bow", false))
	assert.Empty(t, p.Status().Equipped)

	assert.ErrorIs(t, p.Equip(ctx, "sunglasses", true), domain.ErrNotInInventory)
}

func TestClaimDaily(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.newPet(t, nil)

	reward, err := p.ClaimDaily(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, reward)

	reward, err = p.ClaimDaily(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, reward)
	assert.False(t, p.Status().CanClaim)

	h.clock.Advance(25 * time.Hour)
	reward, err = p.ClaimDaily(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, reward)
	assert.Equal(t, 100, p.Status().Wallet.Balance)
}

func TestClaimDaily_ScalesWithStage(t *testing.T) {
	h := newHarness(t)
	p := h.newPet(t, func(s *domain.Snapshot) {
		s.Progression.Stage = domain.StageTeen
		s.Progression.XP = 2000
	})

	reward, err := p.ClaimDaily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 70, reward)
}

func TestUnlockPremium(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.newPet(t, nil)

	added, err := p.UnlockPremium(ctx, "golden_collar")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = p.UnlockPremium(ctx, "golden_collar")
	require.NoError(t, err)
	assert.False(t, added)

	_, err = p.UnlockPremium(ctx, "  ")
	assert.ErrorIs(t, err, domain.ErrFeatureRequired)

	assert.Contains(t, h.deps.Persistence.LoadProgression(ctx, "pet-1").UnlockedFeatures, "golden_collar")
}

func TestDecay_DrivenByTicker(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	decayed := h.count(domain.EventTypeMoodDecayed)
	p := h.newPet(t, nil)

	p.StartDecay()
	p.StartDecay()
	assert.Equal(t, 1, h.ticker.Registered())

	h.tick(t, 4)
	assert.Equal(t, 66.0, p.Status().Mood.Hunger)
	assert.Equal(t, 4, *decayed)
	assert.Equal(t, 66.0, h.deps.Persistence.LoadMood(ctx, "pet-1").Hunger)

	require.NoError(t, p.Close(ctx))
	assert.Equal(t, 0, h.ticker.Registered())

	h.tick(t, 4)
	assert.Equal(t, 66.0, p.Status().Mood.Hunger)
}

func TestDecay_AppliesElapsedTicks(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	decayed := h.count(domain.EventTypeMoodDecayed)
	p := h.newPet(t, nil)
	interval := mood.DefaultConfig().TickInterval

	h.clock.Advance(interval / 2)
	ticks, err := p.Decay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, ticks, "an early tick applies nothing")
	assert.Equal(t, 0, h.mem.Len())

	// a dropped tick is made up by the next one
	h.clock.Advance(interval*2 + interval/2)
	ticks, err = p.Decay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, ticks)
	assert.Equal(t, 67.0, p.Status().Mood.Hunger)
	assert.Equal(t, 1, *decayed)

	saved := h.deps.Persistence.LoadMood(ctx, "pet-1")
	require.NotNil(t, saved.LastDecayed)
	assert.Equal(t, start.Add(3*interval), *saved.LastDecayed)
	assert.Equal(t, 67.0, saved.Hunger)
}

func TestLoad_CatchesUpOfflineDecay(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	p, err := Load(ctx, "pet-1", h.deps)
	require.NoError(t, err)
	_, err = p.AddCoins(ctx, 5, domain.SourceAdReward)
	require.NoError(t, err)
	require.NoError(t, p.Close(ctx))

	h.clock.Advance(10*mood.DefaultConfig().TickInterval + time.Second)
	again, err := Load(ctx, "pet-1", h.deps)
	require.NoError(t, err)
	assert.Equal(t, 60.0, again.Status().Mood.Hunger)

	// nothing was saved, so a second load computes the same result
	third, err := Load(ctx, "pet-1", h.deps)
	require.NoError(t, err)
	assert.Equal(t, again.Snapshot().Mood, third.Snapshot().Mood)
}

func TestClose_SavesAndRejectsLaterCalls(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.newPet(t, func(s *domain.Snapshot) { s.Wallet.Balance = 42 })

	require.NoError(t, p.Close(ctx))
	require.NoError(t, p.Close(ctx))
	assert.Equal(t, 42, h.deps.Persistence.LoadWallet(ctx, "pet-1").Balance)

	_, err := p.Act(ctx, domain.ActionPet)
	assert.ErrorIs(t, err, domain.ErrPetClosed)
	_, err = p.Buy(ctx, "kibble")
	assert.ErrorIs(t, err, domain.ErrPetClosed)
	_, err = p.ClaimDaily(ctx)
	assert.ErrorIs(t, err, domain.ErrPetClosed)
}

type brokenStore struct{ storage.Storage }

func (brokenStore) Set(context.Context, string, []byte) error { return errors.New("read-only") }

func TestAct_SaveFailureKeepsMemoryState(t *testing.T) {
	h := newHarness(t)
	h.deps.Persistence = persistence.New(brokenStore{Storage: storage.NewMemory()}, h.clock)
	p := h.newPet(t, func(s *domain.Snapshot) { s.Mood.Hunger = 60 })

	out, err := p.Act(context.Background(), domain.ActionFeed)
	require.Error(t, err)
	require.NotNil(t, out)
	assert.True(t, out.Accepted)
	assert.Equal(t, 85.0, p.Status().Mood.Hunger)
}

func TestLoad_RoundTrip(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	p, err := Load(ctx, "pet-1", h.deps)
	require.NoError(t, err)
	_, err = p.AddCoins(ctx, 100, domain.SourceAdReward)
	require.NoError(t, err)
	_, err = p.Buy(ctx, "red_bow")
	require.NoError(t, err)
	_, err = p.Act(ctx, domain.ActionPet)
	require.NoError(t, err)
	before := p.Snapshot()

	again, err := Load(ctx, "pet-1", h.deps)
	require.NoError(t, err)
	after := again.Snapshot()

	assert.Equal(t, before.Mood, after.Mood)
	assert.Equal(t, before.Wallet, after.Wallet)
	assert.Equal(t, before.Inventory, after.Inventory)
	assert.Equal(t, before.Progression, after.Progression)
}

func TestLoad_RequiresPersistence(t *testing.T) {
	h := newHarness(t)
	deps := h.deps
	deps.Persistence = nil

	_, err := Load(context.Background(), "pet-1", deps)
	assert.ErrorIs(t, err, ErrPersistenceRequired)
}
