package pet

import (
	"context"
	"errors"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/logger"
)

// Manager keeps a bounded set of live pets.
// Evicted pets are closed, which cancels their decay and saves them.
type Manager struct {
	mu     sync.Mutex
	deps   Deps
	cache  *lru.Cache[string, *Pet]
	closed bool
}

// NewManager creates a manager holding at most size pets
func NewManager(deps Deps, size int) (*Manager, error) {
	if deps.Persistence == nil {
		return nil, ErrPersistenceRequired
	}
	if deps.Catalog == nil {
		return nil, ErrCatalogRequired
	}
	if size <= 0 {
		size = DefaultCacheSize
	}

	m := &Manager{deps: deps}
	cache, err := lru.NewWithEvict[string, *Pet](size, m.onEvict)
	if err != nil {
		return nil, err
	}
	m.cache = cache
	return m, nil
}

func (m *Manager) onEvict(id string, p *Pet) {
	ctx := logger.WithEntityID(context.Background(), id)
	if err := p.Close(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "error", err)
	}
	logger.FromContext(ctx).Debug(LogMsgPetEvicted)
}

// Get returns the live pet for entityID, loading it and starting its decay on first use
func (m *Manager) Get(ctx context.Context, entityID string) (*Pet, error) {
	if entityID == "" {
		return nil, domain.ErrEntityIDRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, domain.ErrPetClosed
	}

	if p, ok := m.cache.Get(entityID); ok {
		return p, nil
	}

	p, err := Load(ctx, entityID, m.deps)
	if err != nil {
		return nil, err
	}
	p.StartDecay()
	m.cache.Add(entityID, p)
	return p, nil
}

// Status returns the status of the pet for entityID, loading it if needed.
// State saved by another process since the pet was loaded is picked up first.
func (m *Manager) Status(ctx context.Context, entityID string) (Status, error) {
	p, err := m.Get(ctx, entityID)
	if err != nil {
		return Status{}, err
	}
	p.Refresh(ctx)
	return p.Status(), nil
}

// Act performs a care action on the pet for entityID
func (m *Manager) Act(ctx context.Context, entityID string, action domain.Action) (*ActionOutcome, error) {
	p, err := m.Get(ctx, entityID)
	if err != nil {
		return nil, err
	}
	return p.Act(ctx, action)
}

// Buy purchases one unit of itemID for the pet
func (m *Manager) Buy(ctx context.Context, entityID, itemID string) (*domain.InventoryItem, error) {
	p, err := m.Get(ctx, entityID)
	if err != nil {
		return nil, err
	}
	return p.Buy(ctx, itemID)
}

// Use consumes one unit of itemID
func (m *Manager) Use(ctx context.Context, entityID, itemID string) (domain.StatDeltas, error) {
	p, err := m.Get(ctx, entityID)
	if err != nil {
		return nil, err
	}
	return p.Use(ctx, itemID)
}

// Equip sets the equipped flag of itemID
func (m *Manager) Equip(ctx context.Context, entityID, itemID string, equipped bool) error {
	p, err := m.Get(ctx, entityID)
	if err != nil {
		return err
	}
	return p.Equip(ctx, itemID, equipped)
}

// ClaimDaily pays the daily reward; 0 means the claim is still on cooldown
func (m *Manager) ClaimDaily(ctx context.Context, entityID string) (int, error) {
	p, err := m.Get(ctx, entityID)
	if err != nil {
		return 0, err
	}
	return p.ClaimDaily(ctx)
}

// AddCoins credits coins from an external source
func (m *Manager) AddCoins(ctx context.Context, entityID string, amount int, source string) (int, error) {
	p, err := m.Get(ctx, entityID)
	if err != nil {
		return 0, err
	}
	return p.AddCoins(ctx, amount, source)
}

// UnlockPremium grants a feature and reports whether it was new
func (m *Manager) UnlockPremium(ctx context.Context, entityID, feature string) (bool, error) {
	p, err := m.Get(ctx, entityID)
	if err != nil {
		return false, err
	}
	return p.UnlockPremium(ctx, feature)
}

// Unlocks reports whether name is an unlocked feature or room of the pet
func (m *Manager) Unlocks(ctx context.Context, entityID, name string) (Unlocks, error) {
	p, err := m.Get(ctx, entityID)
	if err != nil {
		return Unlocks{}, err
	}
	p.Refresh(ctx)
	return Unlocks{Name: name, Feature: p.HasFeature(name), Room: p.HasRoom(name)}, nil
}

// Peek returns a live pet without loading or touching recency
func (m *Manager) Peek(entityID string) (*Pet, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cache.Peek(entityID)
}

// Remove closes and forgets a live pet
func (m *Manager) Remove(entityID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache.Remove(entityID)
}

// Reset forgets a pet and deletes its saved state
func (m *Manager) Reset(ctx context.Context, entityID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cache.Remove(entityID)
	return m.deps.Persistence.Delete(ctx, entityID)
}

// Len returns the number of live pets
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cache.Len()
}

// Shutdown closes every live pet. The manager rejects Get afterwards.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true

	var errs []error
	for _, id := range m.cache.Keys() {
		if p, ok := m.cache.Peek(id); ok {
			if err := p.Close(ctx); err != nil {
				errs = append(errs, err)
			}
		}
	}
	// pets are already closed, so the eviction callback is a no-op here
	m.cache.Purge()
	logger.FromContext(ctx).Info(LogMsgManagerStopped, "save_failures", len(errs))
	return errors.Join(errs...)
}
