// Package persistence saves and restores pet components as JSON under namespaced storage keys.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BrandishPet_Go/internal/clock"
	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/economy"
	"github.com/osse101/BrandishPet_Go/internal/logger"
	"github.com/osse101/BrandishPet_Go/internal/progression"
	"github.com/osse101/BrandishPet_Go/internal/storage"
)

// Key returns the storage key for one component of one entity
func Key(component, entityID string) string {
	return KeyPrefix + ":" + component + ":" + entityID
}

// Meta records which save last wrote an entity
type Meta struct {
	Revision string    `json:"revision"`
	SavedAt  time.Time `json:"savedAt"`
}

// Adapter reads and writes component snapshots.
// Loads never fail: missing or unreadable data yields the component default.
type Adapter struct {
	store storage.Storage
	clock clock.Clock
}

// New creates an adapter over store
func New(store storage.Storage, clk clock.Clock) *Adapter {
	if clk == nil {
		clk = clock.New()
	}
	return &Adapter{store: store, clock: clk}
}

// Save writes every component of snap, then stamps snap.Revision with the new revision
func (a *Adapter) Save(ctx context.Context, entityID string, snap *domain.Snapshot) error {
	if snap == nil {
		return domain.ErrSnapshotNil
	}
	if entityID == "" {
		return domain.ErrEntityIDRequired
	}
	if err := a.SaveMood(ctx, entityID, snap.Mood); err != nil {
		return err
	}
	if err := a.SaveWallet(ctx, entityID, snap.Wallet); err != nil {
		return err
	}
	if err := a.SaveInventory(ctx, entityID, snap.Inventory); err != nil {
		return err
	}
	if err := a.SaveProgression(ctx, entityID, snap.Progression); err != nil {
		return err
	}
	rev, err := a.Touch(ctx, entityID)
	if err != nil {
		return err
	}
	snap.Revision = rev
	return nil
}

// Touch records a new revision for entityID. Writers call it after changing any component
// so that other holders of the entity notice the change.
func (a *Adapter) Touch(ctx context.Context, entityID string) (string, error) {
	meta := Meta{Revision: uuid.NewString(), SavedAt: a.clock.Now()}
	if err := a.put(ctx, domain.ComponentMeta, entityID, meta); err != nil {
		return "", err
	}
	return meta.Revision, nil
}

// Revision returns the revision of the last save, or "" when the entity was never saved.
// Unlike the loaders it reports storage errors, so callers never mistake an outage for a change.
func (a *Adapter) Revision(ctx context.Context, entityID string) (string, error) {
	key := Key(domain.ComponentMeta, entityID)
	data, err := a.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf(ErrFmtRevision, key, err)
	}
	var meta Meta
	if err := json.Unmarshal(data, &meta); err != nil {
		logger.FromContext(ctx).Warn(LogMsgLoadCorrupt, "key", key, "error", err)
		return "", nil
	}
	return meta.Revision, nil
}

// SaveMood writes the mood component
func (a *Adapter) SaveMood(ctx context.Context, entityID string, m domain.MoodState) error {
	return a.put(ctx, domain.ComponentMood, entityID, m)
}

// SaveWallet writes the wallet component
func (a *Adapter) SaveWallet(ctx context.Context, entityID string, w domain.Wallet) error {
	return a.put(ctx, domain.ComponentWallet, entityID, w)
}

// SaveInventory writes the inventory component
func (a *Adapter) SaveInventory(ctx context.Context, entityID string, inv domain.Inventory) error {
	if inv == nil {
		inv = domain.Inventory{}
	}
	return a.put(ctx, domain.ComponentInventory, entityID, inv)
}

// SaveProgression writes the progression component
func (a *Adapter) SaveProgression(ctx context.Context, entityID string, p domain.MascotProgression) error {
	return a.put(ctx, domain.ComponentProgression, entityID, p)
}

// Load restores every component of an entity.
// The revision is read first, so a save racing the load at worst makes the revision look stale.
func (a *Adapter) Load(ctx context.Context, entityID string) *domain.Snapshot {
	rev, err := a.Revision(ctx, entityID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgNoRevision, "key", Key(domain.ComponentMeta, entityID), "error", err)
	}
	return &domain.Snapshot{
		EntityID:    entityID,
		Revision:    rev,
		Mood:        a.LoadMood(ctx, entityID),
		Wallet:      a.LoadWallet(ctx, entityID),
		Inventory:   a.LoadInventory(ctx, entityID),
		Progression: a.LoadProgression(ctx, entityID),
	}
}

// LoadMood returns the saved mood or DefaultMoodState
func (a *Adapter) LoadMood(ctx context.Context, entityID string) domain.MoodState {
	var m domain.MoodState
	if a.get(ctx, domain.ComponentMood, entityID, &m) {
		if m.Valid() {
			return m
		}
		a.warnInvalid(ctx, domain.ComponentMood, entityID)
	}
	return domain.DefaultMoodState()
}

// LoadWallet returns the saved wallet or an empty one
func (a *Adapter) LoadWallet(ctx context.Context, entityID string) domain.Wallet {
	var w domain.Wallet
	if a.get(ctx, domain.ComponentWallet, entityID, &w) {
		if w.Valid() {
			return w
		}
		a.warnInvalid(ctx, domain.ComponentWallet, entityID)
	}
	return economy.DefaultWallet()
}

// LoadInventory returns the saved inventory or an empty one
func (a *Adapter) LoadInventory(ctx context.Context, entityID string) domain.Inventory {
	var inv domain.Inventory
	if a.get(ctx, domain.ComponentInventory, entityID, &inv) {
		if inv.Valid() {
			return inv.Clone()
		}
		a.warnInvalid(ctx, domain.ComponentInventory, entityID)
	}
	return domain.Inventory{}
}

// LoadProgression returns the saved progression or a fresh baby record
func (a *Adapter) LoadProgression(ctx context.Context, entityID string) domain.MascotProgression {
	var p domain.MascotProgression
	if a.get(ctx, domain.ComponentProgression, entityID, &p) {
		if p.Valid() {
			return p
		}
		a.warnInvalid(ctx, domain.ComponentProgression, entityID)
	}
	return progression.DefaultProgression(a.clock.Now())
}

// Delete removes every component of an entity
func (a *Adapter) Delete(ctx context.Context, entityID string) error {
	if entityID == "" {
		return domain.ErrEntityIDRequired
	}
	components := []string{domain.ComponentMood, domain.ComponentWallet, domain.ComponentInventory, domain.ComponentProgression, domain.ComponentMeta}
	for _, c := range components {
		key := Key(c, entityID)
		if err := a.store.Remove(ctx, key); err != nil {
			return fmt.Errorf(ErrFmtDelete, key, err)
		}
	}
	logger.FromContext(ctx).Info(LogMsgDeleted, "entity_id", entityID)
	return nil
}

func (a *Adapter) put(ctx context.Context, component, entityID string, v interface{}) error {
	key := Key(component, entityID)
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf(ErrFmtEncode, key, err)
	}
	if err := a.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf(ErrFmtSave, key, err)
	}
	logger.FromContext(ctx).Debug(LogMsgSaved, "key", key, "bytes", len(data))
	return nil
}

// get decodes the stored value into out and reports whether it was present and readable
func (a *Adapter) get(ctx context.Context, component, entityID string, out interface{}) bool {
	key := Key(component, entityID)
	log := logger.FromContext(ctx)

	data, err := a.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		log.Debug(LogMsgLoadMissing, "key", key)
		return false
	}
	if err != nil {
		log.Warn(LogMsgLoadFailed, "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn(LogMsgLoadCorrupt, "key", key, "error", err)
		return false
	}
	return true
}

func (a *Adapter) warnInvalid(ctx context.Context, component, entityID string) {
	logger.FromContext(ctx).Warn(LogMsgLoadInvalid, "key", Key(component, entityID))
}
