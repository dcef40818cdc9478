package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/BrandishPet_Go/internal/clock"
	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/event"
	"github.com/osse101/BrandishPet_Go/internal/logger"
)

// Spender debits the wallet; TrySpend must check and debit in one step
type Spender interface {
	TrySpend(ctx context.Context, amount int, purpose string) error
}

// Catalog resolves item ids to shop entries
type Catalog interface {
	Get(id string) (domain.Item, error)
}

// Store owns the inventory of one entity
type Store struct {
	mu       sync.Mutex
	entityID string
	items    domain.Inventory
	wallet   Spender
	catalog  Catalog
	clock    clock.Clock
	bus      event.Bus
}

// NewStore wraps a loaded inventory. Stacks with no quantity are dropped.
func NewStore(entityID string, items domain.Inventory, wallet Spender, catalog Catalog, clk clock.Clock, bus event.Bus) *Store {
	if clk == nil {
		clk = clock.New()
	}
	if bus == nil {
		bus = event.NopBus{}
	}
	clean := make(domain.Inventory, 0, len(items))
	for _, it := range items {
		if it.Quantity > 0 && clean.Find(it.ItemID) < 0 {
			clean = append(clean, it)
		}
	}
	return &Store{
		entityID: entityID,
		items:    clean,
		wallet:   wallet,
		catalog:  catalog,
		clock:    clk,
		bus:      bus,
	}
}

// BuyItem debits the item price and adds one to its stack.
// A failed debit leaves both wallet and inventory untouched.
func (s *Store) BuyItem(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	it, err := s.catalog.Get(itemID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.wallet.TrySpend(ctx, it.Price, domain.SourcePurchase); err != nil {
		return nil, fmt.Errorf(ErrMsgPurchaseFailed, it.ID, err)
	}

	now := s.clock.Now()
	idx := s.items.Find(it.ID)
	if idx < 0 {
		s.items = append(s.items, domain.InventoryItem{ItemID: it.ID})
		idx = len(s.items) - 1
	}
	s.items[idx].Quantity++
	s.items[idx].PurchasedAt = now
	stack := s.items[idx]

	logger.FromContext(ctx).Info(LogMsgItemBought, "entity_id", s.entityID, "item", it.ID, "price", it.Price, "quantity", stack.Quantity)
	s.publish(ctx, domain.EventTypeItemBought, event.ItemPayloadV1{ItemID: it.ID, Price: it.Price, Quantity: stack.Quantity})
	return &stack, nil
}

// UseItem consumes one unit and returns the stat effect to apply
func (s *Store) UseItem(ctx context.Context, itemID string) (domain.StatDeltas, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.items.Find(itemID)
	if idx < 0 || s.items[idx].Quantity <= 0 {
		return nil, fmt.Errorf(ErrFmtNotOwned, domain.ErrNotInInventory, itemID)
	}

	it, err := s.catalog.Get(itemID)
	if err != nil {
		return nil, err
	}
	if !it.Consumable() {
		return nil, fmt.Errorf(ErrFmtNotUsable, domain.ErrItemNotUsable, itemID)
	}

	s.items[idx].Quantity--
	remaining := s.items[idx].Quantity
	if remaining == 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}

	effect := make(domain.StatDeltas, len(it.Effect))
	for k, v := range it.Effect {
		effect[k] = v
	}

	logger.FromContext(ctx).Info(LogMsgItemUsed, "entity_id", s.entityID, "item", itemID, "remaining", remaining)
	s.publish(ctx, domain.EventTypeItemUsed, event.ItemPayloadV1{ItemID: itemID, Quantity: remaining})
	return effect, nil
}

// ToggleEquip sets the equipped flag of an owned, equippable item
func (s *Store) ToggleEquip(ctx context.Context, itemID string, equipped bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.items.Find(itemID)
	if idx < 0 {
		return fmt.Errorf(ErrFmtNotOwned, domain.ErrNotInInventory, itemID)
	}

	it, err := s.catalog.Get(itemID)
	if err != nil {
		return err
	}
	if !it.Equippable {
		return fmt.Errorf(ErrFmtNotEquippable, domain.ErrNotEquippable, itemID)
	}

	s.items[idx].Equipped = equipped
	logger.FromContext(ctx).Info(LogMsgEquipToggled, "entity_id", s.entityID, "item", itemID, "equipped", equipped)
	return nil
}

// Quantity returns how many of itemID are owned
func (s *Store) Quantity(itemID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.items.Find(itemID); idx >= 0 {
		return s.items[idx].Quantity
	}
	return 0
}

// Items returns a copy of every owned stack in purchase order
func (s *Store) Items() domain.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Clone()
}

// Equipped returns the ids of equipped items
func (s *Store) Equipped() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, it := range s.items {
		if it.Equipped {
			out = append(out, it.ItemID)
		}
	}
	return out
}

func (s *Store) publish(ctx context.Context, eventType string, payload interface{}) {
	if err := s.bus.Publish(ctx, event.New(eventType, s.entityID, s.clock.Now(), payload)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", eventType, "error", err)
	}
}
