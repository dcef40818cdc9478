package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/BrandishPet_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a domain event raised by the pet core
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	EntityID string      `json:"entity_id"`
	Payload  interface{} `json:"payload"`
	At       time.Time   `json:"at"`
}

// Typed event payloads

// ActionPayloadV1 describes an accepted or rejected care action
type ActionPayloadV1 struct {
	Action   domain.Action `json:"action"`
	Accepted bool          `json:"accepted"`
	XP       int           `json:"xp"`
}

// DecayPayloadV1 describes a decay pass
type DecayPayloadV1 struct {
	Ticks int `json:"ticks"`
}

// CoinsPayloadV1 describes a wallet credit or debit
type CoinsPayloadV1 struct {
	Amount  int    `json:"amount"`
	Source  string `json:"source"`
	Balance int    `json:"balance"`
}

// ItemPayloadV1 describes a shop purchase or item use
type ItemPayloadV1 struct {
	ItemID   string `json:"item_id"`
	Price    int    `json:"price,omitempty"`
	Quantity int    `json:"quantity"`
}

// XPPayloadV1 describes an XP award
type XPPayloadV1 struct {
	Amount int    `json:"amount"`
	Source string `json:"source"`
	NewXP  int    `json:"new_xp"`
}

// EvolutionPayloadV1 describes a stage transition
type EvolutionPayloadV1 struct {
	OldStage    domain.Stage `json:"old_stage"`
	NewStage    domain.Stage `json:"new_stage"`
	NewFeatures []string     `json:"new_features,omitempty"`
	NewRooms    []string     `json:"new_rooms,omitempty"`
}

// PremiumPayloadV1 describes a premium unlock granted by the surrounding layer
type PremiumPayloadV1 struct {
	Feature string `json:"feature"`
}

// New builds an event stamped with the current schema version
func New(t string, entityID string, at time.Time, payload interface{}) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     Type(t),
		EntityID: entityID,
		Payload:  payload,
		At:       at,
	}
}

// DecodePayload returns the payload as T, converting through JSON when it
// arrives in a serialized shape rather than as the original struct.
func DecodePayload[T any](e Event) (T, error) {
	if v, ok := e.Payload.(T); ok {
		return v, nil
	}
	var out T
	raw, err := json.Marshal(e.Payload)
	if err != nil {
		return out, fmt.Errorf("encode payload of %s: %w", e.Type, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode payload of %s: %w", e.Type, err)
	}
	return out, nil
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-process, synchronous event bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event type, in subscription order.
// All handlers run even if some fail; their errors are joined into one.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// NopBus discards every event
type NopBus struct{}

// Publish does nothing
func (NopBus) Publish(context.Context, Event) error { return nil }

// Subscribe does nothing
func (NopBus) Subscribe(Type, Handler) {}
