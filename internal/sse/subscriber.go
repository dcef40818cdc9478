package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/event"
	"github.com/osse101/BrandishPet_Go/internal/logger"
)

// StreamedEventTypes are the pet events forwarded to SSE clients
var StreamedEventTypes = []string{
	domain.EventTypeActionPerformed,
	domain.EventTypeActionRejected,
	domain.EventTypeMoodDecayed,
	domain.EventTypeCoinsEarned,
	domain.EventTypeCoinsSpent,
	domain.EventTypeDailyClaimed,
	domain.EventTypeItemBought,
	domain.EventTypeItemUsed,
	domain.EventTypeXPGained,
	domain.EventTypePetEvolved,
	domain.EventTypePremiumUnlocked,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the bridge for every streamed event type
func (s *Subscriber) Subscribe() {
	for _, t := range StreamedEventTypes {
		s.bus.Subscribe(event.Type(t), s.handleEvent)
	}
	slog.Info(LogMsgSubscribed, "types", StreamedEventTypes)
}

func (s *Subscriber) handleEvent(ctx context.Context, evt event.Event) error {
	s.hub.Broadcast(Event{
		Type:      string(evt.Type),
		EntityID:  evt.EntityID,
		Timestamp: evt.At.Unix(),
		Payload:   evt.Payload,
	})
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
