package metrics

import (
	"context"

	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/event"
	"github.com/osse101/BrandishPet_Go/internal/logger"
)

// EventMetricsCollector subscribes to pet events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes the collector to every pet event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []string{
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

	for _, t := range eventTypes {
		bus.Subscribe(event.Type(t), e.HandleEvent)
	}
}

// HandleEvent updates metrics for one event.
// Payload decode failures are logged and swallowed so metrics never fail a publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch string(evt.Type) {
	case domain.EventTypeActionPerformed, domain.EventTypeActionRejected:
		var p event.ActionPayloadV1
		if p, err = event.DecodePayload[event.ActionPayloadV1](evt); err == nil {
			outcome := OutcomeAccepted
			if !p.Accepted {
				outcome = OutcomeRejected
			}
			Actions.WithLabelValues(string(p.Action), outcome).Inc()
		}

	case domain.EventTypeMoodDecayed:
		var p event.DecayPayloadV1
		if p, err = event.DecodePayload[event.DecayPayloadV1](evt); err == nil {
			DecayTicks.Add(float64(p.Ticks))
		}

	case domain.EventTypeCoinsEarned:
		var p event.CoinsPayloadV1
		if p, err = event.DecodePayload[event.CoinsPayloadV1](evt); err == nil {
			CoinsEarned.WithLabelValues(p.Source).Add(float64(p.Amount))
		}

	case domain.EventTypeCoinsSpent:
		var p event.CoinsPayloadV1
		if p, err = event.DecodePayload[event.CoinsPayloadV1](evt); err == nil {
			CoinsSpent.WithLabelValues(p.Source).Add(float64(p.Amount))
		}

	case domain.EventTypeDailyClaimed:
		DailyClaims.Inc()

	case domain.EventTypeItemBought:
		var p event.ItemPayloadV1
		if p, err = event.DecodePayload[event.ItemPayloadV1](evt); err == nil {
			ItemsBought.WithLabelValues(p.ItemID).Inc()
		}

	case domain.EventTypeItemUsed:
		var p event.ItemPayloadV1
		if p, err = event.DecodePayload[event.ItemPayloadV1](evt); err == nil {
			ItemsUsed.WithLabelValues(p.ItemID).Inc()
		}

	case domain.EventTypeXPGained:
		var p event.XPPayloadV1
		if p, err = event.DecodePayload[event.XPPayloadV1](evt); err == nil {
			XPGained.WithLabelValues(p.Source).Add(float64(p.Amount))
		}

	case domain.EventTypePetEvolved:
		var p event.EvolutionPayloadV1
		if p, err = event.DecodePayload[event.EvolutionPayloadV1](evt); err == nil {
			Evolutions.WithLabelValues(string(p.NewStage)).Inc()
		}

	case domain.EventTypePremiumUnlocked:
		var p event.PremiumPayloadV1
		if p, err = event.DecodePayload[event.PremiumPayloadV1](evt); err == nil {
			PremiumUnlocks.WithLabelValues(p.Feature).Inc()
		}
	}

	if err != nil {
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
