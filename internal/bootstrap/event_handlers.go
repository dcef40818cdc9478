package bootstrap

import (
	"log/slog"

	"github.com/osse101/BrandishPet_Go/internal/event"
	"github.com/osse101/BrandishPet_Go/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
}

// RegisterEventHandlers subscribes the metrics collector to every pet event
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)
}
