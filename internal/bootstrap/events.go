package bootstrap

import (
	"log/slog"

	"github.com/osse101/BrandishPet_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus.
// Publishing is synchronous, so subscribers see events in publish order.
func InitializeEventSystem() *event.MemoryBus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}
