package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/BrandishPet_Go/internal/clock"
	"github.com/osse101/BrandishPet_Go/internal/config"
	"github.com/osse101/BrandishPet_Go/internal/cooldown"
	"github.com/osse101/BrandishPet_Go/internal/event"
	"github.com/osse101/BrandishPet_Go/internal/item"
	"github.com/osse101/BrandishPet_Go/internal/persistence"
	"github.com/osse101/BrandishPet_Go/internal/pet"
	"github.com/osse101/BrandishPet_Go/internal/scheduler"
	"github.com/osse101/BrandishPet_Go/internal/sse"
	"github.com/osse101/BrandishPet_Go/internal/worker"
)

// App is the assembled pet core
type App struct {
	Config    *config.Config
	Bus       *event.MemoryBus
	Catalog   *item.Catalog
	Storage   *Backend
	Manager   *pet.Manager
	Scheduler scheduler.Ticker
	// Events is nil unless the app runs in the background
	Events *sse.Hub

	// pool is nil unless the app runs decay in the background
	pool *worker.Pool
}

// AppOptions selects how the app runs
type AppOptions struct {
	// Background starts a worker pool and a real scheduler so decay ticks on its own.
	// One-shot commands leave it off and never start a goroutine.
	Background bool
	Clock      clock.Clock
}

// NewApp opens storage, loads the catalog and builds the pet manager
func NewApp(ctx context.Context, cfg *config.Config, opts AppOptions) (*App, error) {
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}

	catalog, err := item.Load(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadCatalog, err)
	}

	backend, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bus := InitializeEventSystem()
	RegisterEventHandlers(EventHandlerDependencies{EventBus: bus})

	app := &App{
		Config:  cfg,
		Bus:     bus,
		Catalog: catalog,
		Storage: backend,
	}

	if opts.Background {
		app.pool = worker.NewPool(cfg.WorkerCount, cfg.QueueSize)
		app.pool.Start()
		app.Scheduler = scheduler.New(app.pool)
		app.Events = sse.NewHub()
		app.Events.Start()
		sse.NewSubscriber(app.Events, bus).Subscribe()
	} else {
		app.Scheduler = scheduler.NewManual()
	}

	manager, err := pet.NewManager(pet.Deps{
		Persistence: persistence.New(backend.Store, clk),
		Catalog:     catalog,
		Clock:       clk,
		Bus:         bus,
		Cooldowns:   cooldown.NewService(cooldown.Config{DevMode: cfg.DevMode}, clk),
		Ticker:      app.Scheduler,
		Mood:        cfg.MoodConfig(),
	}, cfg.CacheSize)
	if err != nil {
		app.stopWorkers()
		_ = backend.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateManager, err)
	}
	app.Manager = manager

	return app, nil
}

// Close saves every live pet and releases storage. It does not stop an HTTP server.
func (a *App) Close(ctx context.Context) error {
	a.stopWorkers()
	return errors.Join(a.Manager.Shutdown(ctx), a.Storage.Close())
}

func (a *App) stopWorkers() {
	if a.Events != nil {
		a.Events.Stop()
	}
	a.Scheduler.Stop()
	if a.pool != nil {
		a.pool.Stop()
	}
}
