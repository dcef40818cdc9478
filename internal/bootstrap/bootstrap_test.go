package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishPet_Go/internal/config"
	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/mood"
	"github.com/osse101/BrandishPet_Go/internal/scheduler"
	"github.com/osse101/BrandishPet_Go/internal/testing/leaktest"
)

func testConfig(backend string, dir string) *config.Config {
	return &config.Config{
		LogLevel:             "debug",
		LogFormat:            "text",
		LogDir:               filepath.Join(dir, "logs"),
		ServiceName:          "brandishpet-test",
		Version:              "test",
		Environment:          "test",
		StorageBackend:       backend,
		SQLitePath:           filepath.Join(dir, "data", "pet.db"),
		CacheSize:            4,
		WorkerCount:          1,
		QueueSize:            4,
		DecayInterval:        time.Hour,
		AnimationDuration:    mood.DefaultAnimationDuration,
		HungerDecay:          mood.DefaultHungerDecay,
		EnergyDecay:          mood.DefaultEnergyDecay,
		CleanlinessDecay:     mood.DefaultCleanlinessDecay,
		HappinessDecay:       mood.DefaultHappinessDecay,
		NeglectHealthPenalty: mood.DefaultNeglectHealthPenalty,
	}
}

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		b, err := OpenStorage(ctx, testConfig(config.BackendMemory, t.TempDir()))
		require.NoError(t, err)
		assert.Equal(t, config.BackendMemory, b.Name)
		assert.NoError(t, b.Ping(ctx))
		assert.NoError(t, b.Close())
	})

	t.Run("sqlite creates its directory", func(t *testing.T) {
		cfg := testConfig(config.BackendSQLite, t.TempDir())
		b, err := OpenStorage(ctx, cfg)
		require.NoError(t, err)
		defer b.Close()

		assert.NoError(t, b.Ping(ctx))
		require.NoError(t, b.Store.Set(ctx, "k", []byte("v")))
		_, err = os.Stat(cfg.SQLitePath)
		assert.NoError(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := OpenStorage(ctx, testConfig("etcd", t.TempDir()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown storage backend "etcd"`)
	})
}

func TestNewApp_OneShotStartsNoGoroutines(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	ctx := context.Background()

	app, err := NewApp(ctx, testConfig(config.BackendMemory, t.TempDir()), AppOptions{})
	require.NoError(t, err)

	p, err := app.Manager.Get(ctx, "alice")
	require.NoError(t, err)
	out, err := p.Act(ctx, domain.ActionFeed)
	require.NoError(t, err)
	assert.True(t, out.Accepted)

	_, manual := app.Scheduler.(*scheduler.Manual)
	assert.True(t, manual)
	require.NoError(t, app.Close(ctx))
	checker.Check(0)
}

func TestNewApp_StatePersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(config.BackendSQLite, t.TempDir())

	app, err := NewApp(ctx, cfg, AppOptions{Background: true})
	require.NoError(t, err)
	p, err := app.Manager.Get(ctx, "alice")
	require.NoError(t, err)
	_, err = p.Act(ctx, domain.ActionFeed)
	require.NoError(t, err)
	_, err = p.ClaimDaily(ctx)
	require.NoError(t, err)
	GracefulShutdown(ctx, ShutdownComponents{App: app})

	again, err := NewApp(ctx, cfg, AppOptions{})
	require.NoError(t, err)
	defer again.Close(ctx)

	st, err := again.Manager.Status(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 20, st.Progression.XP)
	assert.Equal(t, 52, st.Wallet.Balance, "daily 50 plus the feed XP bonus")
	assert.False(t, st.CanClaim)
}

func TestNewApp_BadCatalog(t *testing.T) {
	cfg := testConfig(config.BackendMemory, t.TempDir())
	cfg.CatalogPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := NewApp(context.Background(), cfg, AppOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgLoadCatalog)
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := testConfig(config.BackendMemory, t.TempDir())
	cfg.Warnings = []string{"ENV_SCHEMA_VERSION not set"}
	var stdout bytes.Buffer

	f, err := setupLogger(cfg, &stdout, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	assert.Equal(t, filepath.Join(cfg.LogDir, "session_2024-03-01_09-30-00.log"), f.Name())
	assert.Contains(t, stdout.String(), LogMsgLoggingInitialized)
	assert.Contains(t, stdout.String(), "ENV_SCHEMA_VERSION not set")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgStarting)
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("session_2024-01-%02d_00-00-00.log", i+1)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, LogFileRetentionCount+1)
	_, err = os.Stat(filepath.Join(dir, "session_2024-01-01_00-00-00.log"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "session_2024-01-12_00-00-00.log"))
	assert.NoError(t, err)
}
