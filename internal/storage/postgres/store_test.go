package postgres

import (
	"context"
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishPet_Go/internal/database"
	"github.com/osse101/BrandishPet_Go/internal/storage"
	"github.com/osse101/BrandishPet_Go/internal/testing/pgtest"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = pgtest.Start(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func TestStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, testDBConnString, database.PoolConfig{MaxConns: 4})
	require.NoError(t, err)
	defer pool.Close()

	s, err := New(ctx, pool)
	require.NoError(t, err)

	_, err = s.Get(ctx, "brandishpet:inventory:p1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.Set(ctx, "brandishpet:inventory:p1", []byte(`[]`)))
	require.NoError(t, s.Set(ctx, "brandishpet:inventory:p1", []byte(`[{"itemId":"ball","quantity":1}]`)))

	got, err := s.Get(ctx, "brandishpet:inventory:p1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"itemId":"ball","quantity":1}]`, string(got))

	require.NoError(t, s.Remove(ctx, "brandishpet:inventory:p1"))
	_, err = s.Get(ctx, "brandishpet:inventory:p1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNew_RequiresPool(t *testing.T) {
	_, err := New(context.Background(), nil)
	assert.Error(t, err)
}
