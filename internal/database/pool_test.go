package database

import (
	"context"
	"flag"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func skipWithoutDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "://not a dsn", PoolConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestPool_ConnectionsReleased(t *testing.T) {
	skipWithoutDB(t)
	ctx := context.Background()

	pool, err := NewPool(ctx, testDBConnString, PoolConfig{MaxConns: 5, MaxIdle: time.Minute, MaxLife: 5 * time.Minute})
	require.NoError(t, err)
	defer pool.Close()

	for i := 0; i < 10; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err, "acquire on iteration %d", i)

		var result int
		assert.NoError(t, conn.QueryRow(ctx, "SELECT 1").Scan(&result))
		assert.Equal(t, 1, result)
		conn.Release()
	}

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
}

func TestMigrate_IsIdempotent(t *testing.T) {
	skipWithoutDB(t)
	ctx := context.Background()

	pool, err := NewPool(ctx, testDBConnString, PoolConfig{MaxConns: 4})
	require.NoError(t, err)
	defer pool.Close()

	fsys := fstest.MapFS{
		"m/00001_probe.sql": {Data: []byte("-- +goose Up\nCREATE TABLE probe (id INT);\n-- +goose Down\nDROP TABLE probe;\n")},
	}

	require.NoError(t, Migrate(ctx, pool, fsys, "m"))
	require.NoError(t, Migrate(ctx, pool, fsys, "m"))

	var exists bool
	require.NoError(t, pool.QueryRow(ctx, "SELECT to_regclass('public.probe') IS NOT NULL").Scan(&exists))
	assert.True(t, exists)
}
