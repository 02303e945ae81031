package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"varlife/config"
	"varlife/pkg/logger"
	"varlife/pkg/models"
	"varlife/storage"
)

// Runs against a live database only when POSTGRES_INTEGRATION=1.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	if os.Getenv("POSTGRES_INTEGRATION") != "1" {
		t.Skip("set POSTGRES_INTEGRATION=1 to run against Postgres")
	}
	s, err := New(context.Background(), config.Load(), logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestSeededCatalog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rides, err := s.RideOption().GetAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, rides)

	std, err := s.RideOption().GetByID(ctx, "standard")
	require.NoError(t, err)
	assert.Equal(t, "R25.50", std.Price())

	_, err = s.RideOption().GetByID(ctx, "no-such-ride")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	areas, err := s.Area().GetAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, areas)
}

func TestRideOptionUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	o := &models.RideOption{ID: "it-test", Name: "Test", PriceCents: 100, Currency: "R", WaitTime: "1 min", Position: 99}
	require.NoError(t, s.RideOption().Create(ctx, o))
	o.Name = "Test renamed"
	require.NoError(t, s.RideOption().Create(ctx, o))

	got, err := s.RideOption().GetByID(ctx, "it-test")
	require.NoError(t, err)
	assert.Equal(t, "Test renamed", got.Name)

	_, err = s.pool.Exec(ctx, `DELETE FROM ride_options WHERE id = $1`, "it-test")
	require.NoError(t, err)
}

func TestWithTxRollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	before, err := s.Area().GetAll(ctx)
	require.NoError(t, err)

	err = s.WithTx(ctx, func(tx storage.ICatalog) error {
		require.NoError(t, tx.Area().DeleteAll(ctx))
		return errors.New("abort")
	})
	require.EqualError(t, err, "abort")

	after, err := s.Area().GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
