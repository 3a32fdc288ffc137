package sessionstore_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsway/bizctx/pkg/sessionstore"
)

// failingStore simulates disabled storage: every operation errors.
type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("storage disabled")
}

func (failingStore) Set(ctx context.Context, key, value string) error {
	return errors.New("storage disabled")
}

func (failingStore) Remove(ctx context.Context, key string) error {
	return errors.New("storage disabled")
}

func TestRecords_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	records := sessionstore.NewRecords(sessionstore.NewMemoryStore(), "bizctx:session:test", slog.Default())

	_, ok := records.Load(ctx)
	assert.False(t, ok, "empty store should have no record")

	rec := sessionstore.NewRecord("b1", "Main Depot", "")
	records.Save(ctx, rec)

	got, ok := records.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "b1", got.BusinessID)
	assert.Equal(t, "Main Depot", got.BusinessName)
	assert.NotZero(t, got.Timestamp)
	assert.Empty(t, got.ManagerID)

	records.Clear(ctx)
	_, ok = records.Load(ctx)
	assert.False(t, ok)
}

func TestRecords_ManagerID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	records := sessionstore.NewRecords(sessionstore.NewMemoryStore(), "k", nil)

	records.Save(ctx, sessionstore.NewRecord("b1", "Depot", "m1"))

	got, ok := records.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "m1", got.ManagerID)
}

func TestRecords_SilentDegrade(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	records := sessionstore.NewRecords(failingStore{}, "k", slog.Default())

	// None of these may panic or surface an error.
	records.Save(ctx, sessionstore.NewRecord("b1", "Depot", ""))
	records.Clear(ctx)

	_, ok := records.Load(ctx)
	assert.False(t, ok)
}

func TestRecords_CorruptValueDiscarded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := sessionstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "k", "{not json"))

	records := sessionstore.NewRecords(store, "k", nil)

	_, ok := records.Load(ctx)
	assert.False(t, ok)

	// The corrupt value is removed so the next read is clean.
	_, present, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := sessionstore.NewMemoryStore()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", "v1"))
	require.NoError(t, store.Set(ctx, "k", "v2"))

	v, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, store.Remove(ctx, "k"))
	require.NoError(t, store.Remove(ctx, "k"))
}
