package toolstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tirithen/cnccoder/internal/geom"
	"github.com/tirithen/cnccoder/internal/tool"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err, "in-memory catalog must open")
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.db")

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file must be created")
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.db")

	for i := 0; i < 3; i++ {
		store, err := Open(path)
		require.NoErrorf(t, err, "open iteration %d", i)
		store.Close()
	}
}

func TestPutAndGet(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	cutter := tool.Cylindrical(geom.Metric, 50.0, 4.0, geom.Clockwise, 5000.0, 400.0)
	require.NoError(t, store.Put(ctx, "end mill 4mm", cutter))

	loaded, err := store.Get(ctx, "end mill 4mm")
	require.NoError(t, err)
	assert.Equal(t, cutter, loaded, "stored tool round trips exactly")
}

func TestPutReplacesExisting(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "cutter", tool.Cylindrical(geom.Metric, 50.0, 4.0, geom.Clockwise, 5000.0, 400.0)))

	vbit := tool.Conical(geom.Metric, 45.0, 15.0, geom.Clockwise, 5000.0, 400.0)
	require.NoError(t, store.Put(ctx, "cutter", vbit))

	loaded, err := store.Get(ctx, "cutter")
	require.NoError(t, err)
	assert.Equal(t, vbit, loaded, "the later tool wins")

	entries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "replacement must not duplicate the entry")
}

func TestGetUnknownName(t *testing.T) {
	store := openMemory(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutRejectsInvalidTool(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	assert.Error(t, store.Put(ctx, "", tool.Cylindrical(geom.Metric, 50.0, 4.0, geom.Clockwise, 5000.0, 400.0)), "empty name")
	assert.Error(t, store.Put(ctx, "bad", tool.Tool{Shape: "square"}), "unknown shape")

	negative := tool.Cylindrical(geom.Metric, 50.0, -4.0, geom.Clockwise, 5000.0, 400.0)
	assert.Error(t, store.Put(ctx, "bad", negative), "negative diameter")
}

func TestListSortsByName(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	ballnose := tool.Ballnose(geom.Metric, 45.0, 8.0, geom.Clockwise, 5000.0, 400.0)
	cutter := tool.Cylindrical(geom.Metric, 50.0, 4.0, geom.Clockwise, 5000.0, 400.0)

	require.NoError(t, store.Put(ctx, "carve ball 8mm", ballnose))
	require.NoError(t, store.Put(ctx, "end mill 4mm", cutter))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "carve ball 8mm", entries[0].Name)
	assert.Equal(t, ballnose, entries[0].Tool)
	assert.Equal(t, "end mill 4mm", entries[1].Name)
	assert.Equal(t, cutter, entries[1].Tool)
}

func TestDelete(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "cutter", tool.Cylindrical(geom.Metric, 50.0, 4.0, geom.Clockwise, 5000.0, 400.0)))
	require.NoError(t, store.Delete(ctx, "cutter"))

	_, err := store.Get(ctx, "cutter")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "cutter"), ErrNotFound, "deleting twice reports not found")
}
