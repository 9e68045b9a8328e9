package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/bnema/emojipick/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValueStore_RoundTrip(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "history.db")

	store := sqlite.NewKeyValueStore(dbPath)

	got, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Set(ctx, "emojipick:history", []byte(`[{"unified":"1F984"}]`)))
	require.NoError(t, store.Set(ctx, "emojipick:history", []byte(`[{"unified":"1F600"},{"unified":"1F984"}]`)))

	got, err = store.Get(ctx, "emojipick:history")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"unified":"1F600"},{"unified":"1F984"}]`, string(got))

	require.NoError(t, store.Delete(ctx, "emojipick:history"))
	got, err = store.Get(ctx, "emojipick:history")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Delete(ctx, "never-set"), "deleting a missing key is not an error")
	require.NoError(t, store.Close())
}

func TestKeyValueStore_PersistsAcrossReopen(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "history.db")

	first := sqlite.NewKeyValueStore(dbPath)
	require.NoError(t, first.Set(ctx, "k", []byte("v")))
	require.NoError(t, first.Close())

	second := sqlite.NewKeyValueStore(dbPath)
	t.Cleanup(func() { _ = second.Close() })

	got, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestKeyValueStore_KeysAreIndependent(t *testing.T) {
	ctx := testCtx()
	store := sqlite.NewKeyValueStore(filepath.Join(t.TempDir(), "history.db"))
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Set(ctx, "a", []byte("1")))
	require.NoError(t, store.Set(ctx, "b", []byte("2")))

	a, err := store.Get(ctx, "a")
	require.NoError(t, err)
	b, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "1", string(a))
	assert.Equal(t, "2", string(b))
}
