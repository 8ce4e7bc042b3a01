package storage

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/exp/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newStores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := NewSQLiteStore(filepath.Join(t.TempDir(), "kv.db"), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Store{
		"sqlite": sqlite,
		"memory": NewMemoryStore(testLogger()),
	}
}

func TestSetGet(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			store.Set("item", payload{Name: "first", Count: 3})

			var got payload
			require.True(t, store.Get("item", &got))
			assert.Equal(t, payload{Name: "first", Count: 3}, got)

			// Overwrite keeps last write.
			store.Set("item", payload{Name: "second", Count: 7})
			require.True(t, store.Get("item", &got))
			assert.Equal(t, "second", got.Name)
		})
	}
}

func TestGetMissing(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			var got string
			assert.False(t, store.Get("nope", &got))
		})
	}
}

func TestSetUnserializable(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			store.Set("good", "value")
			// Channels cannot be marshaled; prior state must survive.
			store.Set("good", make(chan int))

			var got string
			require.True(t, store.Get("good", &got))
			assert.Equal(t, "value", got)
		})
	}
}

func TestRemoveAndClear(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			store.Set("a", 1)
			store.Set("b", 2)

			store.Remove("a")
			var got int
			assert.False(t, store.Get("a", &got))
			assert.True(t, store.Get("b", &got))

			store.Clear()
			assert.False(t, store.Get("b", &got))
		})
	}
}

func TestKeysWithPrefix(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			store.Set(EditedPostKey(2), "x")
			store.Set(EditedPostKey(10), "y")
			store.Set(SessionKey, "s")

			keys := store.KeysWithPrefix(EditedPostPrefix)
			assert.ElementsMatch(t, []string{"edited_post_10", "edited_post_2"}, keys)

			assert.Empty(t, store.KeysWithPrefix("unused_"))
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	store, err := NewSQLiteStore(path, testLogger())
	require.NoError(t, err)
	store.Set("durable", 42)
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path, testLogger())
	require.NoError(t, err)
	defer reopened.Close()

	var got int
	require.True(t, reopened.Get("durable", &got))
	assert.Equal(t, 42, got)
}
