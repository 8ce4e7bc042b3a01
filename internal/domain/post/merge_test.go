package post

import (
	"os"
	"testing"
	"time"

	"golang.org/x/exp/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postdeck/internal/storage"
)

func testStore() storage.Store {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return storage.NewMemoryStore(log)
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func TestMergeOne(t *testing.T) {
	canonical := Post{ID: 1, UserID: 4, Title: "original title", Body: "original body"}

	tests := []struct {
		name  string
		patch *Patch
		want  Post
	}{
		{
			name:  "nil patch keeps canonical",
			patch: nil,
			want:  canonical,
		},
		{
			name:  "empty patch keeps canonical",
			patch: &Patch{},
			want:  canonical,
		},
		{
			name:  "partial patch replaces only set fields",
			patch: &Patch{Title: strptr("edited")},
			want:  Post{ID: 1, UserID: 4, Title: "edited", Body: "original body"},
		},
		{
			name:  "full patch replaces everything but id",
			patch: &Patch{UserID: intptr(9), Title: strptr("t"), Body: strptr("b")},
			want:  Post{ID: 1, UserID: 9, Title: "t", Body: "b"},
		},
		{
			name:  "empty string is a real overlay value",
			patch: &Patch{Body: strptr("")},
			want:  Post{ID: 1, UserID: 4, Title: "original title", Body: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeOne(canonical, tt.patch))
		})
	}
}

func TestMergeAll(t *testing.T) {
	posts := []Post{
		{ID: 1, UserID: 1, Title: "one"},
		{ID: 2, UserID: 1, Title: "two"},
		{ID: 3, UserID: 2, Title: "three"},
	}
	overlays := map[int]Patch{
		2: {Title: strptr("X")},
	}

	merged := MergeAll(posts, overlays)
	require.Len(t, merged, 3)
	assert.Equal(t, "one", merged[0].Title)
	assert.Equal(t, "X", merged[1].Title)
	assert.Equal(t, "three", merged[2].Title)

	// Без overlay коллекция возвращается как есть.
	assert.Equal(t, posts, MergeAll(posts, nil))
}

func TestOverlayRoundTrip(t *testing.T) {
	store := testStore()

	assert.False(t, IsEdited(store, 2))

	SaveOverlay(store, 2, Overlay{
		Data:      Patch{Title: strptr("X")},
		Timestamp: time.Now(),
	})
	SaveOverlay(store, 10, Overlay{
		Data:      Patch{Body: strptr("Y")},
		Timestamp: time.Now(),
	})

	assert.True(t, IsEdited(store, 2))
	assert.False(t, IsEdited(store, 1))
	assert.ElementsMatch(t, []int{2, 10}, EditedIDs(store))

	overlay, ok := LoadOverlay(store, 2)
	require.True(t, ok)
	require.NotNil(t, overlay.Data.Title)
	assert.Equal(t, "X", *overlay.Data.Title)

	overlays := LoadOverlays(store)
	require.Len(t, overlays, 2)
	assert.Equal(t, "X", *overlays[2].Title)

	RemoveOverlays(store)
	assert.Empty(t, EditedIDs(store))
}

func TestMergedCollectionScenario(t *testing.T) {
	store := testStore()

	posts := []Post{
		{ID: 1, UserID: 1, Title: "first"},
		{ID: 2, UserID: 1, Title: "second"},
	}
	SaveOverlay(store, 2, Overlay{Data: Patch{Title: strptr("X")}, Timestamp: time.Now()})

	merged := MergeAll(posts, LoadOverlays(store))
	require.Len(t, merged, 2)
	assert.Equal(t, "first", merged[0].Title)
	assert.Equal(t, "X", merged[1].Title)
	assert.False(t, IsEdited(store, 1))
	assert.True(t, IsEdited(store, 2))
}
