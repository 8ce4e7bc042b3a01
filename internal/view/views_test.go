package view

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"golang.org/x/exp/slog"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postdeck/internal/api"
	"postdeck/internal/app/client/config"
	"postdeck/internal/domain/post"
	"postdeck/internal/domain/session"
	"postdeck/internal/storage"
)

type navCall struct {
	path    string
	params  map[string]string
	replace bool
}

type fakeNav struct {
	calls []navCall
}

func (n *fakeNav) Navigate(path string, params map[string]string, replace bool) {
	n.calls = append(n.calls, navCall{path: path, params: params, replace: replace})
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	posts := []post.Post{
		{ID: 1, UserID: 1, Title: "alpha", Body: "first body"},
		{ID: 2, UserID: 2, Title: "beta", Body: "second body which is longer"},
	}
	users := []post.User{
		{ID: 1, Name: "Leanne Graham"},
		{ID: 2, Name: "Ervin Howell"},
	}

	mux := chi.NewRouter()
	mux.Get("/posts", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(posts)
	})
	mux.Get("/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "1" {
			_ = json.NewEncoder(w).Encode(posts[0])
			return
		}
		_ = json.NewEncoder(w).Encode(posts[1])
	})
	mux.Put("/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Get("/users", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(users)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testDeps(t *testing.T) (Deps, *bytes.Buffer, *fakeNav) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	store := storage.NewMemoryStore(log)
	server := testServer(t)

	cfg := &config.Config{
		APIBaseURL:     server.URL,
		CacheTTL:       time.Hour,
		RequestTimeout: 5 * time.Second,
	}

	out := &bytes.Buffer{}
	nav := &fakeNav{}
	deps := Deps{
		Client:  api.NewClient(cfg, store, log),
		Store:   store,
		Session: session.NewService(store, log),
		Nav:     nav,
		Log:     log,
		Out:     out,
		Timeout: 5 * time.Second,
	}

	return deps, out, nav
}

func TestLoginViewSubmit(t *testing.T) {
	deps, out, nav := testDeps(t)
	v := NewLoginView(deps)

	require.NoError(t, v.Init(nil))
	assert.Contains(t, out.String(), "Sign in")

	require.NoError(t, v.Submit("ACME", session.RegionEurope, "user@example.com"))

	assert.True(t, deps.Session.IsAuthenticated())
	require.Len(t, nav.calls, 1)
	assert.Equal(t, "posts", nav.calls[0].path)

	err := v.Submit("", session.RegionEurope, "user@example.com")
	assert.ErrorIs(t, err, session.ErrEmptyCompanyCode)
}

func TestPostsViewRendersMergedCollection(t *testing.T) {
	deps, out, _ := testDeps(t)

	title := "beta edited"
	post.SaveOverlay(deps.Store, 2, post.Overlay{Data: post.Patch{Title: &title}, Timestamp: time.Now()})

	v := NewPostsView(deps)
	require.NoError(t, v.Init(nil))

	rendered := out.String()
	assert.Contains(t, rendered, "alpha")
	assert.Contains(t, rendered, "beta edited")
	assert.Contains(t, rendered, "Posts (2)")
}

func TestPostsViewBadUserParam(t *testing.T) {
	deps, _, _ := testDeps(t)

	v := NewPostsView(deps)
	assert.Error(t, v.Init(map[string]string{"userId": "abc"}))
}

func TestDetailViewRequiresID(t *testing.T) {
	deps, _, _ := testDeps(t)

	v := NewDetailView(deps)
	assert.Error(t, v.Init(nil))
	assert.Error(t, v.Init(map[string]string{"id": "seven"}))
}

func TestDetailViewEditAndSave(t *testing.T) {
	deps, out, _ := testDeps(t)

	v := NewDetailView(deps)
	require.NoError(t, v.Init(map[string]string{"id": "1"}))
	assert.Contains(t, out.String(), "alpha")

	v.SetTitle("rewritten")
	v.Save()

	overlay, ok := post.LoadOverlay(deps.Store, 1)
	require.True(t, ok)
	require.NotNil(t, overlay.Data.Title)
	assert.Equal(t, "rewritten", *overlay.Data.Title)

	// The merged read now prefers the overlay.
	out.Reset()
	v2 := NewDetailView(deps)
	require.NoError(t, v2.Init(map[string]string{"id": "1"}))
	assert.Contains(t, out.String(), "rewritten")
	assert.Contains(t, out.String(), "local edits")
}

func TestDetailViewDisposeCancelsAutoSave(t *testing.T) {
	deps, _, _ := testDeps(t)

	v := NewDetailView(deps)
	require.NoError(t, v.Init(map[string]string{"id": "1"}))

	v.SetTitle("never saved")
	v.Dispose()

	time.Sleep(50 * time.Millisecond)
	_, ok := post.LoadOverlay(deps.Store, 1)
	assert.False(t, ok)

	// A save firing after disposal is ignored too.
	v.Save()
	_, ok = post.LoadOverlay(deps.Store, 1)
	assert.False(t, ok)
}

func TestAnalyticsView(t *testing.T) {
	deps, out, _ := testDeps(t)

	title := "beta edited"
	post.SaveOverlay(deps.Store, 2, post.Overlay{Data: post.Patch{Title: &title}, Timestamp: time.Now()})

	v := NewAnalyticsView(deps)
	require.NoError(t, v.Init(nil))

	rendered := out.String()
	assert.Contains(t, rendered, "Posts:            2")
	assert.Contains(t, rendered, "Authors:          2")
	assert.Contains(t, rendered, "Leanne Graham")
	assert.Contains(t, rendered, "Locally edited:   1")
}
