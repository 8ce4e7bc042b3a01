package client

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/exp/slog"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postdeck/internal/app/client/config"
	"postdeck/internal/domain/post"
	"postdeck/internal/domain/session"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	posts := []post.Post{
		{ID: 1, UserID: 1, Title: "alpha", Body: "first body"},
		{ID: 2, UserID: 2, Title: "beta", Body: "second body"},
	}
	users := []post.User{{ID: 1, Name: "Leanne Graham"}, {ID: 2, Name: "Ervin Howell"}}

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

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	server := testServer(t)
	cfg := &config.Config{
		Env:            "local",
		APIBaseURL:     server.URL,
		ConfigDir:      t.TempDir(),
		CacheTTL:       time.Hour,
		RequestTimeout: 5 * time.Second,
		DefaultRoute:   "login",
	}
	cfg.DataPath = filepath.Join(cfg.ConfigDir, "postdeck.db")

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	out := &bytes.Buffer{}

	app, err := New(cfg, log, out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	return app, out
}

func TestStartLandsOnLogin(t *testing.T) {
	app, out := newTestApp(t)

	app.Start("")

	require.NotNil(t, app.CurrentRoute())
	assert.Equal(t, "login", app.CurrentRoute().Path)
	assert.Equal(t, "Login", app.Title())
	assert.Contains(t, out.String(), "Sign in")
}

func TestAuthGateScenario(t *testing.T) {
	app, _ := newTestApp(t)
	app.Start("")

	// Not signed in: posts bounces back to login.
	app.Navigate("posts", nil, false)
	assert.Equal(t, "login", app.CurrentRoute().Path)

	// After login the same navigation goes through.
	require.NoError(t, app.Login("ACME", session.RegionEurope, "user@example.com"))
	assert.Equal(t, "posts", app.CurrentRoute().Path)
	assert.Equal(t, "Posts", app.Title())
}

func TestStartAtProtectedRoute(t *testing.T) {
	app, out := newTestApp(t)

	app.Start("analytics")
	assert.Equal(t, "login", app.CurrentRoute().Path)
	assert.Contains(t, out.String(), "Sign in")
}

func TestLoginWhileAuthenticatedGoesHome(t *testing.T) {
	app, _ := newTestApp(t)
	app.Start("")
	require.NoError(t, app.Login("ACME", session.RegionAsia, "user@example.com"))

	app.Navigate("login", nil, false)
	assert.Equal(t, "posts", app.CurrentRoute().Path)
}

func TestDetailEditFlow(t *testing.T) {
	app, out := newTestApp(t)
	app.Start("")
	require.NoError(t, app.Login("ACME", session.RegionEurope, "user@example.com"))

	// No post open yet.
	assert.Error(t, app.EditTitle("x"))

	app.Navigate("detail", map[string]string{"id": "1"}, false)
	require.Equal(t, "detail", app.CurrentRoute().Path)
	assert.Equal(t, "1", app.CurrentRoute().Params["id"])
	assert.Contains(t, out.String(), "alpha")

	require.NoError(t, app.EditTitle("renamed"))
	require.NoError(t, app.Save())

	out.Reset()
	app.Navigate("posts", nil, false)
	assert.Contains(t, out.String(), "renamed")

	app.DiscardEdits()
	out.Reset()
	app.Navigate("posts", nil, false)
	assert.Contains(t, out.String(), "alpha")
}

func TestBack(t *testing.T) {
	app, _ := newTestApp(t)
	app.Start("")
	require.NoError(t, app.Login("ACME", session.RegionEurope, "user@example.com"))

	app.Navigate("analytics", nil, false)
	require.Equal(t, "analytics", app.CurrentRoute().Path)

	app.Back()
	assert.Equal(t, "posts", app.CurrentRoute().Path)
}

func TestLogout(t *testing.T) {
	app, _ := newTestApp(t)
	app.Start("")
	require.NoError(t, app.Login("ACME", session.RegionAmericas, "user@example.com"))
	require.True(t, app.IsAuthenticated())

	app.Logout()

	assert.False(t, app.IsAuthenticated())
	assert.Equal(t, "login", app.CurrentRoute().Path)

	_, err := app.Session()
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)

	// Protected routes are gated again.
	app.Navigate("analytics", nil, false)
	assert.Equal(t, "login", app.CurrentRoute().Path)
}

func TestUnknownRouteFallsBack(t *testing.T) {
	app, _ := newTestApp(t)
	app.Start("")

	app.Navigate("bogus", nil, false)
	assert.Equal(t, "login", app.CurrentRoute().Path)
}
