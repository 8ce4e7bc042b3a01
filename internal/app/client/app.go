package client

import (
	"fmt"
	"io"

	"golang.org/x/exp/slog"

	"postdeck/internal/api"
	"postdeck/internal/app/client/config"
	"postdeck/internal/domain/post"
	"postdeck/internal/domain/session"
	"postdeck/internal/router"
	"postdeck/internal/storage"
	"postdeck/internal/view"
)

// App wires the client together: storage, the remote data client, the mock
// session, the router and the view orchestrator. One instance per process,
// driven from a single goroutine.
type App struct {
	config   *config.Config
	log      *slog.Logger
	store    storage.Store
	api      *api.Client
	sessions *session.Service
	location *router.MemoryLocation
	router   *router.Router
	views    *view.Orchestrator
	out      io.Writer
	title    string
}

func New(cfg *config.Config, log *slog.Logger, out io.Writer) (*App, error) {
	// Local storage, with an in-memory fallback so a broken data file
	// never keeps the client from starting.
	var store storage.Store
	sqliteStore, err := storage.NewSQLiteStore(cfg.DataPath, log)
	if err != nil {
		log.Warn("failed to open sqlite storage, using memory", "error", err)
		store = storage.NewMemoryStore(log)
	} else {
		store = sqliteStore
	}

	a := &App{
		config:   cfg,
		log:      log,
		store:    store,
		api:      api.NewClient(cfg, store, log),
		sessions: session.NewService(store, log),
		location: router.NewMemoryLocation(""),
		out:      out,
	}

	a.router = router.New(a.location, a.sessions.IsAuthenticated, router.Config{
		DefaultPath: cfg.DefaultRoute,
		LoginPath:   "login",
		HomePath:    "posts",
	}, log)

	a.views = view.NewOrchestrator(log, view.SlotLogin, view.SlotAnalytics)

	a.router.OnBeforeCommit(func(outgoing *router.ActiveRoute) {
		a.views.DisposeCurrent()
	})
	a.router.OnTitle(func(title string) {
		a.title = title
	})
	a.router.AfterEach(func(_, to *router.ActiveRoute) error {
		a.log.Debug("navigated", "to", to.Path, "params", to.Params)
		return nil
	})

	if err := a.registerRoutes(); err != nil {
		store.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) registerRoutes() error {
	deps := view.Deps{
		Client:  a.api,
		Store:   a.store,
		Session: a.sessions,
		Nav:     a.router,
		Log:     a.log,
		Out:     a.out,
		Timeout: a.config.RequestTimeout,
	}

	routes := []router.Route{
		{
			Path:  "login",
			Title: "Login",
			Handler: func(params map[string]string, _ *router.ActiveRoute) error {
				return a.views.Activate(view.SlotLogin, params, func() view.View {
					return view.NewLoginView(deps)
				})
			},
		},
		{
			Path:         "posts",
			RequiresAuth: true,
			Title:        "Posts",
			Handler: func(params map[string]string, _ *router.ActiveRoute) error {
				return a.views.Activate(view.SlotPosts, params, func() view.View {
					return view.NewPostsView(deps)
				})
			},
		},
		{
			Path:         "detail",
			RequiresAuth: true,
			Title:        "Post",
			Handler: func(params map[string]string, _ *router.ActiveRoute) error {
				return a.views.Activate(view.SlotDetail, params, func() view.View {
					return view.NewDetailView(deps)
				})
			},
		},
		{
			Path:         "analytics",
			RequiresAuth: true,
			Title:        "Analytics",
			Handler: func(params map[string]string, _ *router.ActiveRoute) error {
				return a.views.Activate(view.SlotAnalytics, params, func() view.View {
					return view.NewAnalyticsView(deps)
				})
			},
		},
	}

	for _, route := range routes {
		if err := a.router.Register(route); err != nil {
			return fmt.Errorf("failed to register route: %w", err)
		}
	}

	return nil
}

// Start evaluates the initial fragment and activates the matching view.
func (a *App) Start(initial string) {
	if initial != "" {
		a.location.Replace(initial)
	}
	a.router.Init()
}

// Navigate moves to a route through the regular transition path.
func (a *App) Navigate(path string, params map[string]string, replace bool) {
	a.router.Navigate(path, params, replace)
}

// Back pops one history entry, like the browser back button.
func (a *App) Back() {
	a.location.Back()
}

// CurrentRoute returns the committed route, nil before Start.
func (a *App) CurrentRoute() *router.ActiveRoute {
	return a.router.Current()
}

// Title is the active screen title, shown in the shell prompt.
func (a *App) Title() string {
	return a.title
}

// IsAuthenticated reports whether a session exists.
func (a *App) IsAuthenticated() bool {
	return a.sessions.IsAuthenticated()
}

// Session returns the current session, if any.
func (a *App) Session() (*session.Session, error) {
	return a.sessions.Current()
}

// Login signs in through the active login view when one is displayed, so
// the view drives the follow-up navigation. Outside the login screen it
// falls back to the session service directly.
func (a *App) Login(companyCode string, region session.Region, email string) error {
	if lv, ok := a.views.Current().(*view.LoginView); ok {
		return lv.Submit(companyCode, region, email)
	}

	if _, err := a.sessions.Login(companyCode, region, email); err != nil {
		return err
	}
	a.Navigate("posts", nil, false)
	return nil
}

// Logout destroys the session, tears down every view including the
// singleton slots and returns to the login screen.
func (a *App) Logout() {
	a.views.DisposeAll()
	a.sessions.Logout()
	a.Navigate("login", nil, true)
}

// EditTitle stages a title edit on the open post.
func (a *App) EditTitle(title string) error {
	dv, err := a.detailView()
	if err != nil {
		return err
	}
	dv.SetTitle(title)
	return nil
}

// EditBody stages a body edit on the open post.
func (a *App) EditBody(body string) error {
	dv, err := a.detailView()
	if err != nil {
		return err
	}
	dv.SetBody(body)
	return nil
}

// Save flushes staged edits on the open post immediately.
func (a *App) Save() error {
	dv, err := a.detailView()
	if err != nil {
		return err
	}
	dv.Save()
	return nil
}

// DiscardEdits drops every local overlay, reverting to the remote copies.
func (a *App) DiscardEdits() {
	post.RemoveOverlays(a.store)
	fmt.Fprintln(a.out, "local edits discarded")
}

func (a *App) detailView() (*view.DetailView, error) {
	dv, ok := a.views.Current().(*view.DetailView)
	if !ok {
		return nil, fmt.Errorf("no post is open, use detail?id=<id> first")
	}
	return dv, nil
}

// Close disposes every view and releases the storage.
func (a *App) Close() error {
	a.views.DisposeAll()
	return a.store.Close()
}
