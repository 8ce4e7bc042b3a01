package router

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/exp/slog"
)

// ErrAbortNavigation cancels a transition when returned from a before-hook.
var ErrAbortNavigation = errors.New("navigation aborted")

// SessionChecker reports whether a login session currently exists.
type SessionChecker func() bool

// Config names the well-known routes the transition rules refer to.
type Config struct {
	// DefaultPath is the target of an empty fragment and of unknown paths.
	DefaultPath string
	// LoginPath is the auth-gate redirect target.
	LoginPath string
	// HomePath is where an already-authenticated user lands when trying to
	// open the login route.
	HomePath string
}

// Router maps location fragments to registered routes, enforcing the auth
// gates and running the navigation hooks in order.
//
// All methods must be called from the same goroutine; navigations triggered
// while a transition is in flight are queued and run after it finishes, so
// transitions never interleave.
type Router struct {
	log      *slog.Logger
	location Location
	cfg      Config

	routes      map[string]*Route
	hasSession  SessionChecker
	beforeHooks []Hook
	afterHooks  []Hook

	current      *ActiveRoute
	setTitle     func(string)
	beforeCommit func(outgoing *ActiveRoute)

	transitioning bool
	pending       []string
}

func New(location Location, hasSession SessionChecker, cfg Config, log *slog.Logger) *Router {
	if cfg.DefaultPath == "" {
		cfg.DefaultPath = "login"
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = "login"
	}
	if cfg.HomePath == "" {
		cfg.HomePath = "posts"
	}

	return &Router{
		log:        log,
		location:   location,
		cfg:        cfg,
		routes:     make(map[string]*Route),
		hasSession: hasSession,
	}
}

// Register adds a route definition. Paths are unique, registering twice is
// a programming error.
func (r *Router) Register(route Route) error {
	if route.Path == "" {
		return fmt.Errorf("route path must not be empty")
	}
	if _, exists := r.routes[route.Path]; exists {
		return fmt.Errorf("route %q already registered", route.Path)
	}

	r.routes[route.Path] = &route
	return nil
}

// BeforeEach registers a pre-navigation hook, run in registration order.
func (r *Router) BeforeEach(h Hook) {
	r.beforeHooks = append(r.beforeHooks, h)
}

// AfterEach registers a post-navigation hook, run in registration order.
func (r *Router) AfterEach(h Hook) {
	r.afterHooks = append(r.afterHooks, h)
}

// OnTitle registers the presentation callback invoked with the route title
// after each commit.
func (r *Router) OnTitle(fn func(title string)) {
	r.setTitle = fn
}

// OnBeforeCommit registers a callback invoked with the outgoing route right
// before the new route is committed, after all before-hooks have allowed
// the transition. The view orchestrator disposes the outgoing view here.
func (r *Router) OnBeforeCommit(fn func(outgoing *ActiveRoute)) {
	r.beforeCommit = fn
}

// Current returns the committed route state, nil before the first
// successful transition.
func (r *Router) Current() *ActiveRoute {
	return r.current
}

// Init subscribes to the location and evaluates the initial fragment as if
// it had just changed.
func (r *Router) Init() {
	r.location.OnChange(r.onFragmentChange)
	r.onFragmentChange(r.location.Fragment())
}

// Navigate builds a fragment from path and params and mutates the location.
// The transition itself runs through the fragment-change listener, the same
// code path as user-driven navigation.
func (r *Router) Navigate(path string, params map[string]string, replace bool) {
	fragment := BuildFragment(path, params)
	if replace {
		r.location.Replace(fragment)
	} else {
		r.location.Push(fragment)
	}
}

// BuildFragment joins a path with percent-encoded query pairs.
func BuildFragment(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}

	values := url.Values{}
	for key, value := range params {
		if value != "" {
			values.Set(key, value)
		}
	}
	if len(values) == 0 {
		return path
	}

	return path + "?" + values.Encode()
}

// ParseFragment splits a fragment into path and decoded params.
func ParseFragment(fragment string) (string, map[string]string) {
	fragment = strings.TrimPrefix(fragment, "#")

	path, query, _ := strings.Cut(fragment, "?")
	params := make(map[string]string)

	if query != "" {
		values, err := url.ParseQuery(query)
		if err == nil {
			for key := range values {
				params[key] = values.Get(key)
			}
		}
	}

	return path, params
}

func (r *Router) onFragmentChange(fragment string) {
	// A navigation triggered while a transition is running (from a hook or
	// a handler) is queued and processed once the current one unwinds.
	if r.transitioning {
		r.pending = append(r.pending, fragment)
		return
	}

	r.transitioning = true
	defer func() { r.transitioning = false }()

	r.transition(fragment)
	for len(r.pending) > 0 {
		next := r.pending[0]
		r.pending = r.pending[1:]
		r.transition(next)
	}
}

func (r *Router) transition(fragment string) {
	path, params := ParseFragment(fragment)
	if path == "" {
		path = r.cfg.DefaultPath
	}

	route, ok := r.routes[path]
	if !ok {
		r.log.Warn("unknown route, redirecting to default", "path", path)
		r.location.Replace(r.cfg.DefaultPath)
		return
	}

	if route.RequiresAuth && !r.hasSession() {
		r.log.Debug("auth required, redirecting to login", "path", path)
		r.location.Replace(r.cfg.LoginPath)
		return
	}

	if path == r.cfg.LoginPath && r.hasSession() {
		r.log.Debug("already authenticated, redirecting home")
		r.location.Replace(r.cfg.HomePath)
		return
	}

	incoming := &ActiveRoute{Path: path, Params: params, Route: route}
	outgoing := r.current

	for _, hook := range r.beforeHooks {
		if err := hook(outgoing, incoming); err != nil {
			if errors.Is(err, ErrAbortNavigation) {
				r.log.Debug("navigation cancelled by hook", "path", path)
				return
			}
			// A failing hook must not block navigation.
			r.log.Error("before-navigation hook failed", "path", path, "error", err)
		}
	}

	if r.beforeCommit != nil {
		r.beforeCommit(outgoing)
	}
	r.current = incoming

	if r.setTitle != nil && route.Title != "" {
		r.setTitle(route.Title)
	}

	if route.Handler != nil {
		if err := route.Handler(params, outgoing); err != nil {
			r.log.Error("route handler failed", "path", path, "error", err)
		}
	}

	for _, hook := range r.afterHooks {
		if err := hook(outgoing, incoming); err != nil {
			r.log.Error("after-navigation hook failed", "path", path, "error", err)
		}
	}
}
