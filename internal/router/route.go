package router

// Handler runs after a navigation commits. The returned error is logged and
// never propagated to the navigation flow.
type Handler func(params map[string]string, from *ActiveRoute) error

// Route is an immutable route definition, registered once at startup.
type Route struct {
	Path         string
	Handler      Handler
	RequiresAuth bool
	Title        string
}

// ActiveRoute is the committed navigation state: the matched route plus the
// parsed fragment params. Replaced as a whole on every successful transition.
type ActiveRoute struct {
	Path   string
	Params map[string]string
	Route  *Route
}

// Hook runs around a navigation transition. A before-hook cancels the whole
// transition by returning ErrAbortNavigation; any other error is logged and
// treated as an allow, so a buggy hook cannot block navigation for good.
type Hook func(from, to *ActiveRoute) error
