package view

import (
	"io"
	"time"

	"golang.org/x/exp/slog"

	"postdeck/internal/api"
	"postdeck/internal/domain/session"
	"postdeck/internal/storage"
)

// Well-known slot names, matching the route paths.
const (
	SlotLogin     = "login"
	SlotPosts     = "posts"
	SlotDetail    = "detail"
	SlotAnalytics = "analytics"
)

// Deps is the shared wiring handed to every view-model.
type Deps struct {
	Client  *api.Client
	Store   storage.Store
	Session *session.Service
	Nav     Navigator
	Log     *slog.Logger
	Out     io.Writer
	Timeout time.Duration
}

func (d Deps) timeout() time.Duration {
	if d.Timeout > 0 {
		return d.Timeout
	}
	return 30 * time.Second
}
