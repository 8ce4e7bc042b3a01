package view

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/fatih/color"

	"postdeck/internal/domain/post"
)

const autoSaveDelay = 2 * time.Second

// DetailView shows one post and stages edits. Staged changes are auto-saved
// after a short quiet period; disposal cancels the pending save so a late
// timer never writes on behalf of a dead view.
type DetailView struct {
	deps Deps

	mu       sync.Mutex
	id       int
	current  post.Post
	pending  post.Patch
	dirty    bool
	disposed bool
	debounce Debouncer
}

func NewDetailView(deps Deps) *DetailView {
	return &DetailView{deps: deps}
}

func (v *DetailView) Init(params map[string]string) error {
	raw := params["id"]
	if raw == "" {
		return fmt.Errorf("detail route requires an id param")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("bad id param %q: %w", raw, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), v.deps.timeout())
	defer cancel()

	p, err := v.deps.Client.MergedPost(ctx, id)
	if err != nil {
		color.New(color.FgRed).Fprintf(v.deps.Out, "failed to load post %d: %v\n", id, err)
		return err
	}

	v.mu.Lock()
	v.id = id
	v.current = p
	v.pending = post.Patch{}
	v.dirty = false
	disposed := v.disposed
	v.mu.Unlock()

	if disposed {
		return nil
	}

	v.render(p)
	return nil
}

func (v *DetailView) render(p post.Post) {
	header := color.New(color.FgCyan, color.Bold)
	header.Fprintf(v.deps.Out, "=== Post %d ===\n", p.ID)

	if post.IsEdited(v.deps.Store, p.ID) {
		color.New(color.FgYellow).Fprintln(v.deps.Out, "(has local edits)")
	}

	fmt.Fprintf(v.deps.Out, "Author: %d\n", p.UserID)
	fmt.Fprintf(v.deps.Out, "Title:  %s\n", p.Title)
	fmt.Fprintf(v.deps.Out, "\n%s\n", p.Body)
	fmt.Fprintln(v.deps.Out, "\nUse: edit title <text> | edit body <text> | save")
}

// SetTitle stages a title edit and schedules the auto-save.
func (v *DetailView) SetTitle(title string) {
	v.mu.Lock()
	v.pending.Title = &title
	v.dirty = true
	v.mu.Unlock()

	v.debounce.Trigger(autoSaveDelay, v.save)
}

// SetBody stages a body edit and schedules the auto-save.
func (v *DetailView) SetBody(body string) {
	v.mu.Lock()
	v.pending.Body = &body
	v.dirty = true
	v.mu.Unlock()

	v.debounce.Trigger(autoSaveDelay, v.save)
}

// Save flushes staged edits immediately.
func (v *DetailView) Save() {
	v.debounce.Flush(v.save)
}

func (v *DetailView) save() {
	v.mu.Lock()
	if v.disposed || !v.dirty {
		v.mu.Unlock()
		return
	}
	id := v.id
	patch := v.pending
	v.dirty = false
	v.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), v.deps.timeout())
	defer cancel()

	v.deps.Client.UpdatePost(ctx, id, patch)
	color.New(color.FgGreen).Fprintf(v.deps.Out, "post %d saved\n", id)
}

func (v *DetailView) Dispose() {
	v.debounce.Cancel()

	v.mu.Lock()
	v.disposed = true
	v.mu.Unlock()
}
