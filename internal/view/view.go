package view

import (
	"golang.org/x/exp/slog"
)

// View is one screen's view-model. Teardown is part of the contract: every
// view implements Dispose, a no-op when there is nothing to clean up.
type View interface {
	// Init loads the view's data and renders it. Called on activation.
	Init(params map[string]string) error
	// Dispose releases the view's resources (pending timers in particular).
	Dispose()
}

// Factory constructs a fresh view-model instance for a slot.
type Factory func() View

// Navigator triggers router navigations from a view action.
type Navigator interface {
	Navigate(path string, params map[string]string, replace bool)
}

// Orchestrator owns at most one live view-model per route slot and exactly
// one "current" view. Most slots are recreated on every navigation; slots
// marked reusable (login, analytics) keep their instance for the app
// lifetime and are torn down only by DisposeAll on logout or shutdown.
type Orchestrator struct {
	log      *slog.Logger
	slots    map[string]View
	reusable map[string]bool
	current  string
}

func NewOrchestrator(log *slog.Logger, reusableSlots ...string) *Orchestrator {
	reusable := make(map[string]bool, len(reusableSlots))
	for _, slot := range reusableSlots {
		reusable[slot] = true
	}

	return &Orchestrator{
		log:      log,
		slots:    make(map[string]View),
		reusable: reusable,
	}
}

// Activate makes the slot's view current, constructing it via factory. An
// existing instance in a non-reusable slot is disposed first; a reusable
// slot keeps its instance and only re-runs Init as a refresh.
func (o *Orchestrator) Activate(slot string, params map[string]string, factory Factory) error {
	instance, exists := o.slots[slot]

	if exists && !o.reusable[slot] {
		instance.Dispose()
		delete(o.slots, slot)
		exists = false
	}

	if !exists {
		instance = factory()
		o.slots[slot] = instance
	}

	o.current = slot

	if err := instance.Init(params); err != nil {
		return err
	}
	return nil
}

// Current returns the active view-model, nil when nothing is displayed.
func (o *Orchestrator) Current() View {
	if o.current == "" {
		return nil
	}
	return o.slots[o.current]
}

// DisposeCurrent retires the displayed view before a route change commits.
// Reusable slots are only deactivated, their instance survives.
func (o *Orchestrator) DisposeCurrent() {
	if o.current == "" {
		return
	}

	slot := o.current
	o.current = ""

	if o.reusable[slot] {
		return
	}

	if instance, ok := o.slots[slot]; ok {
		instance.Dispose()
		delete(o.slots, slot)
	}
}

// DisposeAll tears down every slot, reusable ones included. Called on
// logout and on shutdown.
func (o *Orchestrator) DisposeAll() {
	for slot, instance := range o.slots {
		instance.Dispose()
		delete(o.slots, slot)
	}
	o.current = ""
}
