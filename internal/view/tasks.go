package view

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid triggers into one delayed invocation. The owner
// cancels it on disposal so a pending function never fires into a disposed
// view.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
}

// Trigger schedules fn after delay, replacing any pending invocation.
func (d *Debouncer) Trigger(delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(delay, fn)
}

// Flush cancels the pending invocation and runs fn immediately.
func (d *Debouncer) Flush(fn func()) {
	d.Cancel()
	fn()
}

// Cancel drops the pending invocation, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
