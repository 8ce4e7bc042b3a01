package router

// Location abstracts the navigation address bar: a fragment string plus a
// change notification. The router never touches process-global state, which
// keeps it fully testable.
type Location interface {
	// Fragment returns the current fragment, without a leading '#'.
	Fragment() string
	// Push sets a new fragment, adding a history entry.
	Push(fragment string)
	// Replace sets a new fragment without adding a history entry.
	Replace(fragment string)
	// OnChange registers the single change listener. Both Push and Replace
	// notify it.
	OnChange(fn func(fragment string))
}

// MemoryLocation is the in-process Location used by the terminal client.
// It keeps a history stack so the shell can offer "back".
type MemoryLocation struct {
	history  []string
	onChange func(string)
}

func NewMemoryLocation(initial string) *MemoryLocation {
	return &MemoryLocation{history: []string{initial}}
}

func (l *MemoryLocation) Fragment() string {
	return l.history[len(l.history)-1]
}

func (l *MemoryLocation) Push(fragment string) {
	l.history = append(l.history, fragment)
	l.notify(fragment)
}

func (l *MemoryLocation) Replace(fragment string) {
	l.history[len(l.history)-1] = fragment
	l.notify(fragment)
}

// Back pops one history entry and notifies the listener, like the browser
// back button. It is a no-op at the bottom of the stack.
func (l *MemoryLocation) Back() {
	if len(l.history) < 2 {
		return
	}
	l.history = l.history[:len(l.history)-1]
	l.notify(l.Fragment())
}

func (l *MemoryLocation) OnChange(fn func(fragment string)) {
	l.onChange = fn
}

func (l *MemoryLocation) notify(fragment string) {
	if l.onChange != nil {
		l.onChange(fragment)
	}
}
