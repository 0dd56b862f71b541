package window

import (
	"fmt"
	"time"
)

type EventKind int

const (
	EventWindowClose EventKind = iota
	EventWindowActivate
	EventWindowDeactivate
	EventWindowSize
)

func (k EventKind) String() string {
	switch k {
	case EventWindowClose:
		return "WindowClose"
	case EventWindowActivate:
		return "WindowActivate"
	case EventWindowDeactivate:
		return "WindowDeactivate"
	case EventWindowSize:
		return "WindowSize"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a generic window event delivered to the application.
type Event struct {
	Time   time.Time
	Kind   EventKind
	Window *Window
}

func (w *Window) pushEvent(kind EventKind) error {
	err := w.sys.Events.Push(Event{
		Time:   w.sys.now(),
		Kind:   kind,
		Window: w,
	})
	if err != nil {
		return fmt.Errorf("push %v event: %w", kind, err)
	}
	return nil
}
