// Package wm keeps track of an application's windows and which of
// them is active.
package wm

import (
	"slices"

	"deedles.dev/wlwin/internal/debug"
	"deedles.dev/wlwin/internal/set"
	"deedles.dev/wlwin/internal/xslices"
	"deedles.dev/wlwin/window"
	"golang.org/x/exp/maps"
)

// Manager is a set of windows with at most one active window at a
// time. It implements window.WindowManager.
type Manager struct {
	// Changed, if not nil, is called whenever the active window
	// changes. active is nil if no window is active.
	Changed func(active *window.Window)

	windows set.Set[*window.Window]
	order   []*window.Window
	active  *window.Window
}

func New() *Manager {
	return &Manager{
		windows: make(set.Set[*window.Window]),
	}
}

// Add starts tracking w.
func (m *Manager) Add(w *window.Window) {
	if m.windows.Has(w) {
		return
	}
	m.windows.Add(w)
	m.order = append(m.order, w)
}

// Remove stops tracking w. If w was active, no window is active
// afterwards.
func (m *Manager) Remove(w *window.Window) {
	if !m.windows.Has(w) {
		return
	}
	m.windows.Delete(w)
	m.order = slices.DeleteFunc(m.order, func(o *window.Window) bool { return o == w })

	if m.active == w {
		m.setActive(nil)
	}
}

// SetActiveWindow makes w the active window. Windows are usually
// activated for the first time while they are still being created, so
// w is added if it isn't already tracked.
func (m *Manager) SetActiveWindow(w *window.Window) error {
	m.Add(w)
	if m.active == w {
		return nil
	}
	m.setActive(w)
	return nil
}

// SetWindowInactive records that w is no longer active. It does
// nothing if some other window is active. A window that is being
// destroyed is also forgotten.
func (m *Manager) SetWindowInactive(w *window.Window) {
	if w.Destroyed() {
		m.Remove(w)
		return
	}
	if m.active != w {
		return
	}
	m.setActive(nil)
}

func (m *Manager) setActive(w *window.Window) {
	m.active = w
	debug.Printf("wm: active window: %v", w)
	if m.Changed != nil {
		m.Changed(w)
	}
}

// ActiveWindow returns the active window, or nil if there isn't one.
func (m *Manager) ActiveWindow() *window.Window {
	return m.active
}

// Has reports whether w is being tracked.
func (m *Manager) Has(w *window.Window) bool {
	return m.windows.Has(w)
}

// Len returns the number of tracked windows.
func (m *Manager) Len() int {
	return len(m.windows)
}

// Windows returns the tracked windows in no particular order.
func (m *Manager) Windows() []*window.Window {
	return maps.Keys(m.windows)
}

// Dialogs returns the tracked dialog windows in the order in which
// they were added.
func (m *Manager) Dialogs() []*window.Window {
	return xslices.Filter(m.order, (*window.Window).IsDialog)
}

// DestroyAll destroys and forgets every tracked window.
func (m *Manager) DestroyAll() {
	order := m.order
	clear(m.windows)
	m.order = nil
	for _, w := range order {
		w.Destroy()
	}
	if m.active != nil {
		m.setActive(nil)
	}
}
