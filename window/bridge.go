package window

import "deedles.dev/wlwin/internal/debug"

// bridge is the handler set registered with the decoration service.
// The service only ever sees an opaque handle for each window. The
// bridge maps handles back to windows, and a window removes itself
// before it releases anything, so a notification that arrives after
// that point finds nothing to call.
type bridge struct {
	windows map[uintptr]*Window
	next    uintptr
}

func newBridge() *bridge {
	return &bridge{
		windows: make(map[uintptr]*Window),
		next:    1,
	}
}

func (b *bridge) register(w *Window) uintptr {
	h := b.next
	b.next++
	b.windows[h] = w
	return h
}

func (b *bridge) unregister(h uintptr) {
	delete(b.windows, h)
}

func (b *bridge) lookup(h uintptr, event string) *Window {
	w := b.windows[h]
	if w == nil {
		debug.Printf("window: dropped %v for unregistered frame handle %v", event, h)
	}
	return w
}

func (b *bridge) Configure(f Frame, c Configuration, data uintptr) {
	if w := b.lookup(data, "configure"); w != nil {
		w.configure(c)
	}
}

func (b *bridge) Close(f Frame, data uintptr) {
	w := b.lookup(data, "close")
	if w == nil {
		return
	}

	err := w.Close()
	if err != nil {
		debug.Printf("window: close: %v", err)
	}
}

// Commit presents twice. A single swap can leave pop-up surfaces
// showing a stale frame under client-side decorations.
func (b *bridge) Commit(f Frame, data uintptr) {
	w := b.lookup(data, "commit")
	if w == nil {
		return
	}

	for i := 0; i < 2; i++ {
		err := w.SwapBuffers()
		if err != nil {
			debug.Printf("window: swap buffers: %v", err)
		}
	}
}
