package xdg

import (
	wl "deedles.dev/wlwin/client"
	"deedles.dev/wlwin/wire"
)

// Toplevel is an xdg_toplevel.
type Toplevel struct {
	// Configure receives the suggested size, which is zero when the
	// client should pick, and the raw states array.
	Configure func(width, height int32, states []byte)
	Close     func()

	wl.Proxy
}

// SetParent makes t a transient child of parent. A nil parent unsets
// it.
func (t *Toplevel) SetParent(parent *Toplevel) {
	var arg any
	if parent != nil {
		arg = parent
	}
	t.Display().Enqueue(wire.NewRequest(t, 1, "set_parent", arg))
}

func (t *Toplevel) SetTitle(title string) {
	t.Display().Enqueue(wire.NewRequest(t, 2, "set_title", title))
}

func (t *Toplevel) SetAppID(id string) {
	t.Display().Enqueue(wire.NewRequest(t, 3, "set_app_id", id))
}

func (t *Toplevel) SetMaxSize(width, height int32) {
	t.Display().Enqueue(wire.NewRequest(t, 7, "set_max_size", width, height))
}

func (t *Toplevel) SetMinSize(width, height int32) {
	t.Display().Enqueue(wire.NewRequest(t, 8, "set_min_size", width, height))
}

func (t *Toplevel) SetMaximized() {
	t.Display().Enqueue(wire.NewRequest(t, 9, "set_maximized"))
}

func (t *Toplevel) UnsetMaximized() {
	t.Display().Enqueue(wire.NewRequest(t, 10, "unset_maximized"))
}

// SetFullscreen asks to be made fullscreen on output, or on an output
// of the compositor's choice if output is 0.
func (t *Toplevel) SetFullscreen(output uint32) {
	var arg any
	if output != 0 {
		arg = output
	}
	t.Display().Enqueue(wire.NewRequest(t, 11, "set_fullscreen", arg))
}

func (t *Toplevel) UnsetFullscreen() {
	t.Display().Enqueue(wire.NewRequest(t, 12, "unset_fullscreen"))
}

func (t *Toplevel) SetMinimized() {
	t.Display().Enqueue(wire.NewRequest(t, 13, "set_minimized"))
}

func (t *Toplevel) Destroy() {
	t.Display().Enqueue(wire.NewRequest(t, 0, "destroy"))
	t.Display().DeleteObject(t.ID())
}

func (t *Toplevel) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		width := msg.ReadInt()
		height := msg.ReadInt()
		states := msg.ReadArray()
		if err := msg.Err(); err != nil {
			return err
		}
		if t.Configure != nil {
			t.Configure(width, height, states)
		}
		return nil

	case 1:
		if t.Close != nil {
			t.Close()
		}
		return nil
	}
	return unknownEvent(toplevelInterface, msg.Op())
}

func (t *Toplevel) MethodName(op uint16) string {
	switch op {
	case 0:
		return "configure"
	case 1:
		return "close"
	}
	return "unknown"
}

func (t *Toplevel) String() string {
	return objectString(toplevelInterface, t.ID())
}
