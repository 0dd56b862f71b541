package decor

import (
	wl "deedles.dev/wlwin/client"
	"deedles.dev/wlwin/internal/debug"
	"deedles.dev/wlwin/xdg"
)

// Frame is a decorated toplevel window.
type Frame struct {
	surface *wl.Surface
	xs      *xdg.Surface
	top     *xdg.Toplevel
	iface   FrameInterface
	data    uintptr
	refs    int

	// pending collects toplevel configure events until the matching
	// xdg_surface.configure ends the sequence.
	pending Configuration

	title  string
	appID  string
	mapped bool
	state  WindowState
}

func (f *Frame) toplevelConfigure(width, height int32, states []byte) {
	state, ok := parseStates(states)
	if !ok {
		debug.Printf("decor: %v sent a malformed states array of length %v", f.top, len(states))
	}

	f.pending.width = width
	f.pending.height = height
	f.pending.state = state
	f.pending.stateOK = ok
}

func (f *Frame) surfaceConfigure(serial uint32) {
	if f.refs <= 0 {
		return
	}

	c := f.pending
	c.serial = serial
	f.pending = Configuration{}

	f.iface.Configure(f, &c, f.data)
}

func (f *Frame) close() {
	if f.refs <= 0 {
		return
	}
	f.iface.Close(f, f.data)
}

// Map makes the frame visible by committing the surface, which starts
// the initial configuration sequence.
func (f *Frame) Map() {
	if f.mapped {
		return
	}
	f.mapped = true
	f.surface.Commit()
}

// IsMapped reports whether Map has been called.
func (f *Frame) IsMapped() bool {
	return f.mapped
}

// SetParent makes f a transient child of parent. A nil parent makes f
// a top-level window again.
func (f *Frame) SetParent(parent *Frame) {
	if parent == nil {
		f.top.SetParent(nil)
		return
	}
	f.top.SetParent(parent.top)
}

func (f *Frame) SetTitle(title string) {
	if title == f.title {
		return
	}
	f.title = title
	f.top.SetTitle(title)
}

func (f *Frame) Title() string {
	return f.title
}

func (f *Frame) SetAppID(id string) {
	f.appID = id
	f.top.SetAppID(id)
}

func (f *Frame) AppID() string {
	return f.appID
}

func (f *Frame) SetMaximized()   { f.top.SetMaximized() }
func (f *Frame) UnsetMaximized() { f.top.UnsetMaximized() }
func (f *Frame) SetMinimized()   { f.top.SetMinimized() }

// SetFullscreen asks for the frame to be made fullscreen on an output
// of the compositor's choice.
func (f *Frame) SetFullscreen() {
	f.top.SetFullscreen(0)
}

func (f *Frame) UnsetFullscreen() {
	f.top.UnsetFullscreen()
}

// SetMinContentSize and SetMaxContentSize limit the sizes that the
// compositor may suggest. Zero means no limit.
func (f *Frame) SetMinContentSize(width, height int32) {
	f.top.SetMinSize(width, height)
}

func (f *Frame) SetMaxContentSize(width, height int32) {
	f.top.SetMaxSize(width, height)
}

// WindowState returns the state from the most recently committed
// configuration.
func (f *Frame) WindowState() WindowState {
	return f.state
}

// Commit acknowledges c, sets the window geometry to the given content
// size, and asks the application to commit the surface. c may be nil
// to update the geometry without acknowledging anything.
func (f *Frame) Commit(width, height int32, c *Configuration) {
	if f.refs <= 0 {
		return
	}

	if c != nil {
		f.xs.AckConfigure(c.serial)
		if c.stateOK {
			f.state = c.state
		}
	}
	f.xs.SetWindowGeometry(0, 0, width, height)

	f.iface.Commit(f, f.data)
}

// Unref removes the reference held by the caller of Decorate and
// destroys the frame's protocol objects. Further calls do nothing. The
// surface is left alone.
func (f *Frame) Unref() {
	if f.refs <= 0 {
		return
	}

	f.refs--
	if f.refs > 0 {
		return
	}

	f.top.Destroy()
	f.xs.Destroy()
	debug.Printf("decor: released frame for %v", f.surface)
}
