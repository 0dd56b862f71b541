package window

import (
	"image"
	"time"
)

// Surface is the native presentable surface that a window owns.
type Surface interface {
	// SetOpaqueRegion tells the compositor which part of the surface
	// is fully opaque.
	SetOpaqueRegion(x, y, width, height int32)
	Destroy()
}

// Display is the connection to the compositor.
type Display interface {
	CreateSurface() (Surface, error)

	// RoundTrip blocks until the compositor has processed all pending
	// requests, dispatching any events that arrive in the meantime.
	RoundTrip() error

	// NativeHandle returns the handle passed to OpenGL drivers to
	// identify the connection.
	NativeHandle() any
}

// NativeWindow is a resizable drawing target attached to a surface.
type NativeWindow interface {
	// Resize changes the size of the native window. It doesn't wait
	// for any acknowledgement.
	Resize(width, height int32)
	Destroy()
}

// NativeWindowFactory creates native windows for surfaces.
type NativeWindowFactory interface {
	NewNativeWindow(s Surface, width, height int32) (NativeWindow, error)
}

// Configuration is a proposal from the compositor that a window be a
// certain size and in a certain state.
type Configuration interface {
	// ContentSize returns the proposed size. ok is false when the
	// compositor left the choice to the client.
	ContentSize() (width, height int32, ok bool)

	// WindowState returns the proposed state. ok is false when the
	// state could not be decoded.
	WindowState() (flags StateFlags, ok bool)
}

// Frame is a window decoration managed by the decoration service.
type Frame interface {
	Map()
	SetParent(parent Frame)
	SetTitle(title string)
	SetAppID(id string)
	SetMaximized()
	UnsetMaximized()
	SetFullscreen()
	UnsetFullscreen()
	SetMinimized()

	// Commit acknowledges c and commits the frame at the given size.
	Commit(width, height int32, c Configuration)

	// Unref releases the frame.
	Unref()
}

// FrameHandler receives notifications about a frame from the
// decoration service. data is the value that was passed to Decorate.
type FrameHandler interface {
	Configure(f Frame, c Configuration, data uintptr)
	Close(f Frame, data uintptr)
	Commit(f Frame, data uintptr)
}

// Decorator is the decoration service.
type Decorator interface {
	Decorate(s Surface, handler FrameHandler, data uintptr) (Frame, error)
}

// EventQueue delivers window events to the rest of the application.
type EventQueue interface {
	Push(ev Event) error
}

// WindowManager keeps track of which window is active. A window being
// destroyed calls SetWindowInactive if it was active, after Destroyed
// starts reporting true.
type WindowManager interface {
	SetActiveWindow(w *Window) error
	SetWindowInactive(w *Window)
}

// Cursors is the cursor subsystem. Windows forward their cursor
// requests to it unchanged.
type Cursors interface {
	HasCursorShape(shape CursorShape) bool
	SetCursorShape(shape CursorShape) error
	SetCustomCursorShape(bitmap, mask []byte, size, hot image.Point, canInvertColor bool) error
	SetCursorVisibility(visible bool) error
	SetCursorGrab(mode GrabMode, s Surface) error
}

// System bundles the collaborators that windows need. Display,
// Decorator, NativeWindows, Events, and WindowManager are required.
// Cursors and GL may be nil, in which case cursor operations fail and
// OpenGL contexts can't be created.
type System struct {
	Display       Display
	Decorator     Decorator
	NativeWindows NativeWindowFactory
	Events        EventQueue
	WindowManager WindowManager
	Cursors       Cursors
	GL            GLDriver

	// Now returns the time stamped onto events. It defaults to
	// time.Now.
	Now func() time.Time

	frames *bridge
}

func (sys *System) now() time.Time {
	if sys.Now == nil {
		return time.Now()
	}
	return sys.Now()
}

func (sys *System) bridge() *bridge {
	if sys.frames == nil {
		sys.frames = newBridge()
	}
	return sys.frames
}
