package window

import (
	"fmt"
	"image"
	"math"

	"deedles.dev/wlwin/internal/debug"
)

// initialRoundTrips is the number of round trips made during New. It
// is enough for the decoration service to create the frame, receive
// the first configuration, and for the window to acknowledge it.
const initialRoundTrips = 3

// untitled is returned by Title for windows without a title.
const untitled = "untitled"

// Options configures a new window.
type Options struct {
	Title  string
	Width  uint32
	Height uint32
	State  State

	// Parent, if not nil, makes the new window a transient child of
	// Parent.
	Parent *Window

	ContextType ContextType
	EGL         EGLConfig
	Dialog      bool
	Stereo      bool
}

// DefaultOptions returns the options used for a plain 800x600 OpenGL
// window.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		State:       StateNormal,
		ContextType: ContextTypeOpenGL,
		EGL:         DefaultEGLConfig(),
	}
}

// Window is a top-level or dialog window.
type Window struct {
	sys    *System
	handle uintptr

	surface Surface
	native  NativeWindow
	frame   Frame

	ctx       Context
	ctxType   ContextType
	eglConfig EGLConfig
	stereo    bool

	width, height int32
	active        bool
	maximized     bool
	fullscreen    bool
	dialog        bool

	pending    Request
	configured bool
	destroyed  bool

	title       string
	cursorShape CursorShape
}

// New creates a window, maps it, and waits for the compositor to
// finish the initial configuration handshake. If the drawing context
// can't be created the window is still returned, but drawing will be
// unavailable.
func New(sys *System, opts Options) (*Window, error) {
	w := Window{
		sys:       sys,
		width:     clampSize(max(opts.Width, 1)),
		height:    clampSize(max(opts.Height, 1)),
		dialog:    opts.Dialog,
		stereo:    opts.Stereo,
		eglConfig: opts.EGL,
		ctxType:   ContextTypeNone,
	}
	if w.eglConfig == (EGLConfig{}) {
		w.eglConfig = DefaultEGLConfig()
	}

	surface, err := sys.Display.CreateSurface()
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	w.surface = surface

	native, err := sys.NativeWindows.NewNativeWindow(surface, w.width, w.height)
	if err != nil {
		surface.Destroy()
		return nil, fmt.Errorf("create native window: %w", err)
	}
	w.native = native

	w.handle = sys.bridge().register(&w)
	frame, err := sys.Decorator.Decorate(surface, sys.bridge(), w.handle)
	if err != nil {
		sys.bridge().unregister(w.handle)
		native.Destroy()
		surface.Destroy()
		return nil, fmt.Errorf("decorate: %w", err)
	}
	w.frame = frame
	w.frame.Map()

	if (opts.Parent != nil) && !opts.Parent.destroyed {
		w.frame.SetParent(opts.Parent.frame)
	}

	for i := 0; i < initialRoundTrips; i++ {
		err := sys.Display.RoundTrip()
		if err != nil {
			w.Destroy()
			return nil, fmt.Errorf("round trip %v: %w", i+1, err)
		}
	}
	if !w.configured {
		debug.Printf("window: no configuration received after %v round trips", initialRoundTrips)
	}

	w.setOpaque()
	w.SetTitle(opts.Title)

	err = w.SetDrawingContextType(opts.ContextType)
	if err != nil {
		debug.Printf("window: failed to create drawing context: %v", err)
	}

	if opts.State != StateNormal {
		err := w.SetState(opts.State)
		if err != nil {
			debug.Printf("window: initial state %v: %v", opts.State, err)
		}
	}

	return &w, nil
}

// Destroyed reports whether Destroy has been called.
func (w *Window) Destroyed() bool {
	return w.destroyed
}

func (w *Window) alive() error {
	if w.destroyed {
		return ErrDestroyed
	}
	return nil
}

// Destroy releases the window's drawing context, decoration frame,
// native window, and surface, in that order. An active window is
// first reported inactive to the window manager. Calling it more than
// once has no effect.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true

	w.sys.bridge().unregister(w.handle)

	if w.active {
		w.active = false
		w.sys.WindowManager.SetWindowInactive(w)
	}

	if w.ctx != nil {
		w.ctx.Destroy()
		w.ctx = nil
	}

	w.frame.Unref()
	w.native.Destroy()
	w.surface.Destroy()
}

// Close asks the application to close the window by pushing a close
// event. It doesn't destroy anything.
func (w *Window) Close() error {
	return w.pushEvent(EventWindowClose)
}

// configure applies a configuration from the decoration service and
// acknowledges it.
func (w *Window) configure(c Configuration) {
	width, height, ok := c.ContentSize()
	if !ok || (width <= 0) || (height <= 0) {
		width, height = w.width, w.height
	}

	w.native.Resize(width, height)
	w.width, w.height = width, height
	if err := w.notifySize(); err != nil {
		debug.Printf("window: notify size: %v", err)
	}

	flags, ok := c.WindowState()
	if !ok {
		debug.Printf("window: configuration without decodable state")
		flags = 0
	}
	w.maximized = flags.Maximized()
	w.fullscreen = flags.Fullscreen()
	w.pending = RequestNone
	w.configured = true

	if active := flags.Active(); active != w.active {
		w.active = active

		var err error
		if active {
			err = w.activate()
		} else {
			err = w.deactivate()
		}
		if err != nil {
			debug.Printf("window: activation: %v", err)
		}
	}

	w.frame.Commit(width, height, c)
}

func (w *Window) activate() error {
	err := w.sys.WindowManager.SetActiveWindow(w)
	if err != nil {
		return fmt.Errorf("set active window: %w", err)
	}
	return w.pushEvent(EventWindowActivate)
}

func (w *Window) deactivate() error {
	w.sys.WindowManager.SetWindowInactive(w)
	return w.pushEvent(EventWindowDeactivate)
}

// notifySize rebuilds everything that depends on the window size and
// tells the application about the new size.
func (w *Window) notifySize() error {
	w.setOpaque()
	return w.pushEvent(EventWindowSize)
}

func (w *Window) setOpaque() {
	w.surface.SetOpaqueRegion(0, 0, w.width, w.height)
}

// SetState asks the decoration service to move the window into state.
// The request is asynchronous: State keeps returning the old state
// until the compositor confirms the change. StateEmbedded is not
// supported.
func (w *Window) SetState(state State) error {
	if state == StateEmbedded {
		return fmt.Errorf("%w: %v", ErrUnsupportedState, state)
	}
	if err := w.alive(); err != nil {
		return err
	}

	switch state {
	case StateNormal:
		switch w.State() {
		case StateMaximized:
			w.frame.UnsetMaximized()
			w.pending |= RequestUnmaximize
		case StateFullScreen:
			w.frame.UnsetFullscreen()
			w.pending |= RequestUnfullscreen
		}

	case StateMaximized:
		w.frame.SetMaximized()
		w.pending |= RequestMaximize

	case StateMinimized:
		w.frame.SetMinimized()
		w.pending |= RequestMinimize

	case StateFullScreen:
		w.requestFullscreen(true)

	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedState, state)
	}

	return nil
}

// State returns the state most recently confirmed by the compositor.
func (w *Window) State() State {
	return ResolveState(w.maximized, w.fullscreen)
}

// Pending returns the state change requests that are waiting for
// confirmation.
func (w *Window) Pending() Request {
	return w.pending
}

// Configured reports whether the window has received at least one
// configuration.
func (w *Window) Configured() bool {
	return w.configured
}

// Active reports whether the compositor considers the window active.
func (w *Window) Active() bool {
	return w.active
}

func (w *Window) requestFullscreen(fullscreen bool) {
	if fullscreen {
		w.frame.SetFullscreen()
		w.pending |= RequestFullscreen
		return
	}
	w.frame.UnsetFullscreen()
	w.pending |= RequestUnfullscreen
}

// BeginFullScreen asks for the window to be made fullscreen. Unlike
// SetState, it sends the request whatever the current state is.
func (w *Window) BeginFullScreen() error {
	if err := w.alive(); err != nil {
		return err
	}
	w.requestFullscreen(true)
	return nil
}

// EndFullScreen asks for the window to leave fullscreen. It sends the
// request even if the window is not known to be fullscreen, and it
// does not unset maximization.
func (w *Window) EndFullScreen() error {
	if err := w.alive(); err != nil {
		return err
	}
	w.requestFullscreen(false)
	return nil
}

// ClientBounds returns the area of the window available for drawing.
func (w *Window) ClientBounds() image.Rectangle {
	return image.Rect(0, 0, int(w.width), int(w.height))
}

// WindowBounds is the same as ClientBounds, since the decorations are
// not part of the window as the application sees it.
func (w *Window) WindowBounds() image.Rectangle {
	return w.ClientBounds()
}

// SetClientSize resizes the native window immediately. The window's
// size as reported by ClientBounds only changes once the compositor
// sends a matching configuration. Sizes above math.MaxInt32 are
// clamped.
func (w *Window) SetClientSize(width, height uint32) error {
	if err := w.alive(); err != nil {
		return err
	}
	w.native.Resize(clampSize(width), clampSize(height))
	return nil
}

// clampSize converts a requested dimension to the protocol's signed
// size, saturating at math.MaxInt32.
func clampSize(v uint32) int32 {
	return int32(min(v, math.MaxInt32))
}

func (w *Window) SetClientWidth(width uint32) error {
	return w.SetClientSize(width, uint32(w.height))
}

func (w *Window) SetClientHeight(height uint32) error {
	return w.SetClientSize(uint32(w.width), height)
}

// ScreenToClient converts screen coordinates to client coordinates.
// Wayland doesn't expose global coordinates, so the two are the same.
func (w *Window) ScreenToClient(x, y int32) (int32, int32) {
	return x, y
}

func (w *Window) ClientToScreen(x, y int32) (int32, int32) {
	return x, y
}

// SetTitle sets both the title and the application ID of the window.
func (w *Window) SetTitle(title string) {
	if w.destroyed {
		return
	}

	w.frame.SetAppID(title)
	w.frame.SetTitle(title)
	w.title = title
}

func (w *Window) Title() string {
	if w.title == "" {
		return untitled
	}
	return w.title
}

func (w *Window) IsDialog() bool {
	return w.dialog
}

// Surface returns the window's surface.
func (w *Window) Surface() Surface {
	return w.surface
}

// Invalidate requests a redraw. Redraws are driven by the compositor,
// so this does nothing.
func (w *Window) Invalidate() error {
	return w.alive()
}

// SetOrder does nothing, as clients can't restack windows.
func (w *Window) SetOrder(order Order) error {
	return w.alive()
}

func (w *Window) String() string {
	return fmt.Sprintf("window %q (%vx%v, %v)", w.Title(), w.width, w.height, w.State())
}
