// Package wlsys connects the window package to a live Wayland
// connection.
package wlsys

import (
	"errors"
	"fmt"

	wl "deedles.dev/wlwin/client"
	"deedles.dev/wlwin/cursor"
	"deedles.dev/wlwin/decor"
	"deedles.dev/wlwin/event"
	"deedles.dev/wlwin/internal/debug"
	"deedles.dev/wlwin/window"
	"deedles.dev/wlwin/wm"
	"deedles.dev/wlwin/xdg"
)

// Config controls optional parts of the system.
type Config struct {
	// CursorTheme and CursorSize select the cursor theme. If
	// CursorTheme is empty, XCURSOR_THEME and XCURSOR_SIZE are used.
	CursorTheme string
	CursorSize  int

	// NoCursors disables the cursor subsystem.
	NoCursors bool

	// Software configures the drawing driver.
	Software SoftwareConfig
}

// Conn is a Wayland connection with the globals that windows need
// bound.
type Conn struct {
	Display *wl.Display
	System  *window.System
	Events  *event.Queue
	Windows *wm.Manager

	compositor *wl.Compositor
	shm        *wl.Shm
	base       *xdg.WmBase
	seat       *wl.Seat
	pointer    *wl.Pointer
	presenter  *cursor.PointerPresenter
	cursors    *cursor.Manager
}

// Dial connects to the compositor named by the environment and calls
// Open.
func Dial(config Config) (*Conn, error) {
	display, err := wl.DialDisplay()
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	c, err := Open(display, config)
	if err != nil {
		display.Close()
		return nil, err
	}
	return c, nil
}

// Open binds the globals advertised on display and builds a System
// from them.
func Open(display *wl.Display, config Config) (*Conn, error) {
	c := Conn{Display: display}

	registry := display.GetRegistry()
	registry.Global = func(name uint32, inter wl.Interface) {
		switch {
		case wl.IsCompositor(inter) && (c.compositor == nil):
			c.compositor = wl.BindCompositor(display, name, inter.Version)
		case wl.IsShm(inter) && (c.shm == nil):
			c.shm = wl.BindShm(display, name, inter.Version)
		case xdg.IsWmBase(inter) && (c.base == nil):
			c.base = xdg.BindWmBase(display, name, inter.Version)
		case wl.IsSeat(inter) && (c.seat == nil):
			c.seat = wl.BindSeat(display, name, inter.Version)
			c.seat.Capabilities = c.seatCapabilities
		}
	}

	err := display.RoundTrip()
	if err != nil {
		return nil, fmt.Errorf("get globals: %w", err)
	}

	var missing []error
	if c.compositor == nil {
		missing = append(missing, fmt.Errorf("%w: wl_compositor", decor.ErrMissingGlobal))
	}
	if c.shm == nil {
		missing = append(missing, fmt.Errorf("%w: wl_shm", decor.ErrMissingGlobal))
	}
	if c.base == nil {
		missing = append(missing, fmt.Errorf("%w: xdg_wm_base", decor.ErrMissingGlobal))
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}

	c.Events = event.New()
	c.Windows = wm.New()
	c.System = &window.System{
		Display:       (*displayAdapter)(&c),
		Decorator:     &decorator{d: decor.New(c.base)},
		NativeWindows: (*nativeFactory)(&c),
		Events:        c.Events,
		WindowManager: c.Windows,
		GL:            &SoftwareDriver{Config: config.Software},
	}

	if !config.NoCursors {
		c.initCursors(config)
	}

	// Pick up the seat's capabilities.
	err = display.RoundTrip()
	if err != nil {
		return nil, fmt.Errorf("get seat capabilities: %w", err)
	}

	return &c, nil
}

func (c *Conn) initCursors(config Config) {
	var theme *cursor.Theme
	var err error
	if config.CursorTheme != "" {
		theme, err = cursor.LoadTheme(config.CursorTheme, max(config.CursorSize, 1))
	} else {
		theme, err = cursor.LoadEnvTheme()
	}
	if err != nil {
		debug.Printf("wlsys: cursors disabled: %v", err)
		return
	}

	c.cursors = cursor.New(theme, &lazyPresenter{c: c})
	c.System.Cursors = c.cursors
}

func (c *Conn) seatCapabilities(caps wl.SeatCapability) {
	debug.Printf("wlsys: seat capabilities: %v", caps)

	has := caps&wl.SeatCapabilityPointer != 0
	switch {
	case has && (c.pointer == nil):
		c.pointer = c.seat.GetPointer()
		c.presenter = cursor.NewPointerPresenter(c.compositor, c.shm, c.pointer)

	case !has && (c.pointer != nil):
		c.presenter.Destroy()
		c.pointer.Release()
		c.pointer = nil
		c.presenter = nil
	}
}

// NewWindow creates a window and starts tracking it.
func (c *Conn) NewWindow(opts window.Options) (*window.Window, error) {
	w, err := window.New(c.System, opts)
	if err != nil {
		return nil, err
	}
	c.Windows.Add(w)
	return w, nil
}

// CloseWindow destroys w and stops tracking it.
func (c *Conn) CloseWindow(w *window.Window) {
	c.Windows.Remove(w)
	w.Destroy()
}

// Close destroys every window and closes the connection.
func (c *Conn) Close() error {
	c.Windows.DestroyAll()
	if c.presenter != nil {
		c.presenter.Destroy()
	}
	c.Events.Stop()
	return c.Display.Close()
}

// lazyPresenter forwards to the pointer presenter if the seat has a
// pointer and does nothing otherwise.
type lazyPresenter struct {
	c *Conn
}

func (p *lazyPresenter) Show(img cursor.Image) error {
	if p.c.presenter == nil {
		return nil
	}
	return p.c.presenter.Show(img)
}

func (p *lazyPresenter) Hide() error {
	if p.c.presenter == nil {
		return nil
	}
	return p.c.presenter.Hide()
}
