// Package decor provides client-side window decorations on top of
// xdg-shell.
//
// A Decorator turns a plain surface into a Frame. The Frame tracks
// the configuration sequence sent by the compositor and reports each
// completed sequence to a FrameInterface as a Configuration, which the
// application applies and then hands back to Frame.Commit to be
// acknowledged.
package decor

import (
	"errors"
	"fmt"

	wl "deedles.dev/wlwin/client"
	"deedles.dev/wlwin/internal/debug"
	"deedles.dev/wlwin/xdg"
)

// ErrMissingGlobal is returned when the compositor doesn't provide a
// global that decorations need.
var ErrMissingGlobal = errors.New("missing global")

// FrameInterface receives notifications about a frame. data is the
// value that was passed to Decorate.
type FrameInterface interface {
	// Configure is called when the compositor finishes sending a new
	// configuration. The application must eventually pass c to
	// Frame.Commit.
	Configure(f *Frame, c *Configuration, data uintptr)

	// Close is called when the user asks for the window to be closed.
	Close(f *Frame, data uintptr)

	// Commit is called when the frame needs the application to commit
	// the surface.
	Commit(f *Frame, data uintptr)
}

// Decorator creates frames.
type Decorator struct {
	base *xdg.WmBase
}

// New returns a Decorator that uses base to create frames. base may
// be nil, in which case every call to Decorate fails.
func New(base *xdg.WmBase) *Decorator {
	return &Decorator{base: base}
}

// Decorate creates a frame for s. The frame is not shown until Map is
// called.
func (d *Decorator) Decorate(s *wl.Surface, iface FrameInterface, data uintptr) (*Frame, error) {
	if d.base == nil {
		return nil, fmt.Errorf("decorate: %w: xdg_wm_base", ErrMissingGlobal)
	}
	if iface == nil {
		return nil, errors.New("decorate: nil frame interface")
	}

	f := Frame{
		surface: s,
		iface:   iface,
		data:    data,
		refs:    1,
	}
	f.xs = d.base.GetXdgSurface(s)
	f.xs.Configure = f.surfaceConfigure
	f.top = f.xs.GetToplevel()
	f.top.Configure = f.toplevelConfigure
	f.top.Close = f.close

	debug.Printf("decor: decorated %v as %v", s, f.top)
	return &f, nil
}
