package wlsys

import (
	"fmt"

	wl "deedles.dev/wlwin/client"
	"deedles.dev/wlwin/decor"
	"deedles.dev/wlwin/window"
)

type surface struct {
	s          *wl.Surface
	compositor *wl.Compositor
}

func (s *surface) SetOpaqueRegion(x, y, width, height int32) {
	r := s.compositor.CreateRegion()
	r.Add(x, y, width, height)
	s.s.SetOpaqueRegion(r)
	r.Destroy()
}

func (s *surface) Destroy() {
	s.s.Destroy()
}

func unwrapSurface(s window.Surface) (*surface, error) {
	ws, ok := s.(*surface)
	if !ok {
		return nil, fmt.Errorf("surface of type %T does not belong to this connection", s)
	}
	return ws, nil
}

type displayAdapter Conn

func (d *displayAdapter) CreateSurface() (window.Surface, error) {
	return &surface{
		s:          d.compositor.CreateSurface(),
		compositor: d.compositor,
	}, nil
}

func (d *displayAdapter) RoundTrip() error {
	return d.Display.RoundTrip()
}

func (d *displayAdapter) NativeHandle() any {
	return d.Display
}

type decorator struct {
	d *decor.Decorator
}

func (d *decorator) Decorate(s window.Surface, h window.FrameHandler, data uintptr) (window.Frame, error) {
	ws, err := unwrapSurface(s)
	if err != nil {
		return nil, err
	}

	fb := frameBridge{h: h}
	f, err := d.d.Decorate(ws.s, &fb, data)
	if err != nil {
		return nil, err
	}
	fb.frame = &frame{f: f}
	return fb.frame, nil
}

// frameBridge passes decor callbacks on to a window.FrameHandler.
type frameBridge struct {
	h     window.FrameHandler
	frame *frame
}

func (fb *frameBridge) Configure(f *decor.Frame, c *decor.Configuration, data uintptr) {
	fb.h.Configure(fb.frame, configuration{c: c}, data)
}

func (fb *frameBridge) Close(f *decor.Frame, data uintptr) {
	fb.h.Close(fb.frame, data)
}

func (fb *frameBridge) Commit(f *decor.Frame, data uintptr) {
	fb.h.Commit(fb.frame, data)
}

type frame struct {
	f *decor.Frame
}

func (f *frame) Map()               { f.f.Map() }
func (f *frame) SetTitle(t string)  { f.f.SetTitle(t) }
func (f *frame) SetAppID(id string) { f.f.SetAppID(id) }
func (f *frame) SetMaximized()      { f.f.SetMaximized() }
func (f *frame) UnsetMaximized()    { f.f.UnsetMaximized() }
func (f *frame) SetFullscreen()     { f.f.SetFullscreen() }
func (f *frame) UnsetFullscreen()   { f.f.UnsetFullscreen() }
func (f *frame) SetMinimized()      { f.f.SetMinimized() }
func (f *frame) Unref()             { f.f.Unref() }

func (f *frame) SetParent(parent window.Frame) {
	p, ok := parent.(*frame)
	if !ok || (p == nil) {
		f.f.SetParent(nil)
		return
	}
	f.f.SetParent(p.f)
}

func (f *frame) Commit(width, height int32, c window.Configuration) {
	dc, _ := c.(configuration)
	f.f.Commit(width, height, dc.c)
}

type configuration struct {
	c *decor.Configuration
}

func (c configuration) ContentSize() (int32, int32, bool) {
	return c.c.ContentSize()
}

func (c configuration) WindowState() (window.StateFlags, bool) {
	state, ok := c.c.WindowState()
	if !ok {
		return 0, false
	}
	return stateFlags(state), true
}

func stateFlags(state decor.WindowState) (flags window.StateFlags) {
	if state.Has(decor.WindowStateActive) {
		flags |= window.FlagActive
	}
	if state.Has(decor.WindowStateMaximized) {
		flags |= window.FlagMaximized
	}
	if state.Has(decor.WindowStateFullscreen) {
		flags |= window.FlagFullscreen
	}
	return flags
}
