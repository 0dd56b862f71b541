package window

import (
	"errors"
	"fmt"
	"image"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() {
	r.calls = nil
}

type fakeSurface struct {
	rec *recorder
}

func (s *fakeSurface) SetOpaqueRegion(x, y, w, h int32) {
	s.rec.add("surface.opaque(%v,%v,%v,%v)", x, y, w, h)
}

func (s *fakeSurface) Destroy() { s.rec.add("surface.destroy") }

type fakeDisplay struct {
	rec        *recorder
	roundTrips int
	onTrip     func(n int) error
	createErr  error
}

func (d *fakeDisplay) CreateSurface() (Surface, error) {
	if d.createErr != nil {
		return nil, d.createErr
	}
	return &fakeSurface{rec: d.rec}, nil
}

func (d *fakeDisplay) RoundTrip() error {
	d.roundTrips++
	d.rec.add("display.round_trip")
	if d.onTrip != nil {
		return d.onTrip(d.roundTrips)
	}
	return nil
}

func (d *fakeDisplay) NativeHandle() any { return "display" }

type fakeNative struct {
	rec *recorder
}

func (n *fakeNative) Resize(w, h int32) { n.rec.add("native.resize(%v,%v)", w, h) }
func (n *fakeNative) Destroy()          { n.rec.add("native.destroy") }

type fakeNativeFactory struct {
	rec *recorder
}

func (f *fakeNativeFactory) NewNativeWindow(s Surface, w, h int32) (NativeWindow, error) {
	f.rec.add("native.new(%v,%v)", w, h)
	return &fakeNative{rec: f.rec}, nil
}

type fakeFrame struct {
	rec    *recorder
	parent Frame
}

func (f *fakeFrame) Map()               { f.rec.add("frame.map") }
func (f *fakeFrame) SetParent(p Frame)  { f.parent = p; f.rec.add("frame.set_parent") }
func (f *fakeFrame) SetTitle(t string)  { f.rec.add("frame.set_title(%v)", t) }
func (f *fakeFrame) SetAppID(id string) { f.rec.add("frame.set_app_id(%v)", id) }
func (f *fakeFrame) SetMaximized()      { f.rec.add("frame.set_maximized") }
func (f *fakeFrame) UnsetMaximized()    { f.rec.add("frame.unset_maximized") }
func (f *fakeFrame) SetFullscreen()     { f.rec.add("frame.set_fullscreen") }
func (f *fakeFrame) UnsetFullscreen()   { f.rec.add("frame.unset_fullscreen") }
func (f *fakeFrame) SetMinimized()      { f.rec.add("frame.set_minimized") }
func (f *fakeFrame) Unref()             { f.rec.add("frame.unref") }
func (f *fakeFrame) Commit(w, h int32, c Configuration) {
	f.rec.add("frame.commit(%v,%v)", w, h)
}

type fakeDecorator struct {
	rec     *recorder
	handler FrameHandler
	data    uintptr
	frame   *fakeFrame
	err     error
}

func (d *fakeDecorator) Decorate(s Surface, handler FrameHandler, data uintptr) (Frame, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.handler = handler
	d.data = data
	d.frame = &fakeFrame{rec: d.rec}
	return d.frame, nil
}

func (d *fakeDecorator) configure(c Configuration) {
	d.handler.Configure(d.frame, c, d.data)
}

type fakeConfig struct {
	width, height int32
	sizeOK        bool
	flags         StateFlags
	flagsOK       bool
}

func sized(w, h int32, flags StateFlags) fakeConfig {
	return fakeConfig{width: w, height: h, sizeOK: true, flags: flags, flagsOK: true}
}

func (c fakeConfig) ContentSize() (int32, int32, bool) { return c.width, c.height, c.sizeOK }
func (c fakeConfig) WindowState() (StateFlags, bool)   { return c.flags, c.flagsOK }

type fakeEvents struct {
	rec    *recorder
	events []Event
	err    error
}

func (q *fakeEvents) Push(ev Event) error {
	if q.err != nil {
		return q.err
	}
	q.rec.add("event(%v)", ev.Kind)
	q.events = append(q.events, ev)
	return nil
}

func (q *fakeEvents) kinds() []EventKind {
	kinds := make([]EventKind, 0, len(q.events))
	for _, ev := range q.events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

type fakeWM struct {
	rec *recorder
}

func (m *fakeWM) SetActiveWindow(w *Window) error {
	m.rec.add("wm.set_active")
	return nil
}

func (m *fakeWM) SetWindowInactive(w *Window) { m.rec.add("wm.set_inactive") }

type fakeGL struct {
	rec   *recorder
	swaps int
	err   error
	req   GLRequest
}

func (g *fakeGL) CreateContext(req GLRequest) (GLContext, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.req = req
	return &fakeGLContext{gl: g}, nil
}

type fakeGLContext struct {
	gl *fakeGL
}

func (c *fakeGLContext) MakeCurrent() error    { return nil }
func (c *fakeGLContext) ReleaseCurrent() error { return nil }
func (c *fakeGLContext) SwapBuffers() error    { c.gl.swaps++; return nil }
func (c *fakeGLContext) Destroy()              { c.gl.rec.add("gl.destroy") }

type fixture struct {
	rec     recorder
	display *fakeDisplay
	deco    *fakeDecorator
	events  *fakeEvents
	gl      *fakeGL
	sys     *System
}

func newFixture() *fixture {
	f := new(fixture)
	f.display = &fakeDisplay{rec: &f.rec}
	f.deco = &fakeDecorator{rec: &f.rec}
	f.events = &fakeEvents{rec: &f.rec}
	f.gl = &fakeGL{rec: &f.rec}
	f.sys = &System{
		Display:       f.display,
		Decorator:     f.deco,
		NativeWindows: &fakeNativeFactory{rec: &f.rec},
		Events:        f.events,
		WindowManager: &fakeWM{rec: &f.rec},
		GL:            f.gl,
		Now:           func() time.Time { return time.Unix(100, 0) },
	}

	// Deliver an initial configuration on the second round trip, the
	// way a decoration service does after the frame is mapped.
	f.display.onTrip = func(n int) error {
		if n == 2 {
			f.deco.configure(sized(800, 600, FlagActive))
		}
		return nil
	}
	return f
}

func (f *fixture) open(t *testing.T, opts Options) *Window {
	t.Helper()

	w, err := New(f.sys, opts)
	require.NoError(t, err)
	f.rec.reset()
	f.events.events = nil
	return w
}

func TestNewHandshake(t *testing.T) {
	f := newFixture()
	w, err := New(f.sys, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, f.display.roundTrips)
	assert.True(t, w.Configured())
	assert.True(t, w.Active())
	assert.Equal(t, StateNormal, w.State())
	assert.Equal(t, ContextTypeOpenGL, w.DrawingContextType())
	assert.Equal(t, "display", f.gl.req.Display)
	assert.Equal(t, DefaultEGLConfig(), f.gl.req.Config)
	assert.Contains(t, f.rec.calls, "frame.map")
}

func TestNewWithoutConfiguration(t *testing.T) {
	f := newFixture()
	f.display.onTrip = nil

	w, err := New(f.sys, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, f.display.roundTrips)
	assert.False(t, w.Configured())
	assert.Equal(t, image.Rect(0, 0, 800, 600), w.ClientBounds())
}

func TestNewRoundTripFailure(t *testing.T) {
	f := newFixture()
	f.display.onTrip = func(n int) error {
		if n == 2 {
			return errors.New("broken pipe")
		}
		return nil
	}

	w, err := New(f.sys, DefaultOptions())
	require.Error(t, err)
	assert.Nil(t, w)
	assert.Equal(t, 2, f.display.roundTrips)
	assert.Equal(t, []string{"frame.unref", "native.destroy", "surface.destroy"}, f.rec.calls[len(f.rec.calls)-3:])
	assert.Empty(t, f.sys.bridge().windows)
}

func TestNewDecorateFailure(t *testing.T) {
	f := newFixture()
	f.deco.err = errors.New("no decorations")

	_, err := New(f.sys, DefaultOptions())
	require.Error(t, err)
	assert.Equal(t, 0, f.display.roundTrips)
	assert.Equal(t, []string{"native.new(800,600)", "native.destroy", "surface.destroy"}, f.rec.calls)
	assert.Empty(t, f.sys.bridge().windows)
}

func TestNewInitialState(t *testing.T) {
	f := newFixture()
	opts := DefaultOptions()
	opts.State = StateMaximized

	w, err := New(f.sys, opts)
	require.NoError(t, err)
	assert.Equal(t, "frame.set_maximized", f.rec.calls[len(f.rec.calls)-1])
	assert.Equal(t, StateNormal, w.State())
	assert.True(t, w.Pending().Has(RequestMaximize))
}

func TestNewParent(t *testing.T) {
	f := newFixture()
	parent := f.open(t, DefaultOptions())

	opts := DefaultOptions()
	opts.Parent = parent
	opts.Dialog = true
	child, err := New(f.sys, opts)
	require.NoError(t, err)
	assert.Same(t, parent.frame, f.deco.frame.parent)
	assert.True(t, child.IsDialog())
	assert.False(t, parent.IsDialog())

	setParent := slices.Index(f.rec.calls, "frame.set_parent")
	require.NotEqual(t, -1, setParent)
	assert.Less(t, setParent, slices.Index(f.rec.calls, "display.round_trip"))
}

func TestNewRoundTripFailureWhileActive(t *testing.T) {
	f := newFixture()
	f.display.onTrip = func(n int) error {
		switch n {
		case 1:
			f.deco.configure(sized(800, 600, FlagActive))
		case 3:
			return errors.New("broken pipe")
		}
		return nil
	}

	w, err := New(f.sys, DefaultOptions())
	require.Error(t, err)
	assert.Nil(t, w)
	assert.Equal(t, []string{
		"wm.set_inactive",
		"frame.unref",
		"native.destroy",
		"surface.destroy",
	}, f.rec.calls[len(f.rec.calls)-4:])
}

func TestConfigureSize(t *testing.T) {
	f := newFixture()
	w := f.open(t, DefaultOptions())

	f.deco.configure(sized(1024, 768, FlagActive))
	assert.Equal(t, image.Rect(0, 0, 1024, 768), w.ClientBounds())
	assert.Equal(t, w.ClientBounds(), w.WindowBounds())
	assert.Equal(t, []string{
		"native.resize(1024,768)",
		"surface.opaque(0,0,1024,768)",
		"event(WindowSize)",
		"frame.commit(1024,768)",
	}, f.rec.calls)
}

func TestConfigureKeepsLastSize(t *testing.T) {
	tests := []struct {
		name string
		c    fakeConfig
	}{
		{"Unset", fakeConfig{flagsOK: true, flags: FlagActive}},
		{"Zero", sized(0, 0, FlagActive)},
		{"Negative", sized(-5, 300, FlagActive)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture()
			w := f.open(t, DefaultOptions())

			f.deco.configure(test.c)
			assert.Equal(t, image.Rect(0, 0, 800, 600), w.ClientBounds())
			assert.Contains(t, f.rec.calls, "native.resize(800,600)")
			assert.Contains(t, f.rec.calls, "frame.commit(800,600)")
		})
	}
}

func TestConfigureSameSizeNotifies(t *testing.T) {
	f := newFixture()
	f.open(t, DefaultOptions())

	f.deco.configure(sized(800, 600, FlagActive))
	assert.Equal(t, []EventKind{EventWindowSize}, f.events.kinds())
}

func TestConfigureState(t *testing.T) {
	tests := []struct {
		flags StateFlags
		state State
	}{
		{0, StateNormal},
		{FlagMaximized, StateMaximized},
		{FlagFullscreen, StateFullScreen},
		{FlagMaximized | FlagFullscreen, StateFullScreen},
	}

	for _, test := range tests {
		t.Run(test.state.String(), func(t *testing.T) {
			f := newFixture()
			w := f.open(t, DefaultOptions())

			f.deco.configure(sized(800, 600, test.flags|FlagActive))
			assert.Equal(t, test.state, w.State())
		})
	}
}

func TestConfigureUndecodableState(t *testing.T) {
	f := newFixture()
	w := f.open(t, DefaultOptions())
	f.deco.configure(sized(800, 600, FlagMaximized|FlagActive))
	require.Equal(t, StateMaximized, w.State())

	f.deco.configure(fakeConfig{width: 800, height: 600, sizeOK: true, flags: FlagMaximized})
	assert.Equal(t, StateNormal, w.State())
	assert.False(t, w.Active())
}

func TestConfigurePushFailure(t *testing.T) {
	f := newFixture()
	f.display.onTrip = nil
	w := f.open(t, DefaultOptions())
	require.False(t, w.Active())

	f.events.err = errors.New("queue stopped")
	f.deco.configure(sized(1024, 768, FlagMaximized|FlagActive))
	assert.Equal(t, []string{
		"native.resize(1024,768)",
		"surface.opaque(0,0,1024,768)",
		"wm.set_active",
		"frame.commit(1024,768)",
	}, f.rec.calls)
	assert.Equal(t, StateMaximized, w.State())
	assert.True(t, w.Active())
	assert.Equal(t, image.Rect(0, 0, 1024, 768), w.ClientBounds())
	assert.Empty(t, f.events.events)
}

func TestActivation(t *testing.T) {
	f := newFixture()
	f.display.onTrip = nil
	w := f.open(t, DefaultOptions())

	f.deco.configure(sized(800, 600, FlagActive))
	f.deco.configure(sized(800, 600, FlagActive))
	assert.Equal(t, []string{
		"native.resize(800,600)",
		"surface.opaque(0,0,800,600)",
		"event(WindowSize)",
		"wm.set_active",
		"event(WindowActivate)",
		"frame.commit(800,600)",
		"native.resize(800,600)",
		"surface.opaque(0,0,800,600)",
		"event(WindowSize)",
		"frame.commit(800,600)",
	}, f.rec.calls)
	assert.True(t, w.Active())

	f.rec.reset()
	f.deco.configure(sized(800, 600, 0))
	assert.Equal(t, []string{
		"native.resize(800,600)",
		"surface.opaque(0,0,800,600)",
		"event(WindowSize)",
		"wm.set_inactive",
		"event(WindowDeactivate)",
		"frame.commit(800,600)",
	}, f.rec.calls)
	assert.False(t, w.Active())
}

func TestSetStateNormal(t *testing.T) {
	tests := []struct {
		name    string
		flags   StateFlags
		calls   []string
		pending Request
	}{
		{"FromNormal", 0, nil, RequestNone},
		{"FromMaximized", FlagMaximized, []string{"frame.unset_maximized"}, RequestUnmaximize},
		{"FromFullscreen", FlagFullscreen, []string{"frame.unset_fullscreen"}, RequestUnfullscreen},
		{"FromBoth", FlagMaximized | FlagFullscreen, []string{"frame.unset_fullscreen"}, RequestUnfullscreen},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture()
			w := f.open(t, DefaultOptions())
			f.deco.configure(sized(800, 600, test.flags|FlagActive))
			before := w.State()
			f.rec.reset()

			require.NoError(t, w.SetState(StateNormal))
			assert.Equal(t, test.calls, f.rec.calls)
			assert.Equal(t, test.pending, w.Pending())
			assert.Equal(t, before, w.State())
		})
	}
}

func TestSetStateRequests(t *testing.T) {
	tests := []struct {
		state   State
		call    string
		pending Request
	}{
		{StateMaximized, "frame.set_maximized", RequestMaximize},
		{StateMinimized, "frame.set_minimized", RequestMinimize},
		{StateFullScreen, "frame.set_fullscreen", RequestFullscreen},
	}

	for _, test := range tests {
		t.Run(test.state.String(), func(t *testing.T) {
			f := newFixture()
			w := f.open(t, DefaultOptions())

			require.NoError(t, w.SetState(test.state))
			assert.Equal(t, []string{test.call}, f.rec.calls)
			assert.Equal(t, test.pending, w.Pending())
			assert.Equal(t, StateNormal, w.State())

			f.deco.configure(sized(800, 600, FlagActive))
			assert.Equal(t, RequestNone, w.Pending())
		})
	}
}

func TestSetStateEmbedded(t *testing.T) {
	f := newFixture()
	w := f.open(t, DefaultOptions())

	err := w.SetState(StateEmbedded)
	assert.ErrorIs(t, err, ErrUnsupportedState)
	assert.Empty(t, f.rec.calls)
	assert.Equal(t, RequestNone, w.Pending())
	assert.Equal(t, StateNormal, w.State())
}

func TestFullScreen(t *testing.T) {
	f := newFixture()
	w := f.open(t, DefaultOptions())

	require.NoError(t, w.EndFullScreen())
	require.NoError(t, w.BeginFullScreen())
	assert.Equal(t, []string{"frame.unset_fullscreen", "frame.set_fullscreen"}, f.rec.calls)
	assert.Equal(t, RequestFullscreen|RequestUnfullscreen, w.Pending())
}

func TestCloseEvent(t *testing.T) {
	f := newFixture()
	w := f.open(t, DefaultOptions())

	f.deco.handler.Close(f.deco.frame, f.deco.data)
	require.Len(t, f.events.events, 1)
	ev := f.events.events[0]
	assert.Equal(t, EventWindowClose, ev.Kind)
	assert.Same(t, w, ev.Window)
	assert.Equal(t, time.Unix(100, 0), ev.Time)
	assert.Empty(t, f.rec.calls[1:])

	f.events.err = errors.New("queue full")
	assert.Error(t, w.Close())
}

func TestCommitSwapsTwice(t *testing.T) {
	f := newFixture()
	f.open(t, DefaultOptions())
	f.gl.swaps = 0

	f.deco.handler.Commit(f.deco.frame, f.deco.data)
	assert.Equal(t, 2, f.gl.swaps)
}

func TestDestroy(t *testing.T) {
	f := newFixture()
	w := f.open(t, DefaultOptions())
	require.True(t, w.Active())

	w.Destroy()
	assert.Equal(t, []string{"wm.set_inactive", "gl.destroy", "frame.unref", "native.destroy", "surface.destroy"}, f.rec.calls)
	assert.False(t, w.Active())
	assert.True(t, w.Destroyed())

	f.rec.reset()
	w.Destroy()
	f.deco.configure(sized(10, 10, FlagActive))
	f.deco.handler.Close(f.deco.frame, f.deco.data)
	f.deco.handler.Commit(f.deco.frame, f.deco.data)
	assert.Empty(t, f.rec.calls)
	assert.Empty(t, f.events.events)

	assert.ErrorIs(t, w.SetState(StateMaximized), ErrDestroyed)
	assert.ErrorIs(t, w.SwapBuffers(), ErrDestroyed)
}

func TestDrawingContextFallback(t *testing.T) {
	f := newFixture()
	f.gl.err = errors.New("no EGL")

	w, err := New(f.sys, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, ContextTypeNone, w.DrawingContextType())
	assert.NoError(t, w.SwapBuffers())

	f.sys.GL = nil
	err = w.SetDrawingContextType(ContextTypeOpenGL)
	assert.ErrorIs(t, err, ErrNoDrawingContext)
	assert.ErrorIs(t, err, ErrNoDriver)
	assert.Equal(t, ContextTypeNone, w.DrawingContextType())
}

func TestSetDrawingContextType(t *testing.T) {
	f := newFixture()
	w := f.open(t, DefaultOptions())

	require.NoError(t, w.SetDrawingContextType(ContextTypeNone))
	assert.Equal(t, []string{"gl.destroy"}, f.rec.calls)
	assert.Equal(t, ContextTypeNone, w.DrawingContextType())
	assert.NoError(t, w.ActivateDrawingContext())
	assert.NoError(t, w.ReleaseDrawingContext())
}

func TestTitle(t *testing.T) {
	f := newFixture()
	w := f.open(t, DefaultOptions())
	assert.Equal(t, "untitled", w.Title())

	w.SetTitle("Editor")
	assert.Equal(t, []string{"frame.set_app_id(Editor)", "frame.set_title(Editor)"}, f.rec.calls)
	assert.Equal(t, "Editor", w.Title())
}

func TestClientSize(t *testing.T) {
	f := newFixture()
	w := f.open(t, DefaultOptions())

	require.NoError(t, w.SetClientSize(640, 480))
	require.NoError(t, w.SetClientWidth(1000))
	require.NoError(t, w.SetClientHeight(300))
	assert.Equal(t, []string{
		"native.resize(640,480)",
		"native.resize(1000,600)",
		"native.resize(800,300)",
	}, f.rec.calls)
	assert.Equal(t, image.Rect(0, 0, 800, 600), w.ClientBounds())

	f.rec.reset()
	require.NoError(t, w.SetClientSize(math.MaxUint32, 480))
	assert.Equal(t, []string{fmt.Sprintf("native.resize(%v,480)", math.MaxInt32)}, f.rec.calls)
}

func TestCoordinates(t *testing.T) {
	f := newFixture()
	w := f.open(t, DefaultOptions())

	x, y := w.ScreenToClient(12, -7)
	assert.Equal(t, int32(12), x)
	assert.Equal(t, int32(-7), y)
	x, y = w.ClientToScreen(3, 4)
	assert.Equal(t, int32(3), x)
	assert.Equal(t, int32(4), y)

	assert.NoError(t, w.Invalidate())
	assert.NoError(t, w.SetOrder(OrderTop))
}

func TestResolveState(t *testing.T) {
	assert.Equal(t, StateNormal, ResolveState(false, false))
	assert.Equal(t, StateMaximized, ResolveState(true, false))
	assert.Equal(t, StateFullScreen, ResolveState(false, true))
	assert.Equal(t, StateFullScreen, ResolveState(true, true))
}

func TestParseState(t *testing.T) {
	for s := StateNormal; s <= StateEmbedded; s++ {
		parsed, err := ParseState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	_, err := ParseState("sideways")
	assert.Error(t, err)
}

func TestRequestString(t *testing.T) {
	assert.Equal(t, "none", RequestNone.String())
	assert.Equal(t, "maximize|unfullscreen", (RequestMaximize | RequestUnfullscreen).String())
}

func TestRequestHas(t *testing.T) {
	r := RequestMaximize | RequestUnfullscreen
	assert.True(t, r.Has(RequestMaximize))
	assert.True(t, r.Has(RequestMaximize|RequestMinimize))
	assert.False(t, r.Has(RequestMinimize))
	assert.False(t, r.Has(RequestNone))
	assert.False(t, RequestNone.Has(RequestNone))
}

type fakeCursors struct {
	shapes  map[CursorShape]bool
	visible bool
	grab    GrabMode
	surface Surface
}

func (c *fakeCursors) HasCursorShape(shape CursorShape) bool { return c.shapes[shape] }

func (c *fakeCursors) SetCursorShape(shape CursorShape) error {
	if !c.shapes[shape] {
		return errors.New("no such shape")
	}
	return nil
}

func (c *fakeCursors) SetCustomCursorShape(bitmap, mask []byte, size, hot image.Point, canInvertColor bool) error {
	return nil
}

func (c *fakeCursors) SetCursorVisibility(visible bool) error {
	c.visible = visible
	return nil
}

func (c *fakeCursors) SetCursorGrab(mode GrabMode, s Surface) error {
	c.grab = mode
	c.surface = s
	return nil
}

func TestCursorDelegation(t *testing.T) {
	f := newFixture()
	w := f.open(t, DefaultOptions())

	assert.ErrorIs(t, w.SetCursorShape(CursorText), errors.ErrUnsupported)
	assert.False(t, w.HasCursorShape(CursorText))

	cursors := &fakeCursors{shapes: map[CursorShape]bool{CursorText: true}}
	f.sys.Cursors = cursors

	assert.True(t, w.HasCursorShape(CursorText))
	require.NoError(t, w.SetCursorShape(CursorText))
	assert.Equal(t, CursorText, w.CursorShape())

	assert.Error(t, w.SetCursorShape(CursorWait))
	assert.Equal(t, CursorDefault, w.CursorShape())

	require.NoError(t, w.SetCursorVisibility(false))
	assert.False(t, cursors.visible)

	require.NoError(t, w.SetCursorGrab(GrabNormal))
	assert.Equal(t, GrabNormal, cursors.grab)
	assert.Same(t, w.Surface(), cursors.surface)

	require.NoError(t, w.SetCustomCursorShape(nil, nil, image.Pt(1, 1), image.Point{}, false))

	w.Destroy()
	assert.ErrorIs(t, w.SetCursorVisibility(true), ErrDestroyed)
}

func TestCursorShapeString(t *testing.T) {
	assert.Equal(t, "text", CursorText.String())
	assert.Equal(t, "custom", CursorCustom.String())
	assert.Equal(t, "CursorShape(99)", CursorShape(99).String())
	assert.Equal(t, "hide", GrabHide.String())
}
