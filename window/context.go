package window

import (
	"fmt"
)

// ContextType selects the kind of drawing context a window creates.
type ContextType int

const (
	ContextTypeNone ContextType = iota
	ContextTypeOpenGL
)

func (t ContextType) String() string {
	switch t {
	case ContextTypeNone:
		return "none"
	case ContextTypeOpenGL:
		return "opengl"
	}
	return fmt.Sprintf("ContextType(%d)", int(t))
}

// ParseContextType is the inverse of ContextType.String.
func ParseContextType(str string) (ContextType, error) {
	switch str {
	case "none":
		return ContextTypeNone, nil
	case "opengl":
		return ContextTypeOpenGL, nil
	}
	return 0, fmt.Errorf("unknown context type %q", str)
}

// Context is a drawing context bound to a window.
type Context interface {
	// Initialize prepares the context for use. A context whose
	// initialization fails is discarded.
	Initialize() error

	SwapBuffers() error
	Activate() error
	Release() error

	// Destroy releases everything that the context holds, including
	// any native handles belonging to the window.
	Destroy()
}

// NullContext is a Context that does nothing. It is used when drawing
// is disabled.
type NullContext struct {
	Stereo bool
}

func (*NullContext) Initialize() error  { return nil }
func (*NullContext) SwapBuffers() error { return nil }
func (*NullContext) Activate() error    { return nil }
func (*NullContext) Release() error     { return nil }
func (*NullContext) Destroy()           {}

// EGLAPI is the client API that an OpenGL-type context binds.
type EGLAPI int

const (
	APIOpenGL EGLAPI = iota
	APIOpenGLES
)

// EGLProfile is the OpenGL profile requested.
type EGLProfile int

const (
	ProfileCore EGLProfile = iota
	ProfileCompatibility
)

// EGLContextFlags are extra context creation flags.
type EGLContextFlags uint32

const (
	FlagDebug EGLContextFlags = 1 << iota
	FlagForwardCompatible
	FlagRobustAccess
)

// ResetStrategy is the reset notification strategy requested when
// robust access is enabled.
type ResetStrategy int

const (
	NoResetNotification ResetStrategy = iota
	LoseContextOnReset
)

// EGLConfig describes the OpenGL context that a window asks for.
type EGLConfig struct {
	API           EGLAPI
	Profile       EGLProfile
	Major, Minor  int
	Flags         EGLContextFlags
	ResetStrategy ResetStrategy
}

// DefaultEGLConfig requests an OpenGL 3.3 core profile context.
func DefaultEGLConfig() EGLConfig {
	return EGLConfig{
		API:     APIOpenGL,
		Profile: ProfileCore,
		Major:   3,
		Minor:   3,
	}
}

// GLRequest is everything a driver needs to create a context for a
// window.
type GLRequest struct {
	Native  NativeWindow
	Display any
	Config  EGLConfig
	Stereo  bool
}

// GLDriver creates OpenGL contexts.
type GLDriver interface {
	CreateContext(req GLRequest) (GLContext, error)
}

// GLContext is a driver-level OpenGL context.
type GLContext interface {
	MakeCurrent() error
	ReleaseCurrent() error
	SwapBuffers() error
	Destroy()
}

// eglContext adapts a GLDriver to Context.
type eglContext struct {
	driver GLDriver
	req    GLRequest
	gl     GLContext
}

func (c *eglContext) Initialize() error {
	if c.driver == nil {
		return ErrNoDriver
	}

	gl, err := c.driver.CreateContext(c.req)
	if err != nil {
		return err
	}
	c.gl = gl
	return c.gl.MakeCurrent()
}

func (c *eglContext) SwapBuffers() error {
	if c.gl == nil {
		return ErrNoDrawingContext
	}
	return c.gl.SwapBuffers()
}

func (c *eglContext) Activate() error {
	if c.gl == nil {
		return ErrNoDrawingContext
	}
	return c.gl.MakeCurrent()
}

func (c *eglContext) Release() error {
	if c.gl == nil {
		return ErrNoDrawingContext
	}
	return c.gl.ReleaseCurrent()
}

func (c *eglContext) Destroy() {
	if c.gl != nil {
		c.gl.Destroy()
		c.gl = nil
	}
}

// newDrawingContext creates and initializes a context of the given
// type. A context that fails to initialize is destroyed, never
// retried.
func (w *Window) newDrawingContext(t ContextType) (Context, error) {
	var ctx Context
	switch t {
	case ContextTypeNone:
		ctx = &NullContext{Stereo: w.stereo}
	case ContextTypeOpenGL:
		ctx = &eglContext{
			driver: w.sys.GL,
			req: GLRequest{
				Native:  w.native,
				Display: w.sys.Display.NativeHandle(),
				Config:  w.eglConfig,
				Stereo:  w.stereo,
			},
		}
	default:
		return nil, fmt.Errorf("unknown context type: %v", t)
	}

	err := ctx.Initialize()
	if err != nil {
		ctx.Destroy()
		return nil, fmt.Errorf("initialize %v context: %w", t, err)
	}
	return ctx, nil
}

// SetDrawingContextType replaces the window's drawing context with a
// new one of type t. If the new context can't be created, the window
// falls back to a NullContext and an error wrapping
// ErrNoDrawingContext is returned.
func (w *Window) SetDrawingContextType(t ContextType) error {
	if err := w.alive(); err != nil {
		return err
	}
	if (w.ctx != nil) && (t == w.ctxType) {
		return nil
	}

	if w.ctx != nil {
		w.ctx.Destroy()
		w.ctx = nil
	}

	ctx, err := w.newDrawingContext(t)
	if err != nil {
		w.ctx = &NullContext{Stereo: w.stereo}
		w.ctxType = ContextTypeNone
		return fmt.Errorf("%w: %w", ErrNoDrawingContext, err)
	}

	w.ctx = ctx
	w.ctxType = t
	return nil
}

// DrawingContextType returns the type of the current drawing context.
func (w *Window) DrawingContextType() ContextType {
	return w.ctxType
}

// SwapBuffers presents the current frame.
func (w *Window) SwapBuffers() error {
	if err := w.alive(); err != nil {
		return err
	}
	if w.ctx == nil {
		return ErrNoDrawingContext
	}
	return w.ctx.SwapBuffers()
}

func (w *Window) ActivateDrawingContext() error {
	if err := w.alive(); err != nil {
		return err
	}
	if w.ctx == nil {
		return ErrNoDrawingContext
	}
	return w.ctx.Activate()
}

func (w *Window) ReleaseDrawingContext() error {
	if err := w.alive(); err != nil {
		return err
	}
	if w.ctx == nil {
		return ErrNoDrawingContext
	}
	return w.ctx.Release()
}
