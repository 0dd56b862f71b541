package window

import "errors"

var (
	// ErrUnsupportedState is returned when a window is asked to enter
	// a state that this backend can't represent.
	ErrUnsupportedState = errors.New("unsupported window state")

	// ErrDestroyed is returned by operations on a window whose native
	// resources have already been released.
	ErrDestroyed = errors.New("window destroyed")

	// ErrNoDrawingContext is returned when a drawing context could not
	// be created or when an operation needs one and there is none.
	ErrNoDrawingContext = errors.New("no drawing context")

	// ErrNoDriver is returned by OpenGL context initialization when the
	// system has no driver that can create one.
	ErrNoDriver = errors.New("no OpenGL driver")
)
