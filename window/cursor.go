package window

import (
	"errors"
	"fmt"
	"image"
)

// CursorShape is one of the standard cursor shapes.
type CursorShape int

const (
	CursorDefault CursorShape = iota
	CursorRightArrow
	CursorLeftArrow
	CursorInfo
	CursorDestroy
	CursorHelp
	CursorWait
	CursorText
	CursorCrosshair
	CursorUpDown
	CursorLeftRight
	CursorTopSide
	CursorBottomSide
	CursorLeftSide
	CursorRightSide
	CursorTopLeftCorner
	CursorTopRightCorner
	CursorBottomRightCorner
	CursorBottomLeftCorner
	CursorMove
	CursorStop
	CursorCopy
	CursorCustom
)

var cursorShapeNames = [...]string{
	"default", "right_arrow", "left_arrow", "info", "destroy", "help",
	"wait", "text", "crosshair", "up_down", "left_right", "top_side",
	"bottom_side", "left_side", "right_side", "top_left_corner",
	"top_right_corner", "bottom_right_corner", "bottom_left_corner",
	"move", "stop", "copy", "custom",
}

func (s CursorShape) String() string {
	if (s < 0) || (int(s) >= len(cursorShapeNames)) {
		return fmt.Sprintf("CursorShape(%d)", int(s))
	}
	return cursorShapeNames[s]
}

// ParseCursorShape is the inverse of CursorShape.String.
func ParseCursorShape(str string) (CursorShape, error) {
	for i, name := range cursorShapeNames {
		if name == str {
			return CursorShape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown cursor shape %q", str)
}

// GrabMode controls how the pointer behaves while grabbed.
type GrabMode int

const (
	GrabDisable GrabMode = iota
	GrabNormal
	GrabWrap
	GrabHide
)

func (m GrabMode) String() string {
	switch m {
	case GrabDisable:
		return "disable"
	case GrabNormal:
		return "normal"
	case GrabWrap:
		return "wrap"
	case GrabHide:
		return "hide"
	}
	return fmt.Sprintf("GrabMode(%d)", int(m))
}

func (w *Window) cursors() (Cursors, error) {
	if err := w.alive(); err != nil {
		return nil, err
	}
	if w.sys.Cursors == nil {
		return nil, fmt.Errorf("cursors: %w", errors.ErrUnsupported)
	}
	return w.sys.Cursors, nil
}

func (w *Window) HasCursorShape(shape CursorShape) bool {
	c, err := w.cursors()
	if err != nil {
		return false
	}
	return c.HasCursorShape(shape)
}

// SetCursorShape changes the cursor shown over the window. If the
// cursor subsystem can't show shape, the window's recorded shape
// reverts to CursorDefault.
func (w *Window) SetCursorShape(shape CursorShape) error {
	c, err := w.cursors()
	if err != nil {
		return err
	}

	err = c.SetCursorShape(shape)
	if err != nil {
		w.cursorShape = CursorDefault
		return err
	}
	w.cursorShape = shape
	return nil
}

// CursorShape returns the shape most recently set with SetCursorShape.
func (w *Window) CursorShape() CursorShape {
	return w.cursorShape
}

func (w *Window) SetCustomCursorShape(bitmap, mask []byte, size, hot image.Point, canInvertColor bool) error {
	c, err := w.cursors()
	if err != nil {
		return err
	}
	return c.SetCustomCursorShape(bitmap, mask, size, hot, canInvertColor)
}

func (w *Window) SetCursorVisibility(visible bool) error {
	c, err := w.cursors()
	if err != nil {
		return err
	}
	return c.SetCursorVisibility(visible)
}

func (w *Window) SetCursorGrab(mode GrabMode) error {
	c, err := w.cursors()
	if err != nil {
		return err
	}
	return c.SetCursorGrab(mode, w.surface)
}
