package cursor

import (
	"errors"
	"fmt"
	"image"

	"deedles.dev/wlwin/internal/debug"
	"deedles.dev/wlwin/window"
)

// ErrUnknownShape is returned when the theme has no image for a
// shape.
var ErrUnknownShape = errors.New("unknown cursor shape")

// Presenter puts cursor images on the screen.
type Presenter interface {
	Show(img Image) error
	Hide() error
}

// Manager is the cursor state shared by an application's windows. It
// implements window.Cursors.
type Manager struct {
	src Source
	out Presenter

	shape       window.CursorShape
	custom      *Image
	visible     bool
	grab        window.GrabMode
	grabSurface window.Surface
}

// New returns a Manager that shows images from src using out. The
// cursor starts out visible with the default shape, but nothing is
// shown until the first change.
func New(src Source, out Presenter) *Manager {
	return &Manager{
		src:     src,
		out:     out,
		visible: true,
	}
}

func (m *Manager) image(shape window.CursorShape) (Image, error) {
	if shape == window.CursorCustom {
		if m.custom == nil {
			return Image{}, fmt.Errorf("%w: no custom cursor", ErrUnknownShape)
		}
		return *m.custom, nil
	}

	img, ok := lookup(m.src, Names(shape))
	if !ok {
		return Image{}, fmt.Errorf("%w: %v", ErrUnknownShape, shape)
	}
	return img, nil
}

func (m *Manager) hidden() bool {
	return !m.visible || (m.grab == window.GrabHide)
}

func (m *Manager) refresh() error {
	if m.hidden() {
		return m.out.Hide()
	}

	img, err := m.image(m.shape)
	if err != nil {
		return err
	}
	return m.out.Show(img)
}

func (m *Manager) HasCursorShape(shape window.CursorShape) bool {
	_, err := m.image(shape)
	return err == nil
}

// SetCursorShape changes the cursor shape. The shape is left alone if
// the theme doesn't have it.
func (m *Manager) SetCursorShape(shape window.CursorShape) error {
	if _, err := m.image(shape); err != nil {
		return err
	}
	m.shape = shape
	return m.refresh()
}

// SetCustomCursorShape installs a cursor decoded by DecodeBitmap and
// switches to it. Inverted colors are never used, so canInvertColor
// has no effect.
func (m *Manager) SetCustomCursorShape(bitmap, mask []byte, size, hot image.Point, canInvertColor bool) error {
	img, err := DecodeBitmap(bitmap, mask, size)
	if err != nil {
		return err
	}

	m.custom = &Image{Image: img, Hot: hot}
	m.shape = window.CursorCustom
	return m.refresh()
}

func (m *Manager) SetCursorVisibility(visible bool) error {
	if visible == m.visible {
		return nil
	}
	m.visible = visible
	return m.refresh()
}

// SetCursorGrab changes how the pointer behaves over s. Wayland
// clients can't move the pointer, so GrabWrap is not supported.
func (m *Manager) SetCursorGrab(mode window.GrabMode, s window.Surface) error {
	if mode == window.GrabWrap {
		return fmt.Errorf("grab mode wrap: %w", errors.ErrUnsupported)
	}

	wasHidden := m.hidden()
	m.grab = mode
	m.grabSurface = s
	if mode == window.GrabDisable {
		m.grabSurface = nil
	}
	debug.Printf("cursor: grab mode %v", mode)

	if m.hidden() == wasHidden {
		return nil
	}
	return m.refresh()
}

func (m *Manager) Shape() window.CursorShape {
	return m.shape
}

func (m *Manager) Visible() bool {
	return !m.hidden()
}

func (m *Manager) Grab() (window.GrabMode, window.Surface) {
	return m.grab, m.grabSurface
}
