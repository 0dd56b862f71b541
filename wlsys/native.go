package wlsys

import (
	"fmt"
	"image"

	wl "deedles.dev/wlwin/client"
	"deedles.dev/wlwin/window"
)

type nativeFactory Conn

func (f *nativeFactory) NewNativeWindow(s window.Surface, width, height int32) (window.NativeWindow, error) {
	ws, err := unwrapSurface(s)
	if err != nil {
		return nil, err
	}

	return &NativeWindow{
		surface: ws.s,
		shm:     f.shm,
		width:   max(width, 1),
		height:  max(height, 1),
	}, nil
}

// NativeWindow is a shared-memory drawing target for a surface. Like
// an EGL window, a resize only takes effect when the next frame is
// presented.
type NativeWindow struct {
	surface *wl.Surface
	shm     *wl.Shm
	buffer  *wl.ImageBuffer

	width, height int32
}

func (n *NativeWindow) Resize(width, height int32) {
	n.width = max(width, 1)
	n.height = max(height, 1)
}

// Size returns the size that the next frame will be presented at.
func (n *NativeWindow) Size() image.Point {
	return image.Pt(int(n.width), int(n.height))
}

func (n *NativeWindow) Destroy() {
	if n.buffer != nil {
		n.buffer.Destroy()
		n.buffer = nil
	}
}

// ensureBuffer creates the buffer, or resizes it to the current size.
// resized is true if the buffer's previous contents were lost.
func (n *NativeWindow) ensureBuffer() (buf *wl.ImageBuffer, resized bool, err error) {
	if n.buffer == nil {
		buf, err := wl.NewImageBuffer(n.shm, n.width, n.height)
		if err != nil {
			return nil, false, fmt.Errorf("create buffer: %w", err)
		}
		n.buffer = buf
		return buf, true, nil
	}

	if n.buffer.Bounds().Size() == n.Size() {
		return n.buffer, false, nil
	}

	err = n.buffer.Resize(n.width, n.height)
	if err != nil {
		return nil, false, fmt.Errorf("resize buffer: %w", err)
	}
	return n.buffer, true, nil
}

func (n *NativeWindow) present() {
	n.surface.Attach(n.buffer.Buffer(), 0, 0)
	n.surface.Damage(0, 0, n.width, n.height)
	n.surface.Commit()
}
