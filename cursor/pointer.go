package cursor

import (
	wl "deedles.dev/wlwin/client"
	"deedles.dev/wlwin/wire"
	"golang.org/x/image/draw"
)

// PointerPresenter shows cursor images on a wl_pointer using a
// dedicated cursor surface.
type PointerPresenter struct {
	compositor *wl.Compositor
	shm        *wl.Shm
	pointer    *wl.Pointer

	surface *wl.Surface
	buffer  *wl.ImageBuffer
	current *Image

	serial  uint32
	entered bool
	hidden  bool
}

// NewPointerPresenter returns a presenter for p. It takes over p's
// Enter and Leave handlers, calling any that were already set.
func NewPointerPresenter(c *wl.Compositor, s *wl.Shm, p *wl.Pointer) *PointerPresenter {
	pp := PointerPresenter{
		compositor: c,
		shm:        s,
		pointer:    p,
	}

	enter, leave := p.Enter, p.Leave
	p.Enter = func(serial, surface uint32, x, y wire.Fixed) {
		pp.serial = serial
		pp.entered = true
		pp.apply()
		if enter != nil {
			enter(serial, surface, x, y)
		}
	}
	p.Leave = func(serial, surface uint32) {
		pp.entered = false
		if leave != nil {
			leave(serial, surface)
		}
	}

	return &pp
}

func (pp *PointerPresenter) Show(img Image) error {
	if pp.surface == nil {
		pp.surface = pp.compositor.CreateSurface()
	}

	size := img.Image.Bounds().Size()
	if pp.buffer == nil {
		buf, err := wl.NewImageBuffer(pp.shm, int32(size.X), int32(size.Y))
		if err != nil {
			return err
		}
		pp.buffer = buf
	} else {
		err := pp.buffer.Resize(int32(size.X), int32(size.Y))
		if err != nil {
			return err
		}
	}

	dst := pp.buffer.Image()
	draw.Draw(dst, dst.Bounds(), img.Image, img.Image.Bounds().Min, draw.Src)

	pp.surface.Attach(pp.buffer.Buffer(), 0, 0)
	pp.surface.Damage(0, 0, int32(size.X), int32(size.Y))
	pp.surface.Commit()

	pp.current = &img
	pp.hidden = false
	pp.apply()
	return nil
}

func (pp *PointerPresenter) Hide() error {
	pp.hidden = true
	pp.apply()
	return nil
}

func (pp *PointerPresenter) apply() {
	if !pp.entered {
		return
	}

	if pp.hidden || (pp.current == nil) {
		pp.pointer.SetCursor(pp.serial, nil, 0, 0)
		return
	}
	pp.pointer.SetCursor(pp.serial, pp.surface, int32(pp.current.Hot.X), int32(pp.current.Hot.Y))
}

func (pp *PointerPresenter) Destroy() {
	if pp.buffer != nil {
		pp.buffer.Destroy()
		pp.buffer = nil
	}
	if pp.surface != nil {
		pp.surface.Destroy()
		pp.surface = nil
	}
}
