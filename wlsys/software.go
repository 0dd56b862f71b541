package wlsys

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"deedles.dev/wlwin/shm/shmimage"
	"deedles.dev/wlwin/window"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
)

// SoftwareConfig configures the software drawing driver.
type SoftwareConfig struct {
	// Background fills new areas of the window. It defaults to
	// colornames.Black.
	Background color.Color

	// Draw, if not nil, is called with the window's pixels before every
	// frame is presented.
	Draw func(img draw.Image)
}

// SoftwareDriver is a window.GLDriver that draws into shared memory
// instead of using the GPU. It accepts every EGL configuration, since
// it has nothing to configure.
type SoftwareDriver struct {
	Config SoftwareConfig
}

func (d *SoftwareDriver) CreateContext(req window.GLRequest) (window.GLContext, error) {
	native, ok := req.Native.(*NativeWindow)
	if !ok {
		return nil, fmt.Errorf("native window of type %T is not supported", req.Native)
	}
	if req.Stereo {
		return nil, errors.New("stereo visuals are not supported")
	}

	bg := d.Config.Background
	if bg == nil {
		bg = colornames.Black
	}

	return &softwareContext{
		native: native,
		bg:     image.NewUniform(bg),
		draw:   d.Config.Draw,
	}, nil
}

type softwareContext struct {
	native  *NativeWindow
	bg      *image.Uniform
	draw    func(draw.Image)
	current bool
}

func (c *softwareContext) MakeCurrent() error {
	c.current = true
	return nil
}

func (c *softwareContext) ReleaseCurrent() error {
	c.current = false
	return nil
}

// SwapBuffers presents the current frame. If the window was resized
// since the last frame, the old frame is scaled to the new size first.
func (c *softwareContext) SwapBuffers() error {
	var old *shmimage.ARGB8888
	if buf := c.native.buffer; (buf != nil) && (buf.Bounds().Size() != c.native.Size()) {
		old = snapshot(buf.Image())
	}

	buf, resized, err := c.native.ensureBuffer()
	if err != nil {
		return err
	}

	img := buf.Image()
	if resized {
		draw.Draw(img, img.Bounds(), c.bg, image.Point{}, draw.Src)
		if old != nil {
			draw.ApproxBiLinear.Scale(img, img.Bounds(), old, old.Bounds(), draw.Src, nil)
		}
	}
	if c.draw != nil {
		c.draw(img)
	}

	c.native.present()
	return nil
}

func (c *softwareContext) Destroy() {
	c.current = false
}

// snapshot copies img so that it survives the buffer being remapped.
func snapshot(img *shmimage.ARGB8888) *shmimage.ARGB8888 {
	cp := shmimage.NewARGB8888(img.Rect)
	copy(cp.Pix, img.Pix)
	return cp
}
