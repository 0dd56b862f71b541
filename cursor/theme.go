package cursor

import (
	"fmt"
	"image"
	"os"
	"strconv"

	"deedles.dev/wlwin/shm/shmimage"
	"deedles.dev/ximage/xcursor"
)

// DefaultSize is the nominal cursor size used when XCURSOR_SIZE is
// not set.
const DefaultSize = 24

// Image is a single cursor image.
type Image struct {
	Image *shmimage.ARGB8888
	Hot   image.Point
}

// Source provides cursor images by name.
type Source interface {
	Lookup(name string) (Image, bool)
}

// Theme is a Source backed by an xcursor theme.
type Theme struct {
	theme *xcursor.Theme
	size  int
}

// LoadTheme loads the named xcursor theme. An empty name loads the
// default theme. Images closest to size are preferred.
func LoadTheme(name string, size int) (*Theme, error) {
	theme, err := xcursor.LoadTheme(name)
	if err != nil {
		return nil, fmt.Errorf("load cursor theme %q: %w", name, err)
	}
	return &Theme{theme: theme, size: size}, nil
}

// LoadEnvTheme loads the theme named by XCURSOR_THEME at the size in
// XCURSOR_SIZE.
func LoadEnvTheme() (*Theme, error) {
	size := DefaultSize
	if v, ok := os.LookupEnv("XCURSOR_SIZE"); ok {
		s, err := strconv.Atoi(v)
		if (err == nil) && (s > 0) {
			size = s
		}
	}
	return LoadTheme(os.Getenv("XCURSOR_THEME"), size)
}

func (t *Theme) Lookup(name string) (Image, bool) {
	c, ok := t.theme.Cursors[name]
	if !ok {
		return Image{}, false
	}

	images := c.Images[c.BestSize(t.size)]
	if len(images) == 0 {
		return Image{}, false
	}
	img := images[0]

	return Image{
		Image: &shmimage.ARGB8888{
			Pix:    img.Image.Pix,
			Stride: img.Image.Stride(),
			Rect:   img.Image.Rect,
		},
		Hot: img.Hot,
	}, true
}

// lookup returns the first image found for any of names.
func lookup(src Source, names []string) (Image, bool) {
	for _, name := range names {
		img, ok := src.Lookup(name)
		if ok {
			return img, true
		}
	}
	return Image{}, false
}
