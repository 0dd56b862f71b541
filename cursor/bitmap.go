package cursor

import (
	"errors"
	"image"

	"deedles.dev/wlwin/shm/shmimage"
)

var (
	black       = shmimage.NewARGB8888Color(0, 0, 0, 0xFF)
	white       = shmimage.NewARGB8888Color(0xFF, 0xFF, 0xFF, 0xFF)
	transparent = shmimage.ARGB8888Color(0)
)

// DecodeBitmap converts a one-bit-per-pixel cursor into an image. Each
// row of bitmap and mask is padded to a whole number of bytes, and the
// first pixel of each byte is its least significant bit. Pixels that
// are set in mask are white if they are set in bitmap and black if
// they aren't. Pixels outside of mask are white if they are set in
// bitmap and transparent otherwise.
func DecodeBitmap(bitmap, mask []byte, size image.Point) (*shmimage.ARGB8888, error) {
	if (size.X <= 0) || (size.Y <= 0) {
		return nil, errors.New("invalid cursor size")
	}

	rowLen := (size.X + 7) / 8
	if (len(bitmap) < rowLen*size.Y) || (len(mask) < rowLen*size.Y) {
		return nil, errors.New("cursor bitmap too short")
	}

	img := shmimage.NewARGB8888(image.Rectangle{Max: size})
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			i := y*rowLen + x/8
			bit := byte(1) << (x % 8)
			set := bitmap[i]&bit != 0

			c := transparent
			switch {
			case set:
				c = white
			case mask[i]&bit != 0:
				c = black
			}
			img.Set(x, y, c)
		}
	}

	return img, nil
}
