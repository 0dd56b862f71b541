package shmimage

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAt(t *testing.T) {
	img := NewARGB8888(image.Rect(0, 0, 4, 3))
	img.Set(1, 2, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF})

	assert.Equal(t, NewARGB8888Color(0x10, 0x20, 0x30, 0xFF), img.ARGB8888At(1, 2))
	assert.Equal(t, ARGB8888Color(0), img.ARGB8888At(0, 0))
	assert.Equal(t, ARGB8888Color(0), img.ARGB8888At(10, 10))
}

func TestModelTransparent(t *testing.T) {
	assert.Equal(t, ARGB8888Color(0), ARGB8888Model.Convert(color.Transparent))
}

func TestSubImage(t *testing.T) {
	img := NewARGB8888(image.Rect(0, 0, 4, 4))
	sub := img.SubImage(image.Rect(2, 2, 8, 8))
	assert.Equal(t, image.Rect(2, 2, 4, 4), sub.Bounds())

	sub.Set(3, 3, color.White)
	assert.Equal(t, NewARGB8888Color(0xFF, 0xFF, 0xFF, 0xFF), img.ARGB8888At(3, 3))
}
