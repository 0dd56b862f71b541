package wl

import (
	"fmt"
	"image"
	"os"

	"deedles.dev/wlwin/shm"
	"deedles.dev/wlwin/shm/shmimage"
	"golang.org/x/sys/unix"
)

// ImageBuffer is a wl_buffer backed by a shared-memory pool that can
// be drawn into directly and resized in place.
type ImageBuffer struct {
	w, h int32
	shm  *Shm
	pool *ShmPool
	buf  *Buffer
	file *os.File
	mmap shm.Mmap
}

func NewImageBuffer(s *Shm, w, h int32) (buf *ImageBuffer, err error) {
	w, h = max(w, 1), max(h, 1)

	buf = &ImageBuffer{
		w:   w,
		h:   h,
		shm: s,
	}
	defer func() {
		if err != nil {
			buf.Destroy()
			buf = nil
		}
	}()

	file, err := shm.CreateSize(int64(buf.Len()))
	if err != nil {
		return buf, fmt.Errorf("create SHM file: %w", err)
	}
	buf.file = file

	mmap, err := shm.MapShared(file, int(buf.Len()), unix.PROT_READ|unix.PROT_WRITE)
	if err != nil {
		return buf, fmt.Errorf("mmap SHM file: %w", err)
	}
	buf.mmap = mmap

	buf.pool = buf.shm.CreatePool(file, int32(len(buf.mmap)))
	buf.buf = buf.pool.CreateBuffer(0, w, h, buf.Stride(), ShmFormatArgb8888)

	return buf, nil
}

func (s *ImageBuffer) Destroy() {
	if s.mmap != nil {
		s.mmap.Unmap()
		s.mmap = nil
	}
	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
	if s.buf != nil {
		s.buf.Destroy()
		s.buf = nil
	}
	if s.pool != nil {
		s.pool.Destroy()
		s.pool = nil
	}
}

func (s *ImageBuffer) Buffer() *Buffer {
	return s.buf
}

func (s *ImageBuffer) Stride() int32 {
	return s.w * 4
}

func (s *ImageBuffer) Len() int32 {
	return s.Stride() * s.h
}

func (s *ImageBuffer) Cap() int32 {
	return int32(cap(s.mmap))
}

func (s *ImageBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(s.w), int(s.h))
}

// Resize changes the dimensions of the buffer. Pixel contents are
// not preserved. The pool only ever grows.
func (s *ImageBuffer) Resize(w, h int32) error {
	w, h = max(w, 1), max(h, 1)
	if (w == s.w) && (h == s.h) {
		return nil
	}

	s.w = w
	s.h = h
	if s.Len() <= s.Cap() {
		s.mmap = s.mmap[:s.Len()]
		s.buf.Destroy()
		s.buf = s.pool.CreateBuffer(0, s.w, s.h, s.Stride(), ShmFormatArgb8888)
		return nil
	}

	err := s.file.Truncate(int64(s.Len()))
	if err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	err = s.mmap.Unmap()
	if err != nil {
		return fmt.Errorf("unmap: %w", err)
	}
	mmap, err := shm.MapShared(s.file, int(s.Len()), unix.PROT_READ|unix.PROT_WRITE)
	if err != nil {
		s.mmap = nil
		return fmt.Errorf("mmap: %w", err)
	}
	s.mmap = mmap

	s.buf.Destroy()
	s.pool.Resize(s.Len())
	s.buf = s.pool.CreateBuffer(0, s.w, s.h, s.Stride(), ShmFormatArgb8888)

	return nil
}

// Image returns an image that draws directly into the shared memory.
// It is invalidated by Resize.
func (s *ImageBuffer) Image() *shmimage.ARGB8888 {
	return &shmimage.ARGB8888{
		Pix:    s.mmap,
		Stride: int(s.Stride()),
		Rect:   s.Bounds(),
	}
}
