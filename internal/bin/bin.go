// Package bin contains utilities for dealing with binary
// representations. Wayland encodes every 32-bit word in the host's
// native byte order, so these helpers reinterpret memory directly
// rather than going through encoding/binary.
package bin

import (
	"io"
	"unsafe"
)

// Word is the set of types that occupy a single protocol word.
type Word interface {
	~int32 | ~uint32
}

// Bytes returns the native byte representation of v.
func Bytes[T Word](v T) [4]byte {
	return *(*[4]byte)(unsafe.Pointer(&v))
}

// Value reinterprets data as a T.
func Value[T Word](data [4]byte) T {
	return *(*T)(unsafe.Pointer(&data))
}

func Read[T Word](r io.Reader) (T, error) {
	var data [4]byte
	_, err := io.ReadFull(r, data[:])
	if err != nil {
		return 0, err
	}

	return Value[T](data), nil
}

func Write[T Word](w io.Writer, v T) error {
	data := Bytes(v)
	n, err := w.Write(data[:])
	if (err == nil) && (n < len(data)) {
		return io.ErrShortWrite
	}
	return err
}
