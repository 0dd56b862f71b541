// Package wire defines types helpful for dealing with the Wayland
// wire protocol. It is primarly intended for usage by the protocol
// object packages.
package wire

import (
	"errors"
	"io"
	"net"

	"golang.org/x/sys/unix"
)

// Object represents a Wayland protocol object.
type Object interface {
	// ID returns the object ID that the object was registered with.
	ID() uint32

	// SetID is called when the object is registered.
	SetID(id uint32)

	// Delete is called when the object's ID is released, either by a
	// wl_display.delete_id event or by the client.
	Delete()

	// Dispatch pertforms the operation requested by the message in the
	// buffer.
	Dispatch(msg *MessageBuffer) error

	// MethodName returns the name of the event with the given opcode.
	// It is used for debugging.
	MethodName(op uint16) string
}

// NewID is an untyped new_id argument, as used by wl_registry.bind.
type NewID struct {
	Interface string
	Version   uint32
	ID        uint32
}

func padding(length uint32) uint32 {
	return (4 - (length % 4)) % 4
}

// unixTee reads from c, but also reads out-of-band data
// simultaneously, writing it into oob.
type unixTee struct {
	c   *net.UnixConn
	oob io.Writer
}

func (t unixTee) Read(buf []byte) (int, error) {
	oob := make([]byte, unix.CmsgSpace(maxFDs*4))
	n, oobn, _, _, err := t.c.ReadMsgUnix(buf, oob)
	_, ooberr := t.oob.Write(oob[:oobn])
	return n, errors.Join(err, ooberr)
}

// maxFDs is the largest number of file descriptors libwayland will
// send alongside a single message.
const maxFDs = 28
