package wl

import (
	"fmt"

	"deedles.dev/wlwin/wire"
)

// Interface names and the highest version of each that this package
// implements.
const (
	displayInterface    = "wl_display"
	registryInterface   = "wl_registry"
	callbackInterface   = "wl_callback"
	compositorInterface = "wl_compositor"
	compositorVersion   = 4
	surfaceInterface    = "wl_surface"
	regionInterface     = "wl_region"
	shmInterface        = "wl_shm"
	shmVersion          = 1
	shmPoolInterface    = "wl_shm_pool"
	bufferInterface     = "wl_buffer"
	seatInterface       = "wl_seat"
	seatVersion         = 3
	pointerInterface    = "wl_pointer"
)

// Interface describes a global advertised by the compositor.
type Interface struct {
	Name    string
	Version uint32
}

// Is reports whether i is the named interface at a version that is
// at least version.
func (i Interface) Is(name string, version uint32) bool {
	return (i.Name == name) && (i.Version >= version)
}

// ShmFormat is a pixel format supported by wl_shm.
type ShmFormat uint32

const (
	ShmFormatArgb8888 ShmFormat = 0
	ShmFormatXrgb8888 ShmFormat = 1
)

func (f ShmFormat) String() string {
	switch f {
	case ShmFormatArgb8888:
		return "argb8888"
	case ShmFormatXrgb8888:
		return "xrgb8888"
	}
	return fmt.Sprintf("ShmFormat(%#x)", uint32(f))
}

// Proxy is the common state of every client-side protocol object. It
// is exported so that packages implementing protocol extensions can
// embed it.
type Proxy struct {
	id      uint32
	display *Display
}

func (p *Proxy) ID() uint32 {
	return p.id
}

func (p *Proxy) SetID(id uint32) {
	p.id = id
}

// Delete is called when the object's ID is released. Proxies hold
// nothing else that needs to be cleaned up.
func (p *Proxy) Delete() {}

// Display returns the display that the object belongs to.
func (p *Proxy) Display() *Display {
	return p.display
}

// Init associates the proxy with display. It must be called before
// the containing object is added to the display.
func (p *Proxy) Init(display *Display) {
	p.display = display
}

func unknownEvent(inter string, op uint16) error {
	return wire.UnknownOpError{Interface: inter, Type: "event", Op: op}
}

func objectString(inter string, id uint32) string {
	return fmt.Sprintf("%v@%v", inter, id)
}
