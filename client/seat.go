package wl

import (
	"fmt"
	"strings"

	"deedles.dev/wlwin/wire"
)

// SeatCapability is a bitmask of the input devices that a seat has.
type SeatCapability uint32

const (
	SeatCapabilityPointer SeatCapability = 1 << iota
	SeatCapabilityKeyboard
	SeatCapabilityTouch
)

func (c SeatCapability) String() string {
	var names []string
	for i, name := range []string{"pointer", "keyboard", "touch"} {
		if c&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("SeatCapability(%#x)", uint32(c))
	}
	return strings.Join(names, "|")
}

type Seat struct {
	Capabilities func(SeatCapability)
	Name         func(string)

	Proxy
	version uint32
}

func IsSeat(i Interface) bool {
	return i.Is(seatInterface, 1)
}

func BindSeat(display *Display, name, version uint32) *Seat {
	seat := Seat{version: boundVersion(version, seatVersion)}
	seat.Init(display)

	registry := display.GetRegistry()
	registry.Bind(name, seatInterface, seat.version, &seat)

	return &seat
}

func (seat *Seat) GetPointer() *Pointer {
	p := Pointer{version: seat.version}
	p.Init(seat.display)
	seat.display.AddObject(&p)
	seat.display.Enqueue(wire.NewRequest(seat, 0, "get_pointer", &p))
	return &p
}

func (seat *Seat) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		caps := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		if seat.Capabilities != nil {
			seat.Capabilities(SeatCapability(caps))
		}
		return nil

	case 1:
		name := msg.ReadString()
		if err := msg.Err(); err != nil {
			return err
		}
		if seat.Name != nil {
			seat.Name(name)
		}
		return nil
	}
	return unknownEvent(seatInterface, msg.Op())
}

func (seat *Seat) MethodName(op uint16) string {
	switch op {
	case 0:
		return "capabilities"
	case 1:
		return "name"
	}
	return "unknown"
}

func (seat *Seat) String() string {
	return objectString(seatInterface, seat.id)
}
