package wl

import (
	"deedles.dev/wlwin/pointer"
	"deedles.dev/wlwin/wire"
)

type Pointer struct {
	// Enter is called when the pointer enters a surface. serial must
	// be passed to SetCursor.
	Enter  func(serial, surface uint32, x, y wire.Fixed)
	Leave  func(serial, surface uint32)
	Motion func(time uint32, x, y wire.Fixed)
	Button func(serial, time uint32, button pointer.Button, state pointer.ButtonState)
	Axis   func(time uint32, axis pointer.Axis, value wire.Fixed)

	Proxy
	version uint32
}

// SetCursor sets the cursor image shown while the pointer is over one
// of the client's surfaces. A nil surface hides the cursor.
func (p *Pointer) SetCursor(serial uint32, surface *Surface, hotX, hotY int32) {
	var arg any
	if surface != nil {
		arg = surface
	}
	p.display.Enqueue(wire.NewRequest(p, 0, "set_cursor", serial, arg, hotX, hotY))
}

// Release destroys the pointer. It needs a version 3 seat.
func (p *Pointer) Release() {
	if p.version < 3 {
		return
	}
	p.display.Enqueue(wire.NewRequest(p, 1, "release"))
	p.display.DeleteObject(p.id)
}

func (p *Pointer) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		serial := msg.ReadUint()
		surface := msg.ReadObject()
		x := msg.ReadFixed()
		y := msg.ReadFixed()
		if err := msg.Err(); err != nil {
			return err
		}
		if p.Enter != nil {
			p.Enter(serial, surface, x, y)
		}
		return nil

	case 1:
		serial := msg.ReadUint()
		surface := msg.ReadObject()
		if err := msg.Err(); err != nil {
			return err
		}
		if p.Leave != nil {
			p.Leave(serial, surface)
		}
		return nil

	case 2:
		time := msg.ReadUint()
		x := msg.ReadFixed()
		y := msg.ReadFixed()
		if err := msg.Err(); err != nil {
			return err
		}
		if p.Motion != nil {
			p.Motion(time, x, y)
		}
		return nil

	case 3:
		serial := msg.ReadUint()
		time := msg.ReadUint()
		button := msg.ReadUint()
		state := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		if p.Button != nil {
			p.Button(serial, time, pointer.Button(button), pointer.ButtonState(state))
		}
		return nil

	case 4:
		time := msg.ReadUint()
		axis := msg.ReadUint()
		value := msg.ReadFixed()
		if err := msg.Err(); err != nil {
			return err
		}
		if p.Axis != nil {
			p.Axis(time, pointer.Axis(axis), value)
		}
		return nil
	}
	return unknownEvent(pointerInterface, msg.Op())
}

func (p *Pointer) MethodName(op uint16) string {
	switch op {
	case 0:
		return "enter"
	case 1:
		return "leave"
	case 2:
		return "motion"
	case 3:
		return "button"
	case 4:
		return "axis"
	}
	return "unknown"
}

func (p *Pointer) String() string {
	return objectString(pointerInterface, p.id)
}
