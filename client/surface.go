package wl

import "deedles.dev/wlwin/wire"

type Surface struct {
	Enter func(output uint32)
	Leave func(output uint32)

	Proxy
}

func (s *Surface) Attach(buf *Buffer, x, y int32) {
	s.display.Enqueue(wire.NewRequest(s, 1, "attach", buf, x, y))
}

func (s *Surface) Damage(x, y, width, height int32) {
	s.display.Enqueue(wire.NewRequest(s, 2, "damage", x, y, width, height))
}

// Frame requests a callback for when it is a good time to draw the
// next frame.
func (s *Surface) Frame(done func(uint32)) *Callback {
	callback := Callback{Done: done}
	callback.Init(s.display)
	s.display.AddObject(&callback)
	s.display.Enqueue(wire.NewRequest(s, 3, "frame", &callback))
	return &callback
}

// SetOpaqueRegion sets the region of the surface that is known to be
// opaque. A nil region clears it.
func (s *Surface) SetOpaqueRegion(r *Region) {
	s.display.Enqueue(wire.NewRequest(s, 4, "set_opaque_region", regionArg(r)))
}

func (s *Surface) SetInputRegion(r *Region) {
	s.display.Enqueue(wire.NewRequest(s, 5, "set_input_region", regionArg(r)))
}

func (s *Surface) Commit() {
	s.display.Enqueue(wire.NewRequest(s, 6, "commit"))
}

func (s *Surface) Destroy() {
	s.display.Enqueue(wire.NewRequest(s, 0, "destroy"))
	s.display.DeleteObject(s.id)
}

func (s *Surface) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0, 1:
		output := msg.ReadObject()
		if err := msg.Err(); err != nil {
			return err
		}
		f := s.Enter
		if msg.Op() == 1 {
			f = s.Leave
		}
		if f != nil {
			f(output)
		}
		return nil
	}
	return unknownEvent(surfaceInterface, msg.Op())
}

func (s *Surface) MethodName(op uint16) string {
	switch op {
	case 0:
		return "enter"
	case 1:
		return "leave"
	}
	return "unknown"
}

func (s *Surface) String() string {
	return objectString(surfaceInterface, s.id)
}

func regionArg(r *Region) any {
	if r == nil {
		return nil
	}
	return r
}
