package xdg

import (
	wl "deedles.dev/wlwin/client"
	"deedles.dev/wlwin/wire"
)

// Surface is an xdg_surface. Configure is called at the end of every
// configuration sequence and must eventually be answered with
// AckConfigure.
type Surface struct {
	Configure func(serial uint32)

	wl.Proxy
}

func (s *Surface) GetToplevel() *Toplevel {
	t := Toplevel{}
	t.Init(s.Display())
	s.Display().AddObject(&t)
	s.Display().Enqueue(wire.NewRequest(s, 1, "get_toplevel", &t))
	return &t
}

func (s *Surface) SetWindowGeometry(x, y, width, height int32) {
	s.Display().Enqueue(wire.NewRequest(s, 3, "set_window_geometry", x, y, width, height))
}

func (s *Surface) AckConfigure(serial uint32) {
	s.Display().Enqueue(wire.NewRequest(s, 4, "ack_configure", serial))
}

func (s *Surface) Destroy() {
	s.Display().Enqueue(wire.NewRequest(s, 0, "destroy"))
	s.Display().DeleteObject(s.ID())
}

func (s *Surface) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		serial := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		if s.Configure != nil {
			s.Configure(serial)
		}
		return nil
	}
	return unknownEvent(surfaceInterface, msg.Op())
}

func (s *Surface) MethodName(op uint16) string {
	if op == 0 {
		return "configure"
	}
	return "unknown"
}

func (s *Surface) String() string {
	return objectString(surfaceInterface, s.ID())
}
