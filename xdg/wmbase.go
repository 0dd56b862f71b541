package xdg

import (
	wl "deedles.dev/wlwin/client"
	"deedles.dev/wlwin/wire"
)

// WmBase is the xdg_wm_base global. It answers pings from the
// compositor automatically.
type WmBase struct {
	wl.Proxy
}

func BindWmBase(display *wl.Display, name, version uint32) *WmBase {
	base := WmBase{}
	base.Init(display)

	registry := display.GetRegistry()
	registry.Bind(name, wmBaseInterface, min(version, wmBaseVersion), &base)

	return &base
}

// GetXdgSurface assigns the xdg_surface role to s.
func (base *WmBase) GetXdgSurface(s *wl.Surface) *Surface {
	xs := Surface{}
	xs.Init(base.Display())
	base.Display().AddObject(&xs)
	base.Display().Enqueue(wire.NewRequest(base, 2, "get_xdg_surface", &xs, s))
	return &xs
}

func (base *WmBase) Pong(serial uint32) {
	base.Display().Enqueue(wire.NewRequest(base, 3, "pong", serial))
}

func (base *WmBase) Destroy() {
	base.Display().Enqueue(wire.NewRequest(base, 0, "destroy"))
	base.Display().DeleteObject(base.ID())
}

func (base *WmBase) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		serial := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		base.Pong(serial)
		return nil
	}
	return unknownEvent(wmBaseInterface, msg.Op())
}

func (base *WmBase) MethodName(op uint16) string {
	if op == 0 {
		return "ping"
	}
	return "unknown"
}

func (base *WmBase) String() string {
	return objectString(wmBaseInterface, base.ID())
}
