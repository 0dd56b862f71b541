package wl

import "deedles.dev/wlwin/wire"

type Region struct {
	Proxy
}

func (r *Region) Add(x, y, width, height int32) {
	r.display.Enqueue(wire.NewRequest(r, 1, "add", x, y, width, height))
}

func (r *Region) Subtract(x, y, width, height int32) {
	r.display.Enqueue(wire.NewRequest(r, 2, "subtract", x, y, width, height))
}

func (r *Region) Destroy() {
	r.display.Enqueue(wire.NewRequest(r, 0, "destroy"))
	r.display.DeleteObject(r.id)
}

func (r *Region) Dispatch(msg *wire.MessageBuffer) error {
	return unknownEvent(regionInterface, msg.Op())
}

func (r *Region) MethodName(op uint16) string {
	return "unknown"
}

func (r *Region) String() string {
	return objectString(regionInterface, r.id)
}
