package wl

import "deedles.dev/wlwin/wire"

type Compositor struct {
	Proxy
	version uint32
}

func IsCompositor(i Interface) bool {
	return i.Is(compositorInterface, 1)
}

func BindCompositor(display *Display, name, version uint32) *Compositor {
	compositor := Compositor{version: boundVersion(version, compositorVersion)}
	compositor.Init(display)

	registry := display.GetRegistry()
	registry.Bind(name, compositorInterface, compositor.version, &compositor)

	return &compositor
}

func (c *Compositor) CreateSurface() *Surface {
	s := Surface{}
	s.Init(c.display)
	c.display.AddObject(&s)
	c.display.Enqueue(wire.NewRequest(c, 0, "create_surface", &s))

	return &s
}

func (c *Compositor) CreateRegion() *Region {
	r := Region{}
	r.Init(c.display)
	c.display.AddObject(&r)
	c.display.Enqueue(wire.NewRequest(c, 1, "create_region", &r))

	return &r
}

func (c *Compositor) Dispatch(msg *wire.MessageBuffer) error {
	return unknownEvent(compositorInterface, msg.Op())
}

func (c *Compositor) MethodName(op uint16) string {
	return "unknown"
}

func (c *Compositor) String() string {
	return objectString(compositorInterface, c.id)
}
