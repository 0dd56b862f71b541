package wl

import (
	"deedles.dev/wlwin/wire"
	"golang.org/x/exp/maps"
)

type Registry struct {
	Global       func(name uint32, inter Interface)
	GlobalRemove func(name uint32)

	Proxy
	globals map[uint32]Interface
}

// Globals returns a snapshot of the globals that have been announced
// so far.
func (registry *Registry) Globals() map[uint32]Interface {
	return maps.Clone(registry.globals)
}

// Bind binds the global with the given name to obj, registering obj
// with the display first.
func (registry *Registry) Bind(name uint32, inter string, version uint32, obj wire.Object) {
	registry.display.AddObject(obj)
	registry.display.Enqueue(wire.NewRequest(registry, 0, "bind", name, wire.NewID{
		Interface: inter,
		Version:   version,
		ID:        obj.ID(),
	}))
}

func (registry *Registry) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		name := msg.ReadUint()
		inter := msg.ReadString()
		version := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		i := Interface{Name: inter, Version: version}
		registry.globals[name] = i
		if registry.Global != nil {
			registry.Global(name, i)
		}
		return nil

	case 1:
		name := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		delete(registry.globals, name)
		if registry.GlobalRemove != nil {
			registry.GlobalRemove(name)
		}
		return nil
	}
	return unknownEvent(registryInterface, msg.Op())
}

func (registry *Registry) MethodName(op uint16) string {
	switch op {
	case 0:
		return "global"
	case 1:
		return "global_remove"
	}
	return "unknown"
}

func (registry *Registry) String() string {
	return objectString(registryInterface, registry.id)
}

// boundVersion returns the version to bind a global at given the
// version that the compositor advertised and the highest version
// that this package supports.
func boundVersion(advertised, supported uint32) uint32 {
	return min(advertised, supported)
}
