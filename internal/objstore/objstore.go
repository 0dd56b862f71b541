// Package objstore tracks the protocol objects known to one side of a
// connection, keyed by object ID.
package objstore

import "deedles.dev/wlwin/wire"

type Store struct {
	objects map[uint32]wire.Object
	nextID  uint32
}

// New returns a store that allocates IDs starting at start. Clients
// start at 1, servers at 0xFF000000.
func New(start uint32) *Store {
	return &Store{
		objects: make(map[uint32]wire.Object),
		nextID:  start,
	}
}

// Add registers obj, allocating an ID for it if it doesn't already
// have one.
func (s *Store) Add(obj wire.Object) {
	id := obj.ID()
	if id == 0 {
		id = s.nextID
		obj.SetID(id)
		s.nextID++
	}

	s.objects[id] = obj
}

func (s *Store) Get(id uint32) wire.Object {
	return s.objects[id]
}

func (s *Store) Delete(id uint32) {
	obj := s.objects[id]
	delete(s.objects, id)
	if obj != nil {
		obj.Delete()
	}
}

// Len returns the number of live objects.
func (s *Store) Len() int {
	return len(s.objects)
}

// Dispatch routes msg to the object that it was sent by.
func (s *Store) Dispatch(msg *wire.MessageBuffer) error {
	obj := s.objects[msg.Sender()]
	if obj == nil {
		return wire.UnknownSenderIDError{Msg: msg}
	}

	return obj.Dispatch(msg)
}
