package wl

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"deedles.dev/wlwin/internal/cq"
	"deedles.dev/wlwin/internal/debug"
	"deedles.dev/wlwin/internal/objstore"
	"deedles.dev/wlwin/internal/set"
	"deedles.dev/wlwin/wire"
)

// Display is a client connection to a Wayland compositor. Messages
// from the compositor are read in the background but are only
// dispatched during calls to Flush and RoundTrip, so every event
// handler runs on the goroutine that calls those methods.
type Display struct {
	// Error, if not nil, is called when the compositor reports a
	// fatal protocol error.
	Error func(objectID, code uint32, msg string)

	Proxy
	done     chan struct{}
	close    sync.Once
	conn     *wire.Conn
	store    *objstore.Store
	registry *Registry
	queue    *cq.Queue[func() error]

	// zombies are IDs that the client has released but that the
	// compositor has not yet acknowledged with delete_id. Events
	// addressed to them are dropped.
	zombies set.Set[uint32]
}

func DialDisplay() (*Display, error) {
	c, err := wire.Dial()
	if err != nil {
		return nil, err
	}
	return ConnectDisplay(c), nil
}

func ConnectDisplay(c *wire.Conn) *Display {
	display := Display{
		done:    make(chan struct{}),
		conn:    c,
		store:   objstore.New(1),
		queue:   cq.New[func() error](),
		zombies: make(set.Set[uint32]),
	}
	display.Init(&display)
	display.AddObject(&display)

	go display.listen()

	return &display
}

func (display *Display) listen() {
	for {
		msg, err := wire.ReadMessage(display.conn)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}

			display.queue.Push(func() error { return err })
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return
			}
			continue
		}

		if !display.queue.Push(func() error { return display.dispatch(msg) }) {
			return
		}
	}
}

func (display *Display) Close() error {
	display.close.Do(func() { close(display.done) })
	display.queue.Stop()
	return display.conn.Close()
}

// AddObject registers obj with the display, allocating it an ID.
func (display *Display) AddObject(obj wire.Object) {
	display.store.Add(obj)
}

// DeleteObject forgets the object with the given ID after the client
// has destroyed it.
func (display *Display) DeleteObject(id uint32) {
	display.store.Delete(id)
	display.zombies.Add(id)
}

func (display *Display) dispatch(msg *wire.MessageBuffer) error {
	err := display.store.Dispatch(msg)
	if _, ok := err.(wire.UnknownSenderIDError); ok {
		if display.zombies.Has(msg.Sender()) {
			debug.Printf("dropped event %v for destroyed object %v", msg.Op(), msg.Sender())
			return nil
		}
		return err
	}

	debug.Printf("%v", msg.Debug(display.store.Get(msg.Sender())))
	return err
}

// Enqueue queues msg to be sent during the next flush.
func (display *Display) Enqueue(msg *wire.MessageBuilder) {
	display.queue.Push(func() error {
		debug.Printf(" -> %v", msg)
		return msg.Build(display.conn)
	})
}

// Flush sends all enqueued messages and dispatches all events that
// have been received since the last flush. It does not block.
func (display *Display) Flush() error {
	select {
	case queue := <-display.queue.Get():
		return errors.Join(cq.Flush(queue)...)
	default:
		return nil
	}
}

// RoundTrip blocks until the compositor has processed every request
// sent so far, dispatching events as they arrive.
func (display *Display) RoundTrip() error {
	done := make(chan struct{})
	display.Sync(func(uint32) { close(done) })

	var errs []error

	for {
		select {
		case <-done:
			return errors.Join(errs...)

		case <-display.queue.Done():
			return errors.Join(append(errs, net.ErrClosed)...)

		case queue := <-display.queue.Get():
			errs = append(errs, cq.Flush(queue)...)
		}
	}
}

// Sync asks the compositor to call done once it has processed every
// request sent before it.
func (display *Display) Sync(done func(uint32)) *Callback {
	callback := Callback{Done: done}
	callback.Init(display)
	display.AddObject(&callback)
	display.Enqueue(wire.NewRequest(display, 0, "sync", &callback))
	return &callback
}

func (display *Display) GetRegistry() *Registry {
	if display.registry != nil {
		return display.registry
	}

	registry := Registry{globals: make(map[uint32]Interface)}
	registry.Init(display)
	display.AddObject(&registry)
	display.Enqueue(wire.NewRequest(display, 1, "get_registry", &registry))
	display.registry = &registry
	return &registry
}

func (display *Display) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		objectID := msg.ReadObject()
		code := msg.ReadUint()
		message := msg.ReadString()
		if err := msg.Err(); err != nil {
			return err
		}
		if display.Error != nil {
			display.Error(objectID, code, message)
		}
		return DisplayError{ObjectID: objectID, Code: code, Msg: message}

	case 1:
		id := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		display.store.Delete(id)
		display.zombies.Delete(id)
		return nil

	default:
		return unknownEvent(displayInterface, msg.Op())
	}
}

func (display *Display) MethodName(op uint16) string {
	switch op {
	case 0:
		return "error"
	case 1:
		return "delete_id"
	}
	return "unknown"
}

func (display *Display) String() string {
	return objectString(displayInterface, display.id)
}

// DisplayError is a fatal protocol error reported by the compositor.
type DisplayError struct {
	ObjectID uint32
	Code     uint32
	Msg      string
}

func (err DisplayError) Error() string {
	return fmt.Sprintf("protocol error on object %v (code %v): %v", err.ObjectID, err.Code, err.Msg)
}
