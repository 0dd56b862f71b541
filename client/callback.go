package wl

import "deedles.dev/wlwin/wire"

// Callback is a one-shot wl_callback.
type Callback struct {
	Done func(data uint32)

	Proxy
}

func (c *Callback) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		data := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		if c.Done != nil {
			c.Done(data)
		}
		return nil
	}
	return unknownEvent(callbackInterface, msg.Op())
}

func (c *Callback) MethodName(op uint16) string {
	if op == 0 {
		return "done"
	}
	return "unknown"
}

func (c *Callback) String() string {
	return objectString(callbackInterface, c.id)
}
