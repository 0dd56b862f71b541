package wl

import (
	"os"

	"deedles.dev/wlwin/wire"
)

type Shm struct {
	Format func(ShmFormat)

	Proxy
}

func IsShm(i Interface) bool {
	return i.Is(shmInterface, 1)
}

func BindShm(display *Display, name, version uint32) *Shm {
	shm := Shm{}
	shm.Init(display)

	registry := display.GetRegistry()
	registry.Bind(name, shmInterface, boundVersion(version, shmVersion), &shm)

	return &shm
}

func (shm *Shm) CreatePool(file *os.File, size int32) *ShmPool {
	pool := ShmPool{}
	pool.Init(shm.display)
	shm.display.AddObject(&pool)
	shm.display.Enqueue(wire.NewRequest(shm, 0, "create_pool", &pool, file, size))

	return &pool
}

func (shm *Shm) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		format := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		if shm.Format != nil {
			shm.Format(ShmFormat(format))
		}
		return nil
	}
	return unknownEvent(shmInterface, msg.Op())
}

func (shm *Shm) MethodName(op uint16) string {
	if op == 0 {
		return "format"
	}
	return "unknown"
}

func (shm *Shm) String() string {
	return objectString(shmInterface, shm.id)
}

type ShmPool struct {
	Proxy
}

func (pool *ShmPool) CreateBuffer(offset, width, height, stride int32, format ShmFormat) *Buffer {
	buf := Buffer{}
	buf.Init(pool.display)
	pool.display.AddObject(&buf)
	pool.display.Enqueue(wire.NewRequest(pool, 0, "create_buffer", &buf, offset, width, height, stride, uint32(format)))

	return &buf
}

func (pool *ShmPool) Resize(size int32) {
	pool.display.Enqueue(wire.NewRequest(pool, 2, "resize", size))
}

func (pool *ShmPool) Destroy() {
	pool.display.Enqueue(wire.NewRequest(pool, 1, "destroy"))
	pool.display.DeleteObject(pool.id)
}

func (pool *ShmPool) Dispatch(msg *wire.MessageBuffer) error {
	return unknownEvent(shmPoolInterface, msg.Op())
}

func (pool *ShmPool) MethodName(op uint16) string {
	return "unknown"
}

func (pool *ShmPool) String() string {
	return objectString(shmPoolInterface, pool.id)
}

type Buffer struct {
	Release func()

	Proxy
}

func (buf *Buffer) Destroy() {
	buf.display.Enqueue(wire.NewRequest(buf, 0, "destroy"))
	buf.display.DeleteObject(buf.id)
}

func (buf *Buffer) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		if buf.Release != nil {
			buf.Release()
		}
		return nil
	}
	return unknownEvent(bufferInterface, msg.Op())
}

func (buf *Buffer) MethodName(op uint16) string {
	if op == 0 {
		return "release"
	}
	return "unknown"
}

func (buf *Buffer) String() string {
	return objectString(bufferInterface, buf.id)
}
