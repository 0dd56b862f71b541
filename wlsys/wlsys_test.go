package wlsys

import (
	"context"
	"image"
	"net"
	"os"
	"testing"
	"time"

	wl "deedles.dev/wlwin/client"
	"deedles.dev/wlwin/decor"
	"deedles.dev/wlwin/window"
	"deedles.dev/wlwin/wire"
	"deedles.dev/wlwin/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

type serverObject uint32

func (obj serverObject) ID() uint32                         { return uint32(obj) }
func (obj serverObject) SetID(uint32)                       {}
func (obj serverObject) Delete()                            {}
func (obj serverObject) Dispatch(*wire.MessageBuffer) error { return nil }
func (obj serverObject) MethodName(uint16) string           { return "" }

// compositor is a minimal xdg-shell compositor. It configures every
// toplevel as soon as it is created.
type compositor struct {
	conn    *wire.Conn
	globals []wl.Interface
	size    image.Point
	states  []xdg.ToplevelState

	registry uint32
	objects  map[uint32]string
	serial   uint32
	acks     chan uint32
}

func connect(t *testing.T, c *compositor) *wl.Display {
	t.Helper()

	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	require.NoError(t, err)

	conn := func(fd int) *wire.Conn {
		file := os.NewFile(uintptr(fd), "socketpair")
		defer file.Close()
		nc, err := net.FileConn(file)
		require.NoError(t, err)
		return wire.NewConn(nc.(*net.UnixConn))
	}

	c.conn = conn(fds[1])
	c.objects = make(map[uint32]string)
	c.acks = make(chan uint32, 16)
	go c.serve()

	display := wl.ConnectDisplay(conn(fds[0]))
	t.Cleanup(func() {
		display.Close()
		c.conn.Close()
	})
	return display
}

func (c *compositor) send(sender uint32, op uint16, args ...any) {
	wire.NewRequest(serverObject(sender), op, "", args...).Build(c.conn)
}

func (c *compositor) serve() {
	for {
		msg, err := wire.ReadMessage(c.conn)
		if err != nil {
			return
		}

		inter := c.objects[msg.Sender()]
		switch {
		case (msg.Sender() == 1) && (msg.Op() == 0):
			id := msg.ReadUint()
			c.send(id, 0, uint32(0))

		case (msg.Sender() == 1) && (msg.Op() == 1):
			c.registry = msg.ReadUint()
			for i, g := range c.globals {
				c.send(c.registry, 0, uint32(i+1), g.Name, g.Version)
			}

		case (msg.Sender() == c.registry) && (msg.Op() == 0):
			msg.ReadUint()
			id := msg.ReadNewID()
			c.objects[id.ID] = id.Interface

		case (inter == "wl_compositor") && (msg.Op() == 0):
			c.objects[msg.ReadUint()] = "wl_surface"

		case (inter == "xdg_wm_base") && (msg.Op() == 2):
			c.objects[msg.ReadUint()] = "xdg_surface"

		case (inter == "xdg_surface") && (msg.Op() == 1):
			top := msg.ReadUint()
			c.objects[top] = "xdg_toplevel"
			c.serial++
			c.send(top, 0, int32(c.size.X), int32(c.size.Y), xdg.EncodeStates(c.states...))
			c.send(msg.Sender(), 0, c.serial)

		case (inter == "xdg_surface") && (msg.Op() == 4):
			c.acks <- msg.ReadUint()
		}
	}
}

var allGlobals = []wl.Interface{
	{Name: "wl_compositor", Version: 4},
	{Name: "wl_shm", Version: 1},
	{Name: "xdg_wm_base", Version: 2},
}

func TestOpenMissingGlobals(t *testing.T) {
	display := connect(t, &compositor{globals: allGlobals[:1]})

	_, err := Open(display, Config{NoCursors: true})
	assert.ErrorIs(t, err, decor.ErrMissingGlobal)
	assert.ErrorContains(t, err, "wl_shm")
	assert.ErrorContains(t, err, "xdg_wm_base")
}

func TestNewWindow(t *testing.T) {
	c := &compositor{
		globals: allGlobals,
		size:    image.Pt(320, 240),
		states:  []xdg.ToplevelState{xdg.ToplevelStateActivated, xdg.ToplevelStateMaximized},
	}
	display := connect(t, c)

	conn, err := Open(display, Config{NoCursors: true})
	require.NoError(t, err)

	opts := window.DefaultOptions()
	opts.Title = "test"
	w, err := conn.NewWindow(opts)
	require.NoError(t, err)

	assert.True(t, w.Configured())
	assert.True(t, w.Active())
	assert.Equal(t, window.StateMaximized, w.State())
	assert.Equal(t, image.Rect(0, 0, 320, 240), w.ClientBounds())
	assert.Equal(t, window.ContextTypeOpenGL, w.DrawingContextType())
	assert.Same(t, w, conn.Windows.ActiveWindow())

	select {
	case serial := <-c.acks:
		assert.Equal(t, uint32(1), serial)
	case <-time.After(5 * time.Second):
		t.Fatal("configuration was not acknowledged")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var kinds []window.EventKind
	for len(kinds) < 2 {
		_, err := conn.Events.Wait(ctx, func(e window.Event) {
			kinds = append(kinds, e.Kind)
		})
		require.NoError(t, err)
	}
	assert.Equal(t, []window.EventKind{window.EventWindowSize, window.EventWindowActivate}, kinds)

	require.NoError(t, w.SwapBuffers())
	require.NoError(t, display.RoundTrip())

	conn.CloseWindow(w)
	assert.Nil(t, conn.Windows.ActiveWindow())
	assert.Equal(t, 0, conn.Windows.Len())
	require.NoError(t, display.RoundTrip())
}

func TestStateFlags(t *testing.T) {
	assert.Equal(t, window.StateFlags(0), stateFlags(decor.WindowStateNone))
	assert.Equal(t,
		window.FlagActive|window.FlagFullscreen,
		stateFlags(decor.WindowStateActive|decor.WindowStateFullscreen|decor.WindowStateResizing),
	)
	assert.Equal(t, window.FlagMaximized, stateFlags(decor.WindowStateMaximized|decor.WindowStateTiledLeft))
}
