package decor

import (
	"strings"

	"deedles.dev/wlwin/xdg"
)

// WindowState is the set of states that the compositor reported for
// a frame.
type WindowState uint32

const (
	WindowStateActive WindowState = 1 << iota
	WindowStateMaximized
	WindowStateFullscreen
	WindowStateResizing
	WindowStateTiledLeft
	WindowStateTiledRight
	WindowStateTiledTop
	WindowStateTiledBottom

	WindowStateNone WindowState = 0
)

var stateNames = [...]string{
	"active",
	"maximized",
	"fullscreen",
	"resizing",
	"tiled_left",
	"tiled_right",
	"tiled_top",
	"tiled_bottom",
}

func (s WindowState) String() string {
	if s == WindowStateNone {
		return "none"
	}

	var names []string
	for i, name := range stateNames {
		if s&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// Has reports whether every state in o is set in s.
func (s WindowState) Has(o WindowState) bool {
	return s&o == o
}

// parseStates converts the states array of xdg_toplevel.configure into
// a WindowState. Unknown states are ignored.
func parseStates(data []byte) (WindowState, bool) {
	states, ok := xdg.DecodeStates(data)
	if !ok {
		return WindowStateNone, false
	}

	var s WindowState
	for _, state := range states {
		switch state {
		case xdg.ToplevelStateActivated:
			s |= WindowStateActive
		case xdg.ToplevelStateMaximized:
			s |= WindowStateMaximized
		case xdg.ToplevelStateFullscreen:
			s |= WindowStateFullscreen
		case xdg.ToplevelStateResizing:
			s |= WindowStateResizing
		case xdg.ToplevelStateTiledLeft:
			s |= WindowStateTiledLeft
		case xdg.ToplevelStateTiledRight:
			s |= WindowStateTiledRight
		case xdg.ToplevelStateTiledTop:
			s |= WindowStateTiledTop
		case xdg.ToplevelStateTiledBottom:
			s |= WindowStateTiledBottom
		}
	}
	return s, true
}

// Configuration is one complete configuration sequence from the
// compositor.
type Configuration struct {
	serial        uint32
	width, height int32
	state         WindowState
	stateOK       bool
}

// ContentSize returns the size suggested by the compositor. ok is
// false if the compositor left the size up to the client.
func (c *Configuration) ContentSize() (width, height int32, ok bool) {
	if (c.width <= 0) || (c.height <= 0) {
		return 0, 0, false
	}
	return c.width, c.height, true
}

// WindowState returns the states reported by the compositor. ok is
// false if they couldn't be decoded.
func (c *Configuration) WindowState() (state WindowState, ok bool) {
	return c.state, c.stateOK
}

// Serial returns the serial that Frame.Commit acknowledges.
func (c *Configuration) Serial() uint32 {
	return c.serial
}
