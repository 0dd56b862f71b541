// Package xdg implements the client side of the stable xdg-shell
// protocol, which turns plain surfaces into desktop windows.
package xdg

import (
	"encoding/binary"
	"fmt"

	wl "deedles.dev/wlwin/client"
	"deedles.dev/wlwin/wire"
)

const (
	wmBaseInterface   = "xdg_wm_base"
	wmBaseVersion     = 2
	surfaceInterface  = "xdg_surface"
	toplevelInterface = "xdg_toplevel"
)

// ToplevelState is one of the states that a compositor may report in
// xdg_toplevel.configure.
type ToplevelState uint32

const (
	ToplevelStateMaximized ToplevelState = 1 + iota
	ToplevelStateFullscreen
	ToplevelStateResizing
	ToplevelStateActivated
	ToplevelStateTiledLeft
	ToplevelStateTiledRight
	ToplevelStateTiledTop
	ToplevelStateTiledBottom
)

func (s ToplevelState) String() string {
	switch s {
	case ToplevelStateMaximized:
		return "maximized"
	case ToplevelStateFullscreen:
		return "fullscreen"
	case ToplevelStateResizing:
		return "resizing"
	case ToplevelStateActivated:
		return "activated"
	case ToplevelStateTiledLeft:
		return "tiled_left"
	case ToplevelStateTiledRight:
		return "tiled_right"
	case ToplevelStateTiledTop:
		return "tiled_top"
	case ToplevelStateTiledBottom:
		return "tiled_bottom"
	}
	return fmt.Sprintf("ToplevelState(%d)", uint32(s))
}

// DecodeStates decodes the array argument of xdg_toplevel.configure.
// It returns false if the array is not a whole number of states.
func DecodeStates(data []byte) ([]ToplevelState, bool) {
	if len(data)%4 != 0 {
		return nil, false
	}

	states := make([]ToplevelState, 0, len(data)/4)
	for i := 0; i < len(data); i += 4 {
		states = append(states, ToplevelState(binary.NativeEndian.Uint32(data[i:])))
	}
	return states, true
}

// EncodeStates is the inverse of DecodeStates.
func EncodeStates(states ...ToplevelState) []byte {
	data := make([]byte, 4*len(states))
	for i, s := range states {
		binary.NativeEndian.PutUint32(data[4*i:], uint32(s))
	}
	return data
}

func IsWmBase(i wl.Interface) bool {
	return i.Is(wmBaseInterface, 1)
}

func unknownEvent(inter string, op uint16) error {
	return wire.UnknownOpError{Interface: inter, Type: "event", Op: op}
}

func objectString(inter string, id uint32) string {
	return fmt.Sprintf("%v@%v", inter, id)
}
