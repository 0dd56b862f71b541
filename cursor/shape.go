// Package cursor shows cursors for windows, using images from the
// user's xcursor theme.
package cursor

import "deedles.dev/wlwin/window"

// shapeNames maps standard shapes to xcursor names. Themes disagree
// about naming, so later names are tried when earlier ones are
// missing.
var shapeNames = map[window.CursorShape][]string{
	window.CursorDefault:           {"left_ptr", "default"},
	window.CursorRightArrow:        {"right_ptr"},
	window.CursorLeftArrow:         {"left_ptr", "default"},
	window.CursorInfo:              {"left_ptr_help", "help"},
	window.CursorDestroy:           {"pirate"},
	window.CursorHelp:              {"question_arrow", "help"},
	window.CursorWait:              {"watch", "wait"},
	window.CursorText:              {"xterm", "text"},
	window.CursorCrosshair:         {"crosshair"},
	window.CursorUpDown:            {"sb_v_double_arrow", "ns-resize"},
	window.CursorLeftRight:         {"sb_h_double_arrow", "ew-resize"},
	window.CursorTopSide:           {"top_side", "n-resize"},
	window.CursorBottomSide:        {"bottom_side", "s-resize"},
	window.CursorLeftSide:          {"left_side", "w-resize"},
	window.CursorRightSide:         {"right_side", "e-resize"},
	window.CursorTopLeftCorner:     {"top_left_corner", "nw-resize"},
	window.CursorTopRightCorner:    {"top_right_corner", "ne-resize"},
	window.CursorBottomRightCorner: {"bottom_right_corner", "se-resize"},
	window.CursorBottomLeftCorner:  {"bottom_left_corner", "sw-resize"},
	window.CursorMove:              {"move", "fleur"},
	window.CursorStop:              {"crossed_circle", "not-allowed"},
	window.CursorCopy:              {"copy"},
}

// Names returns the theme names that can be used for shape, in order
// of preference. CursorCustom has none.
func Names(shape window.CursorShape) []string {
	return shapeNames[shape]
}
