// Package debug provides protocol tracing controlled by the
// WAYLAND_DEBUG environment variable, in the same spirit as
// libwayland's own tracing.
package debug

import (
	"log"
	"os"
	"strconv"
)

var debug = func(string, ...any) {}

var enabled bool

func init() {
	debugLevel, err := strconv.ParseInt(os.Getenv("WAYLAND_DEBUG"), 10, 0)
	if err != nil {
		return
	}
	if debugLevel > 0 {
		enabled = true
		debug = func(str string, args ...any) { log.Printf(str, args...) }
	}
}

// Enabled reports whether tracing is turned on.
func Enabled() bool {
	return enabled
}

func Printf(str string, args ...any) {
	debug(str, args...)
}
