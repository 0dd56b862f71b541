package window

import "fmt"

// State is the logical state of a window as seen by the application.
type State int

const (
	StateNormal State = iota
	StateMaximized
	StateMinimized
	StateFullScreen
	StateEmbedded
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateMaximized:
		return "maximized"
	case StateMinimized:
		return "minimized"
	case StateFullScreen:
		return "fullscreen"
	case StateEmbedded:
		return "embedded"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState is the inverse of State.String.
func ParseState(str string) (State, error) {
	for s := StateNormal; s <= StateEmbedded; s++ {
		if s.String() == str {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown window state %q", str)
}

// ResolveState collapses the independent maximized and fullscreen
// flags reported by the compositor into a single state. Fullscreen
// wins over maximized.
func ResolveState(maximized, fullscreen bool) State {
	switch {
	case fullscreen:
		return StateFullScreen
	case maximized:
		return StateMaximized
	default:
		return StateNormal
	}
}

// StateFlags is the state bitmask carried by a configuration.
type StateFlags uint32

const (
	FlagActive StateFlags = 1 << iota
	FlagMaximized
	FlagFullscreen
)

func (f StateFlags) Active() bool     { return f&FlagActive != 0 }
func (f StateFlags) Maximized() bool  { return f&FlagMaximized != 0 }
func (f StateFlags) Fullscreen() bool { return f&FlagFullscreen != 0 }

// Request records state changes that have been sent to the decoration
// service but not yet confirmed by a configuration.
type Request uint8

const (
	RequestMaximize Request = 1 << iota
	RequestUnmaximize
	RequestFullscreen
	RequestUnfullscreen
	RequestMinimize

	RequestNone Request = 0
)

// Has reports whether any of the bits in o are set in r. It is always
// false for RequestNone.
func (r Request) Has(o Request) bool {
	return r&o != 0
}

func (r Request) String() string {
	if r == RequestNone {
		return "none"
	}

	names := [...]string{"maximize", "unmaximize", "fullscreen", "unfullscreen", "minimize"}
	var str string
	for i, name := range names {
		if r&(1<<i) == 0 {
			continue
		}
		if str != "" {
			str += "|"
		}
		str += name
	}
	return str
}

// Order is a stacking order request.
type Order int

const (
	OrderTop Order = iota
	OrderBottom
)
