package input

import (
	"errors"
	"time"
)

// Event carries one user input or one logical tick into the game core.
type Event struct {
	Type EventType
	Key  Key           // valid for EventKey
	Tick time.Duration // valid for EventTick, elapsed logical time
}

type EventType int8

const (
	EventNone EventType = iota // dummy event
	EventKey                   // named key pressed by user
	EventTick                  // logical time elapsed on the active scene
	EventQuit                  // terminate signal
)

// Key is a named game control. The core knows only these controls;
// the front end decides which physical inputs map to them.
type Key int8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter  // confirm / continue
	KeyEscape // cancel / exit
	KeySpace
	KeyRestart // restart after time up
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeySpace:
		return "space"
	case KeyRestart:
		return "restart"
	}
	return "none"
}

// make new Event type EventKey.
func NewEventKey(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// make new Event type EventTick carrying elapsed logical time.
func NewEventTick(d time.Duration) Event {
	return Event{Type: EventTick, Tick: d}
}

// make quit event. it is intended to send quit signal.
func NewEventQuit() Event {
	return Event{Type: EventQuit}
}

// ErrorQuit represents the quit signal arriving on the input stream.
var ErrorQuit = errors.New("input.Event: normal termination")
