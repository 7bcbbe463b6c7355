package scene

import (
	"github.com/securecodex/cityquest/uiadapter/event/input"
)

// io controller has interfaces for the external io layer: the input
// signal stream and the drawing surface. uiadapter.UIAdapter
// implements this.
type IOController interface {
	InputPort
	OutputPort
}

// input interface.
type InputPort interface {
	// NextSignal returns the next input event, key press or logical
	// tick, blocking until one arrives.
	NextSignal() (input.Event, error)

	// WaitKey blocks until one of the given keys arrives, discarding
	// ticks and other keys. Empty keys accepts any key.
	WaitKey(keys ...input.Key) (input.Key, error)

	// ReadLine serves a blocking free-text request.
	ReadLine(prompt string) (string, error)
}

// output interface.
type OutputPort interface {
	DrawText(x, y int, text string) error
	DrawBubble(speaker, text string) error

	ShowOverlay(id string, lines []string) error
	ClearOverlay(id string) error

	SetStatus(score, secondsLeft int, urgent bool) error
	SetPlayerPos(x, y float64) error
	SetPlayerVisible(visible bool) error

	NewPage() error
	Sync() error
}
