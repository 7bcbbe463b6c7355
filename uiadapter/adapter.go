// package uiadapter converts the UI interface to the game core interface.
package uiadapter

import (
	"errors"

	"github.com/securecodex/cityquest/uiadapter/event/input"
)

// ErrorPipelineClosed is returned from blocking input calls after the
// quit signal. It marks normal termination, not a failure.
var ErrorPipelineClosed = errors.New("uiadapter: input pipeline closed")

// UIAdapter bridges one UI implementation and the scene flow.
// Scenes read the signal stream through the input port and draw
// through the output port.
type UIAdapter struct {
	*inputPort
	*outputPort
}

func New(ui UI) *UIAdapter {
	return &UIAdapter{
		inputPort:  newInputPort(),
		outputPort: newOutputPort(ui),
	}
}

// Sender is the front-end side of the input port.
type Sender interface {
	// send input event to the game.
	Send(ev input.Event)
	// shorthand for Send(QuitEvent).
	Quit()
}

// GetInputPort returns the front-end side of the input port.
func (ad *UIAdapter) GetInputPort() Sender {
	return ad.inputPort
}
