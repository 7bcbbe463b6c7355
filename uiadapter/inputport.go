package uiadapter

import (
	"sync"

	"github.com/securecodex/cityquest/uiadapter/event/input"
	"github.com/securecodex/cityquest/util/deque"
)

// inputPort buffers front-end events and hands them to the active
// scene as a single ordered signal stream. Key presses and logical
// ticks share the stream so that scene loops stay single threaded.
type inputPort struct {
	ebuf deque.EventDeque

	mu     sync.Mutex
	closed bool
}

func newInputPort() *inputPort {
	return &inputPort{
		ebuf: deque.NewEventDeque(),
	}
}

// Send queues an event from the front end.
// Events arriving after Quit are dropped.
func (p *inputPort) Send(ev input.Event) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return
	}
	p.ebuf.Send(ev)
}

// Quit preempts everything buffered so the scene loop observes
// termination on its next signal.
func (p *inputPort) Quit() {
	p.ebuf.SendFirst(input.NewEventQuit())
}

// NextSignal returns the next buffered event.
// It blocks until the front end sends a key, a tick or quit.
// After the quit signal it always returns ErrorPipelineClosed.
func (p *inputPort) NextSignal() (input.Event, error) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return input.Event{}, ErrorPipelineClosed
	}

	for {
		ev, ok := p.ebuf.NextEvent().(input.Event)
		if !ok {
			continue
		}
		switch ev.Type {
		case input.EventQuit:
			p.mu.Lock()
			p.closed = true
			p.mu.Unlock()
			return input.Event{}, ErrorPipelineClosed
		case input.EventKey, input.EventTick:
			return ev, nil
		default:
			// unknown event types are dropped silently.
		}
	}
}

// WaitKey blocks until one of the given keys arrives, discarding
// ticks and other keys meanwhile. Empty keys accepts any key.
func (p *inputPort) WaitKey(keys ...input.Key) (input.Key, error) {
	for {
		ev, err := p.NextSignal()
		if err != nil {
			return input.KeyNone, err
		}
		if ev.Type != input.EventKey {
			continue
		}
		if len(keys) == 0 {
			return ev.Key, nil
		}
		for _, k := range keys {
			if ev.Key == k {
				return ev.Key, nil
			}
		}
	}
}
