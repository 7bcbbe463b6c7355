package clock

import (
	"time"
)

// UrgentThreshold is the remaining-seconds boundary at which a
// countdown reports urgency to the presentation layer.
const UrgentThreshold = 30

// Countdown decrements once per whole second of logical time,
// clamps at zero and fires its time-up callback exactly once.
// It is created fresh on every scene (re)start; no countdown state
// survives across scene restarts.
type Countdown struct {
	remaining int
	carry     time.Duration

	urgent  bool // one way, never reverts
	expired bool
	fired   bool

	onTimeUp func()
	onSecond func(remaining int)
}

func NewCountdown(seconds int) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return &Countdown{remaining: seconds}
}

// SetTimeUpFunc sets the callback fired once when remaining reaches zero.
func (cd *Countdown) SetTimeUpFunc(fn func()) { cd.onTimeUp = fn }

// SetSecondFunc sets the callback fired after every whole-second decrement.
func (cd *Countdown) SetSecondFunc(fn func(remaining int)) { cd.onSecond = fn }

// Advance accumulates logical time and applies one decrement per
// whole second. Advancing past zero leaves the countdown at zero
// without re-firing the time-up callback.
func (cd *Countdown) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	cd.carry += d
	for cd.carry >= time.Second {
		cd.carry -= time.Second
		cd.tickSecond()
	}
}

func (cd *Countdown) tickSecond() {
	if cd.expired {
		return
	}
	cd.remaining--
	if cd.remaining <= UrgentThreshold {
		cd.urgent = true
	}
	if cd.remaining <= 0 {
		cd.remaining = 0
		cd.expired = true
		if cd.onSecond != nil {
			cd.onSecond(0)
		}
		if !cd.fired {
			cd.fired = true
			if cd.onTimeUp != nil {
				cd.onTimeUp()
			}
		}
		return
	}
	if cd.onSecond != nil {
		cd.onSecond(cd.remaining)
	}
}

// Remaining returns seconds left, never negative.
func (cd *Countdown) Remaining() int { return cd.remaining }

// Expired reports whether the countdown reached zero.
func (cd *Countdown) Expired() bool { return cd.expired }

// Urgent reports the one-way urgency state used for styling only.
func (cd *Countdown) Urgent() bool { return cd.urgent }
