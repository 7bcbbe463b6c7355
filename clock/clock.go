// package clock provides logical per-scene time. A scene owns one
// Clock, advances it with the tick events it receives while active,
// and schedules deferred callbacks against it. Because the clock only
// moves when its owner pumps ticks, it is naturally paused while the
// scene is inactive and never depends on wall-clock time.
package clock

import (
	"sort"
	"time"
)

// Clock is a logical clock advanced explicitly by its owning scene.
// It is not safe for concurrent use; the game flow is single threaded.
type Clock struct {
	now    time.Duration
	timers []*Timer
}

func New() *Clock {
	return &Clock{}
}

// Now returns elapsed logical time.
func (c *Clock) Now() time.Duration { return c.now }

// Advance moves logical time forward by d and fires every timer whose
// deadline has passed, in deadline order. Callbacks run synchronously
// on the caller's goroutine.
func (c *Clock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.now += d
	for {
		t := c.popDue()
		if t == nil {
			return
		}
		t.fn()
	}
}

func (c *Clock) popDue() *Timer {
	idx := -1
	for i, t := range c.timers {
		if t.deadline <= c.now && (idx < 0 || t.deadline < c.timers[idx].deadline) {
			idx = i
		}
	}
	if idx < 0 {
		return nil
	}
	t := c.timers[idx]
	c.timers = append(c.timers[:idx], c.timers[idx+1:]...)
	return t
}

// AfterFunc schedules fn to run once after duration d of logical time.
// The returned Timer can cancel the callback before it fires.
func (c *Clock) AfterFunc(d time.Duration, fn func()) *Timer {
	t := &Timer{
		clock:    c,
		deadline: c.now + d,
		fn:       fn,
	}
	c.timers = append(c.timers, t)
	sort.SliceStable(c.timers, func(i, j int) bool {
		return c.timers[i].deadline < c.timers[j].deadline
	})
	return t
}

// StopAll cancels every pending timer. Scenes call this on every exit
// path so no callback outlives its owner.
func (c *Clock) StopAll() {
	c.timers = nil
}

// Timer is one pending deferred callback.
type Timer struct {
	clock    *Clock
	deadline time.Duration
	fn       func()
}

// Stop cancels the timer. It reports whether the timer was still
// pending; false means the callback already fired or was stopped.
func (t *Timer) Stop() bool {
	for i, pending := range t.clock.timers {
		if pending == t {
			c := t.clock
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}
