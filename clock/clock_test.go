package clock

import (
	"testing"
	"time"
)

func TestAfterFuncFiresAtDeadline(t *testing.T) {
	c := New()
	fired := 0
	c.AfterFunc(300*time.Millisecond, func() { fired++ })

	c.Advance(100 * time.Millisecond)
	if fired != 0 {
		t.Fatal("timer fired before its deadline")
	}
	c.Advance(200 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("timer fired %d times, expect 1", fired)
	}
	c.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("timer re-fired, count %d", fired)
	}
}

func TestAfterFuncOrder(t *testing.T) {
	c := New()
	var order []string
	c.AfterFunc(3*time.Second, func() { order = append(order, "dismiss") })
	c.AfterFunc(300*time.Millisecond, func() { order = append(order, "notify") })

	c.Advance(5 * time.Second)
	if len(order) != 2 || order[0] != "notify" || order[1] != "dismiss" {
		t.Fatalf("timers fired out of deadline order: %v", order)
	}
}

func TestTimerStop(t *testing.T) {
	c := New()
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })
	if !timer.Stop() {
		t.Fatal("Stop on pending timer must report true")
	}
	c.Advance(2 * time.Second)
	if fired {
		t.Fatal("stopped timer fired")
	}
	if timer.Stop() {
		t.Fatal("second Stop must report false")
	}
}

func TestStopAll(t *testing.T) {
	c := New()
	fired := 0
	c.AfterFunc(time.Second, func() { fired++ })
	c.AfterFunc(2*time.Second, func() { fired++ })
	c.StopAll()
	c.Advance(5 * time.Second)
	if fired != 0 {
		t.Fatalf("StopAll left %d timers alive", fired)
	}
}

func TestCountdownReachesZeroOnce(t *testing.T) {
	cd := NewCountdown(600)
	timeUps := 0
	cd.SetTimeUpFunc(func() { timeUps++ })

	for i := 0; i < 600; i++ {
		cd.Advance(time.Second)
	}
	if got := cd.Remaining(); got != 0 {
		t.Fatalf("remaining = %d after 600 ticks, expect 0", got)
	}
	if timeUps != 1 {
		t.Fatalf("time-up fired %d times, expect 1", timeUps)
	}

	// the 601st tick keeps zero and must not re-fire.
	cd.Advance(time.Second)
	if got := cd.Remaining(); got != 0 {
		t.Fatalf("remaining = %d after extra tick, expect 0", got)
	}
	if timeUps != 1 {
		t.Fatalf("time-up re-fired, count %d", timeUps)
	}
}

func TestCountdownSubSecondCarry(t *testing.T) {
	cd := NewCountdown(2)
	for i := 0; i < 10; i++ {
		cd.Advance(100 * time.Millisecond)
	}
	if got := cd.Remaining(); got != 1 {
		t.Fatalf("remaining = %d after 1000ms of 100ms ticks, expect 1", got)
	}
}

func TestCountdownUrgencyOneWay(t *testing.T) {
	cd := NewCountdown(UrgentThreshold + 2)
	if cd.Urgent() {
		t.Fatal("fresh countdown must not be urgent")
	}
	cd.Advance(2 * time.Second)
	if !cd.Urgent() {
		t.Fatalf("countdown at %d seconds must be urgent", cd.Remaining())
	}
	// urgency never reverts, whatever happens later.
	cd.Advance(time.Second)
	if !cd.Urgent() {
		t.Fatal("urgency reverted")
	}
}

func TestCountdownSecondCallback(t *testing.T) {
	cd := NewCountdown(3)
	var seen []int
	cd.SetSecondFunc(func(remaining int) { seen = append(seen, remaining) })
	cd.Advance(4 * time.Second)
	want := []int{2, 1, 0}
	if len(seen) != len(want) {
		t.Fatalf("second callback fired %d times, expect %d", len(seen), len(want))
	}
	for i, w := range want {
		if seen[i] != w {
			t.Fatalf("second callback sequence %v, expect %v", seen, want)
		}
	}
}
