package animation

import (
	"sort"
	"time"
)

var pendingTimers = make(map[*Timer]struct{})

// Timer runs a callback once after a delay, measured on the animation clock.
//
// Timers fire from [StepTickers], so a zero delay fires on the next frame
// rather than synchronously. A Timer never fires after Cancel returns.
type Timer struct {
	callback func()
	deadline time.Time
	seq      uint64
	pending  bool
}

var timerSeq uint64

// AfterFunc schedules fn to run once delay has elapsed.
func AfterFunc(delay time.Duration, fn func()) *Timer {
	if delay < 0 {
		delay = 0
	}
	timerSeq++
	t := &Timer{
		callback: fn,
		deadline: Now().Add(delay),
		seq:      timerSeq,
		pending:  true,
	}
	tickerMu.Lock()
	pendingTimers[t] = struct{}{}
	tickerMu.Unlock()
	return t
}

// Cancel prevents the timer from firing. Returns false if it already fired
// or was already canceled.
func (t *Timer) Cancel() bool {
	if t == nil || !t.pending {
		return false
	}
	t.pending = false
	tickerMu.Lock()
	delete(pendingTimers, t)
	tickerMu.Unlock()
	return true
}

// Pending reports whether the timer is still waiting to fire.
func (t *Timer) Pending() bool {
	return t != nil && t.pending
}

// Deadline returns when the timer is due.
func (t *Timer) Deadline() time.Time {
	return t.deadline
}

// stepTimers fires due timers in deadline order, ties broken by creation.
func stepTimers() {
	now := Now()
	tickerMu.Lock()
	var due []*Timer
	for t := range pendingTimers {
		if !t.deadline.After(now) {
			due = append(due, t)
		}
	}
	for _, t := range due {
		delete(pendingTimers, t)
	}
	tickerMu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline.Before(due[j].deadline)
	})
	for _, t := range due {
		// An earlier callback in this batch may have canceled t.
		if !t.pending {
			continue
		}
		t.pending = false
		if t.callback != nil {
			t.callback()
		}
	}
}
