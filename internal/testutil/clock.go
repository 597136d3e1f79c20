package testutil

import (
	"sort"
	"sync"
	"time"

	"github.com/akyairhashvil/countdown/internal/countdown"
)

// FakeClock is a controllable countdown.Clock. Timers only fire inside
// Advance, synchronously and in deadline order.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*FakeTimer
}

type FakeTimer struct {
	clock   *FakeClock
	when    time.Time
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// NewFakeClock returns a FakeClock starting at the provided instant.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (fc *FakeClock) Now() time.Time {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.now
}

func (fc *FakeClock) AfterFunc(d time.Duration, fn func()) countdown.Timer {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	fc.seq++
	t := &FakeTimer{
		clock: fc,
		when:  fc.now.Add(d),
		seq:   fc.seq,
		fn:    fn,
	}
	fc.timers = append(fc.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer that comes due
// on the way. Timers scheduled by a firing callback are fired too when
// their deadline falls inside the window.
func (fc *FakeClock) Advance(d time.Duration) {
	fc.mu.Lock()
	target := fc.now.Add(d)
	fc.mu.Unlock()

	for {
		fc.mu.Lock()
		next := fc.nextDueLocked(target)
		if next == nil {
			fc.now = target
			fc.mu.Unlock()
			return
		}
		if next.when.After(fc.now) {
			fc.now = next.when
		}
		next.fired = true
		fc.removeLocked(next)
		fn := next.fn
		fc.mu.Unlock()

		fn()
	}
}

// Pending reports how many timers are scheduled and not yet fired or stopped.
func (fc *FakeClock) Pending() int {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return len(fc.timers)
}

func (fc *FakeClock) nextDueLocked(target time.Time) *FakeTimer {
	due := make([]*FakeTimer, 0, len(fc.timers))
	for _, t := range fc.timers {
		if !t.when.After(target) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].when.Equal(due[j].when) {
			return due[i].seq < due[j].seq
		}
		return due[i].when.Before(due[j].when)
	})
	return due[0]
}

func (fc *FakeClock) removeLocked(t *FakeTimer) {
	for i, cur := range fc.timers {
		if cur == t {
			fc.timers = append(fc.timers[:i], fc.timers[i+1:]...)
			return
		}
	}
}

func (t *FakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.clock.removeLocked(t)
	return true
}
