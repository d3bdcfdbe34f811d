package engine

import (
	"sync"
	"time"
)

// Clock is the time source used by Loop.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
}

// Timer is a one-shot timer. C delivers at most one value.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns the current time with monotonic clock reading.
func (RealClock) Now() time.Time {
	return time.Now()
}

// NewTimer wraps time.NewTimer.
func (RealClock) NewTimer(d time.Duration) Timer {
	return realTimer{time.NewTimer(d)}
}

type realTimer struct {
	t *time.Timer
}

func (r realTimer) C() <-chan time.Time { return r.t.C }
func (r realTimer) Stop() bool          { return r.t.Stop() }

// ManualClock is a controllable time source for tests. Timers fire only when
// Advance moves the clock past their deadline.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current mocked time.
func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// NewTimer arms a timer that fires once the clock reaches now+d.
func (m *ManualClock) NewTimer(d time.Duration) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{
		clock:    m,
		deadline: m.now.Add(d),
		ch:       make(chan time.Time, 1),
	}
	m.timers = append(m.timers, t)
	return t
}

// Pending returns the number of armed timers.
func (m *ManualClock) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Advance moves the clock forward by d and fires every timer whose deadline
// has passed.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	kept := m.timers[:0]
	for _, t := range m.timers {
		if !t.deadline.After(m.now) {
			t.ch <- m.now
			continue
		}
		kept = append(kept, t)
	}
	m.timers = kept
}

func (m *ManualClock) remove(t *manualTimer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return true
		}
	}
	return false
}

type manualTimer struct {
	clock    *ManualClock
	deadline time.Time
	ch       chan time.Time
}

func (t *manualTimer) C() <-chan time.Time { return t.ch }
func (t *manualTimer) Stop() bool          { return t.clock.remove(t) }

// ScaledClock runs timers faster than wall time by Factor. Headless
// simulations use it to play a full session in seconds.
type ScaledClock struct {
	Base   Clock
	Factor float64
}

// Now returns the base clock's time.
func (s ScaledClock) Now() time.Time {
	return s.base().Now()
}

// NewTimer arms a base timer for d divided by the factor.
func (s ScaledClock) NewTimer(d time.Duration) Timer {
	if s.Factor > 0 {
		d = time.Duration(float64(d) / s.Factor)
	}
	return s.base().NewTimer(d)
}

func (s ScaledClock) base() Clock {
	if s.Base == nil {
		return RealClock{}
	}
	return s.Base
}
