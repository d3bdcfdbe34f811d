package engine

import (
	"context"
	"time"

	"github.com/vovakirdan/circuit-arcade/internal/core"
)

// Driver is the part of a controller the loop needs. *Controller[S]
// satisfies it for every S.
type Driver interface {
	Dispatch(a core.Action) bool
	Tick() bool
	Running() bool
	Interval() time.Duration
	Generation() uint64
}

// EventKind tells what the loop just processed.
type EventKind int

const (
	EventTick EventKind = iota
	EventInput
)

// Event is reported to the step hook after the loop processed a tick or an
// input and re-armed its timer.
type Event struct {
	Kind     EventKind
	Action   core.Action // EventInput only
	Accepted bool
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithClock replaces the real clock.
func WithClock(c Clock) LoopOption {
	return func(l *Loop) { l.clock = c }
}

// WithStepHook registers fn to be called from the loop goroutine after every
// processed event.
func WithStepHook(fn func(Event)) LoopOption {
	return func(l *Loop) { l.onStep = fn }
}

// WithInputBuffer sets the capacity of the input queue.
func WithInputBuffer(n int) LoopOption {
	return func(l *Loop) { l.input = make(chan core.Action, n) }
}

// Loop drives a controller from a single goroutine. Ticks and inputs are
// serialized through one select, so they reach the controller in the order
// they arrive.
type Loop struct {
	driver Driver
	clock  Clock
	input  chan core.Action
	onStep func(Event)
}

// NewLoop creates a loop for d.
func NewLoop(d Driver, opts ...LoopOption) *Loop {
	l := &Loop{
		driver: d,
		clock:  RealClock{},
		input:  make(chan core.Action, 16),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Send queues an action. It blocks while the queue is full.
func (l *Loop) Send(ctx context.Context, a core.Action) error {
	select {
	case l.input <- a:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySend queues an action without blocking and reports whether it fit.
// It is safe to call from the step hook.
func (l *Loop) TrySend(a core.Action) bool {
	select {
	case l.input <- a:
		return true
	default:
		return false
	}
}

// Run processes ticks and inputs until ctx is cancelled, then returns
// ctx.Err(). The timer is armed only while the driver is running; a phase
// change re-arms it with a fresh full interval, so ticks missed while paused
// are never replayed.
func (l *Loop) Run(ctx context.Context) error {
	var (
		timer Timer
		armed uint64
	)
	arm := func() {
		if timer != nil {
			timer.Stop()
			timer = nil
		}
		if l.driver.Running() {
			timer = l.clock.NewTimer(l.driver.Interval())
		}
		armed = l.driver.Generation()
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	arm()
	for {
		var fire <-chan time.Time
		if timer != nil {
			fire = timer.C()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case a := <-l.input:
			ok := l.driver.Dispatch(a)
			if l.driver.Generation() != armed {
				arm()
			}
			l.notify(Event{Kind: EventInput, Action: a, Accepted: ok})

		case <-fire:
			timer = nil
			ok := l.driver.Tick()
			arm()
			l.notify(Event{Kind: EventTick, Accepted: ok})
		}
	}
}

func (l *Loop) notify(e Event) {
	if l.onStep != nil {
		l.onStep(e)
	}
}
