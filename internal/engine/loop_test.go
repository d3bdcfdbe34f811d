package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/circuit-arcade/internal/core"
)

const interval = 10 * time.Millisecond

type loopHarness struct {
	t      *testing.T
	clock  *ManualClock
	rules  *stubRules
	ctrl   *Controller[int]
	loop   *Loop
	events chan Event
	cancel context.CancelFunc
	done   chan error
}

func startLoop(t *testing.T, r *stubRules) *loopHarness {
	t.Helper()
	h := &loopHarness{
		t:      t,
		clock:  NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		rules:  r,
		events: make(chan Event, 64),
		done:   make(chan error, 1),
	}
	h.ctrl = NewController[int](r, 1)
	h.loop = NewLoop(h.ctrl,
		WithClock(h.clock),
		WithStepHook(func(e Event) { h.events <- e }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() { h.done <- h.loop.Run(ctx) }()
	t.Cleanup(h.stop)
	return h
}

func (h *loopHarness) stop() {
	h.cancel()
	<-h.done
}

func (h *loopHarness) send(a core.Action) Event {
	h.t.Helper()
	require.NoError(h.t, h.loop.Send(context.Background(), a))
	return h.next()
}

func (h *loopHarness) next() Event {
	h.t.Helper()
	select {
	case e := <-h.events:
		return e
	case <-time.After(time.Second):
		h.t.Fatal("loop produced no event")
		return Event{}
	}
}

func (h *loopHarness) quiet() {
	h.t.Helper()
	select {
	case e := <-h.events:
		h.t.Fatalf("unexpected event %+v", e)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestLoopNoTicksUntilStart(t *testing.T) {
	h := startLoop(t, &stubRules{})

	h.clock.Advance(5 * interval)
	h.quiet()
	assert.Equal(t, 0, h.clock.Pending())

	e := h.send(core.ActionStart)
	assert.Equal(t, EventInput, e.Kind)
	assert.True(t, e.Accepted)
	assert.Equal(t, 1, h.clock.Pending())
}

func TestLoopTicksOncePerInterval(t *testing.T) {
	h := startLoop(t, &stubRules{})
	h.send(core.ActionStart)

	for i := 0; i < 3; i++ {
		h.clock.Advance(interval)
		e := h.next()
		assert.Equal(t, EventTick, e.Kind)
	}
	assert.Equal(t, 3, h.rules.steps)
}

func TestLoopNoCatchUp(t *testing.T) {
	h := startLoop(t, &stubRules{})
	h.send(core.ActionStart)

	h.clock.Advance(10 * interval)
	h.next()
	h.quiet()
	assert.Equal(t, 1, h.rules.steps)
}

func TestLoopPauseStopsClock(t *testing.T) {
	h := startLoop(t, &stubRules{pausable: true})
	h.send(core.ActionStart)
	h.clock.Advance(interval)
	h.next()

	e := h.send(core.ActionPause)
	require.True(t, e.Accepted)
	assert.Equal(t, 0, h.clock.Pending())

	h.clock.Advance(5 * interval)
	h.quiet()
	assert.Equal(t, 1, h.rules.steps)

	h.send(core.ActionPause)
	assert.Equal(t, 1, h.clock.Pending())
	h.clock.Advance(interval)
	h.next()
	assert.Equal(t, 2, h.rules.steps)
}

func TestLoopRestartDiscardsArmedTick(t *testing.T) {
	h := startLoop(t, &stubRules{})
	h.send(core.ActionStart)
	h.clock.Advance(interval / 2)

	h.send(core.ActionRestart)
	assert.Equal(t, 1, h.clock.Pending(), "restart re-arms a single timer")

	// the old half-elapsed deadline must not fire
	h.clock.Advance(interval / 2)
	h.quiet()
	assert.Equal(t, 0, h.rules.steps)

	h.clock.Advance(interval / 2)
	h.next()
	assert.Equal(t, 1, h.rules.steps)
}

func TestLoopStopsAtGameOver(t *testing.T) {
	h := startLoop(t, &stubRules{overAt: 2})
	h.send(core.ActionStart)

	h.clock.Advance(interval)
	h.next()
	h.clock.Advance(interval)
	h.next()

	assert.Equal(t, core.PhaseGameOver, h.ctrl.Phase())
	assert.Equal(t, 0, h.clock.Pending())
}

func TestLoopInputOrder(t *testing.T) {
	h := startLoop(t, &stubRules{})
	h.send(core.ActionStart)

	h.send(core.ActionLeft)
	e := h.send(core.ActionUp)
	assert.False(t, e.Accepted)
	h.send(core.ActionLeft)

	assert.Equal(t, []core.Action{core.ActionLeft, core.ActionLeft}, h.rules.applied)
}

func TestLoopRunReturnsContextError(t *testing.T) {
	c := NewController[int](&stubRules{}, 1)
	l := NewLoop(c, WithClock(NewManualClock(time.Now())))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, l.Run(ctx), context.Canceled)
}

func TestManualClockStop(t *testing.T) {
	c := NewManualClock(time.Now())
	tm := c.NewTimer(interval)
	assert.Equal(t, 1, c.Pending())
	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())

	c.Advance(interval)
	select {
	case <-tm.C():
		t.Fatal("stopped timer fired")
	default:
	}
}

func TestScaledClock(t *testing.T) {
	base := NewManualClock(time.Now())
	c := ScaledClock{Base: base, Factor: 10}
	tm := c.NewTimer(100 * time.Millisecond)

	base.Advance(10 * time.Millisecond)
	select {
	case <-tm.C():
	default:
		t.Fatal("scaled timer did not fire")
	}
}

func TestLoopTrySendFull(t *testing.T) {
	l := NewLoop(NewController[int](&stubRules{}, 1), WithInputBuffer(1))

	assert.True(t, l.TrySend(core.ActionStart))
	assert.False(t, l.TrySend(core.ActionLeft), "queue holds one action")
}
