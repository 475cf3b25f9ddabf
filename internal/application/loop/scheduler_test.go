package loop

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock only advances when told to or when slept on.
type fakeClock struct {
	now    time.Duration
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Duration { return c.now }
func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now += d
}

// fakeLoop records the order of calls.
type fakeLoop struct {
	events    []string
	updates   int
	renders   int
	cleanups  int
	updateErr error
	onUpdate  func(n int)
}

func (l *fakeLoop) Input() { l.events = append(l.events, "input") }
func (l *fakeLoop) Update() error {
	l.updates++
	l.events = append(l.events, "update")
	if l.onUpdate != nil {
		l.onUpdate(l.updates)
	}
	return l.updateErr
}
func (l *fakeLoop) Render() {
	l.renders++
	l.events = append(l.events, "render")
}
func (l *fakeLoop) Cleanup() { l.cleanups++ }

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func createTestScheduler(t *testing.T) (*Scheduler, *fakeLoop, *fakeClock) {
	t.Helper()
	l := &fakeLoop{}
	c := &fakeClock{}
	s, err := New(l, c, DefaultConfig(), quietLogger())
	require.NoError(t, err)
	return s, l, c
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero tick rate", Config{TickRate: 0, FrameRate: 60, MaxUpdates: 5}},
		{"zero frame rate", Config{TickRate: 60, FrameRate: 0, MaxUpdates: 5}},
		{"zero max updates", Config{TickRate: 60, FrameRate: 60, MaxUpdates: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&fakeLoop{}, &fakeClock{}, tt.cfg, nil)
			assert.Error(t, err)
		})
	}
}

func TestScheduler_FirstStepAnchors(t *testing.T) {
	s, l, _ := createTestScheduler(t)

	n, err := s.Step(5 * time.Second)
	require.NoError(t, err)

	assert.Equal(t, 0, n)
	assert.Equal(t, 0, l.updates)
	assert.Equal(t, 1, l.renders, "render runs even with zero ticks")
}

func TestScheduler_OneTickPerInterval(t *testing.T) {
	s, l, _ := createTestScheduler(t)
	tick := s.TickInterval()

	_, err := s.Step(0)
	require.NoError(t, err)

	n, err := s.Step(tick - 1)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = s.Step(tick)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.Step(3 * tick)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, uint64(3), s.Ticks())
	assert.Equal(t, uint64(4), s.Frames())
	assert.Equal(t, []string{
		"render",
		"render",
		"input", "update", "render",
		"input", "update", "input", "update", "render",
	}, l.events)
}

func TestScheduler_CapsUpdatesBeforeRender(t *testing.T) {
	s, l, _ := createTestScheduler(t)

	_, err := s.Step(0)
	require.NoError(t, err)
	l.events = nil

	n, err := s.Step(time.Second)
	require.NoError(t, err)

	assert.Equal(t, 5, n)
	assert.Equal(t, 5, l.updates)
	require.Len(t, l.events, 11)
	assert.Equal(t, "render", l.events[10])
	assert.Greater(t, s.Dropped(), uint64(0))
}

func TestScheduler_ResyncsAfterBacklog(t *testing.T) {
	s, l, _ := createTestScheduler(t)
	tick := s.TickInterval()

	_, _ = s.Step(0)
	_, _ = s.Step(time.Second)
	require.Equal(t, 5, l.updates)

	// the backlog was dropped: exactly one tick is due at the same instant
	n, err := s.Step(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.Step(time.Second + tick)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestScheduler_UpdateErrorStopsRun(t *testing.T) {
	s, l, _ := createTestScheduler(t)
	l.updateErr = assert.AnError

	err := s.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, l.updates, "failed ticks are not retried")
	assert.Equal(t, 0, l.cleanups)
}

func TestScheduler_RunUntilStop(t *testing.T) {
	s, l, c := createTestScheduler(t)
	l.onUpdate = func(n int) {
		if n == 10 {
			s.Stop()
		}
	}

	err := s.Run(context.Background())

	require.NoError(t, err)
	assert.True(t, s.Stopped())
	assert.Equal(t, 10, l.updates)
	assert.Equal(t, 11, l.renders, "anchor frame plus one per tick")
	assert.Equal(t, 1, l.cleanups)
	assert.Equal(t, "render", l.events[len(l.events)-1], "the stopping iteration still renders")
	assert.NotEmpty(t, c.sleeps)
	for _, d := range c.sleeps {
		assert.LessOrEqual(t, d, s.TickInterval())
	}
}

func TestScheduler_StopBeforeRun(t *testing.T) {
	s, l, _ := createTestScheduler(t)
	s.Stop()

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, 0, l.updates)
	assert.Equal(t, 0, l.renders)
	assert.Equal(t, 1, l.cleanups)
}

func TestScheduler_StopMidBacklog(t *testing.T) {
	s, l, _ := createTestScheduler(t)
	l.onUpdate = func(n int) {
		if n == 2 {
			s.Stop()
		}
	}

	_, _ = s.Step(0)
	n, err := s.Step(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "no ticks after stop")
	assert.Equal(t, 2, l.renders)
}

func TestScheduler_ContextCancel(t *testing.T) {
	s, l, _ := createTestScheduler(t)
	ctx, cancel := context.WithCancel(context.Background())
	l.onUpdate = func(n int) {
		if n == 3 {
			cancel()
		}
	}

	require.NoError(t, s.Run(ctx))
	assert.Equal(t, 3, l.updates)
	assert.Equal(t, 1, l.cleanups)
}

func TestSystemClock(t *testing.T) {
	c := SystemClock()
	a := c.Now()
	c.Sleep(time.Millisecond)
	b := c.Now()
	assert.GreaterOrEqual(t, b-a, time.Millisecond)
}

func TestVirtualClock_RunsUnthrottled(t *testing.T) {
	c := &VirtualClock{}
	l := &fakeLoop{}
	s, err := New(l, c, DefaultConfig(), quietLogger())
	require.NoError(t, err)
	l.onUpdate = func(n int) {
		if n == 120 {
			s.Stop()
		}
	}

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, 120, l.updates)
	assert.Equal(t, uint64(0), s.Dropped())
	assert.Equal(t, 120*s.TickInterval(), c.Now())

	c.Sleep(-time.Second)
	assert.Equal(t, 120*s.TickInterval(), c.Now(), "negative sleeps are ignored")
}
