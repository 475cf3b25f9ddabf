// Package loop runs the fixed-timestep simulation loop.
//
// Each iteration runs up to MaxUpdates fixed ticks (input then update), drops
// any backlog beyond that, renders once and then idles until the next tick or
// frame is due.
package loop

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Loop is what the scheduler drives.
type Loop interface {
	// Input polls debounced input for the coming tick.
	Input()
	// Update advances the simulation by one tick. An error stops the scheduler.
	Update() error
	// Render draws the current state once.
	Render()
	// Cleanup runs once after an orderly stop.
	Cleanup()
}

// Config holds the scheduler timing.
type Config struct {
	TickRate   int // ticks per second
	FrameRate  int // target renders per second
	MaxUpdates int // ticks per iteration before the backlog is dropped
}

// DefaultConfig returns 60 ticks and frames per second with at most 5 ticks
// per iteration.
func DefaultConfig() Config {
	return Config{TickRate: 60, FrameRate: 60, MaxUpdates: 5}
}

// Scheduler is the top-level fixed-timestep loop.
// Only Stop and Stopped may be called from other goroutines.
type Scheduler struct {
	loop       Loop
	clock      Clock
	logger     *log.Logger
	tick       time.Duration
	frame      time.Duration
	maxUpdates int

	started    bool
	lastUpdate time.Duration
	lastRender time.Duration
	stop       atomic.Bool

	ticks   uint64
	frames  uint64
	dropped uint64

	rateStart  time.Duration
	rateTicks  int
	rateFrames int
}

// New creates a scheduler. A nil logger uses log.Default().
func New(l Loop, clock Clock, cfg Config, logger *log.Logger) (*Scheduler, error) {
	if cfg.TickRate <= 0 || cfg.FrameRate <= 0 {
		return nil, fmt.Errorf("scheduler: tick rate %d and frame rate %d must be positive", cfg.TickRate, cfg.FrameRate)
	}
	if cfg.MaxUpdates <= 0 {
		return nil, fmt.Errorf("scheduler: max updates %d must be positive", cfg.MaxUpdates)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{
		loop:       l,
		clock:      clock,
		logger:     logger,
		tick:       time.Second / time.Duration(cfg.TickRate),
		frame:      time.Second / time.Duration(cfg.FrameRate),
		maxUpdates: cfg.MaxUpdates,
	}, nil
}

// TickInterval returns the fixed tick length.
func (s *Scheduler) TickInterval() time.Duration { return s.tick }

// Ticks returns the number of completed ticks.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Frames returns the number of render passes.
func (s *Scheduler) Frames() uint64 { return s.frames }

// Dropped returns the number of ticks discarded by backlog resyncs.
func (s *Scheduler) Dropped() uint64 { return s.dropped }

// Stop requests the loop to finish its current iteration and exit.
func (s *Scheduler) Stop() { s.stop.Store(true) }

// Stopped reports whether Stop has been called.
func (s *Scheduler) Stopped() bool { return s.stop.Load() }

// Step runs one loop iteration at time now and returns how many ticks ran.
// The first call only anchors the timeline, so it runs no ticks.
func (s *Scheduler) Step(now time.Duration) (int, error) {
	if !s.started {
		s.started = true
		s.lastUpdate = now
		s.lastRender = now
		s.rateStart = now
	}

	n := 0
	for now-s.lastUpdate >= s.tick && n < s.maxUpdates && !s.stop.Load() {
		s.loop.Input()
		if err := s.loop.Update(); err != nil {
			return n, fmt.Errorf("tick %d: %w", s.ticks, err)
		}
		s.lastUpdate += s.tick
		s.ticks++
		s.rateTicks++
		n++
	}

	if behind := now - s.lastUpdate; behind > s.tick {
		skipped := uint64(behind/s.tick) - 1
		s.dropped += skipped
		s.lastUpdate = now - s.tick
		s.logger.Warn("dropping tick backlog", "behind", behind, "skipped", skipped)
	}

	s.loop.Render()
	s.frames++
	s.rateFrames++
	s.lastRender = now

	if now-s.rateStart >= time.Second {
		s.logger.Debug("rate", "tps", s.rateTicks, "fps", s.rateFrames)
		s.rateStart = now
		s.rateTicks = 0
		s.rateFrames = 0
	}

	return n, nil
}

// Run loops until Stop is called or ctx is done, then calls Cleanup once.
// An update error ends the loop immediately and is returned without cleanup.
func (s *Scheduler) Run(ctx context.Context) error {
	for !s.stop.Load() {
		if err := ctx.Err(); err != nil {
			if !errors.Is(err, context.Canceled) {
				s.logger.Warn("scheduler context ended", "error", err)
			}
			break
		}
		if _, err := s.Step(s.clock.Now()); err != nil {
			return err
		}
		s.idle()
	}

	s.loop.Cleanup()
	return nil
}

// idle sleeps while neither a tick nor a frame is due.
func (s *Scheduler) idle() {
	for !s.stop.Load() {
		now := s.clock.Now()
		untilTick := s.tick - (now - s.lastUpdate)
		untilFrame := s.frame - (now - s.lastRender)
		if untilTick <= 0 || untilFrame <= 0 {
			return
		}
		s.clock.Sleep(min(untilTick, untilFrame))
	}
}
