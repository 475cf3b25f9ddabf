// Package sim holds the state shared by all game modes and adapts it to the
// scheduler's Loop interface.
package sim

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tileworld/internal/application/input"
	"github.com/younwookim/tileworld/internal/application/mode"
	"github.com/younwookim/tileworld/internal/domain/camera"
)

// Flags are the process-wide game flags.
type Flags struct {
	Paused     bool
	MenuUp     bool
	GameOver   bool
	PauseTicks uint64 // ticks spent paused since the last pause began
}

// FrameRecorder receives every polled input frame.
type FrameRecorder interface {
	RecordFrame(f input.Frame)
}

// Options configures a Context.
type Options struct {
	ScreenWidth  int
	ScreenHeight int
	TickInterval time.Duration
	Source       input.Source
	Recorder     FrameRecorder
	Logger       *log.Logger
	// Headless skips rendering entirely.
	Headless bool
}

// Context is the simulation context: the camera, the mode manager and the
// flags they share. It implements loop.Loop.
type Context struct {
	Flags

	Camera *camera.Camera
	Modes  *mode.Manager
	Logger *log.Logger

	width    int
	height   int
	tick     time.Duration
	source   input.Source
	recorder FrameRecorder
	surface  *ebiten.Image
	frame    input.Frame
	stop     func()
}

// New creates a context with an empty mode manager.
func New(opts Options) *Context {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	tick := opts.TickInterval
	if tick <= 0 {
		tick = time.Second / 60
	}

	c := &Context{
		Camera:   camera.New(opts.ScreenWidth, opts.ScreenHeight),
		Modes:    mode.NewManager(logger.WithPrefix("mode")),
		Logger:   logger,
		width:    opts.ScreenWidth,
		height:   opts.ScreenHeight,
		tick:     tick,
		source:   opts.Source,
		recorder: opts.Recorder,
	}
	if !opts.Headless {
		c.surface = ebiten.NewImage(opts.ScreenWidth, opts.ScreenHeight)
	}
	return c
}

// ScreenSize returns the viewport size in pixels.
func (c *Context) ScreenSize() (int, int) { return c.width, c.height }

// TickInterval returns the simulated time per tick.
func (c *Context) TickInterval() time.Duration { return c.tick }

// Surface returns the offscreen render target, or nil when headless.
func (c *Context) Surface() *ebiten.Image { return c.surface }

// Frame returns the input frame of the current tick.
func (c *Context) Frame() input.Frame { return c.frame }

// SetSource replaces the input source.
func (c *Context) SetSource(s input.Source) { c.source = s }

// SetRecorder installs the sink that receives every polled frame.
func (c *Context) SetRecorder(r FrameRecorder) { c.recorder = r }

// SetStopper installs the function RequestStop calls.
func (c *Context) SetStopper(stop func()) { c.stop = stop }

// RequestStop asks the scheduler to stop after the current iteration.
func (c *Context) RequestStop() {
	c.Logger.Info("stop requested")
	if c.stop != nil {
		c.stop()
	}
}

// SwitchTo is shorthand for Modes.SwitchTo.
func (c *Context) SwitchTo(id mode.ID) bool {
	return c.Modes.SwitchTo(id)
}

// Input polls the source and forwards the frame to the active mode.
func (c *Context) Input() {
	var f input.Frame
	if c.source != nil {
		f = c.source.Poll()
	}
	if c.recorder != nil {
		c.recorder.RecordFrame(f)
	}
	c.frame = f
	c.Modes.Input(f)
}

// Update advances the active mode by one tick.
func (c *Context) Update() error {
	if c.Paused {
		c.PauseTicks++
	}
	return c.Modes.Update()
}

// Render draws the active mode into the offscreen surface.
func (c *Context) Render() {
	if c.surface == nil {
		return
	}
	c.surface.Clear()
	c.Modes.Render(c.surface)
}

// Cleanup forwards the shutdown hook to the active mode.
func (c *Context) Cleanup() {
	c.Logger.Debug("cleanup", "mode", c.Modes.Current())
	c.Modes.Cleanup()
}
