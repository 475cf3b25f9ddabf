package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/tileworld/internal/application/input"
	"github.com/younwookim/tileworld/internal/application/loop"
	"github.com/younwookim/tileworld/internal/application/mode"
	"github.com/younwookim/tileworld/internal/application/scene/menus"
	"github.com/younwookim/tileworld/internal/application/scene/playing"
	"github.com/younwookim/tileworld/internal/application/sim"
	"github.com/younwookim/tileworld/internal/application/system"
	"github.com/younwookim/tileworld/internal/infrastructure/config"
	"github.com/younwookim/tileworld/internal/infrastructure/logging"
)

// appOptions selects what buildApp wires together.
type appOptions struct {
	World    string // overrides game.yaml when set
	LogLevel string // overrides game.yaml when set
	LogOut   io.Writer
	Headless bool
	Source   input.Source
	Clock    loop.Clock

	// TickLimit stops the scheduler after that many ticks; zero means no limit.
	TickLimit uint64
	// Done stops the scheduler once it reports true after a tick.
	Done func() bool
}

// app is a fully wired simulation.
type app struct {
	cfg    config.GameConfig
	world  string
	logger *log.Logger
	ctx    *sim.Context
	play   *playing.Playing
	sched  *loop.Scheduler
}

func newLoader() *config.Loader {
	return config.NewSearchLoader(flagConfigDir, defaultConfigs())
}

// buildApp loads configuration and the world, registers every mode and
// builds the scheduler. The context starts in the Start mode.
func buildApp(loader *config.Loader, opts appOptions) (*app, error) {
	bundle, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	cfg := bundle.Game

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger, err := logging.New(logging.Options{Level: level, Prefix: "tileworld", Output: opts.LogOut})
	if err != nil {
		return nil, err
	}

	name := cfg.World
	if opts.World != "" {
		name = opts.World
	}
	world, err := loader.LoadWorld(name, bundle.Registry)
	if err != nil {
		return nil, err
	}
	logger.Info("world loaded", "name", name, "width", world.Grid.Width(), "height", world.Grid.Height())

	ctx := sim.New(sim.Options{
		ScreenWidth:  cfg.Display.ScreenWidth,
		ScreenHeight: cfg.Display.ScreenHeight,
		TickInterval: time.Second / time.Duration(cfg.Timing.TickRate),
		Source:       opts.Source,
		Logger:       logger,
		Headless:     opts.Headless,
	})

	play := playing.New(ctx, system.LoadStage(name, world, cfg.Tuning()))
	play.SetDebugBoxes(cfg.Debug.ShowBoxes)

	modes := []mode.Mode{
		menus.NewStart(ctx, cfg.Title),
		menus.NewOptions(ctx, controlLines(cfg.Controls)),
		play,
		menus.NewPause(ctx, play),
		menus.NewSettings(ctx, settingRows(cfg, name)),
		menus.NewMenu(ctx, play, play),
		menus.NewInventory(ctx, play),
		menus.NewBattle(ctx, play),
		menus.NewGameOver(ctx, play, play),
	}
	for _, m := range modes {
		if err := ctx.Modes.Register(m); err != nil {
			return nil, err
		}
	}

	clock := opts.Clock
	if clock == nil {
		clock = loop.SystemClock()
	}
	lim := &limiter{Loop: ctx, limit: opts.TickLimit, done: opts.Done}
	sched, err := loop.New(lim, clock, loop.Config{
		TickRate:   cfg.Timing.TickRate,
		FrameRate:  cfg.Timing.FrameRate,
		MaxUpdates: cfg.Timing.MaxUpdates,
	}, logger.WithPrefix("loop"))
	if err != nil {
		return nil, err
	}
	lim.stop = sched.Stop
	ctx.SetStopper(sched.Stop)
	ctx.SwitchTo(mode.Start)

	return &app{
		cfg:    cfg,
		world:  name,
		logger: logger,
		ctx:    ctx,
		play:   play,
		sched:  sched,
	}, nil
}

// limiter stops the scheduler after a fixed number of ticks or when done
// reports true.
type limiter struct {
	loop.Loop
	limit uint64
	done  func() bool
	stop  func()
	ticks uint64
}

func (l *limiter) Update() error {
	if err := l.Loop.Update(); err != nil {
		return err
	}
	l.ticks++
	if (l.limit > 0 && l.ticks >= l.limit) || (l.done != nil && l.done()) {
		l.stop()
	}
	return nil
}

// controlLines describes the key bindings for the Options screen.
func controlLines(controls map[string][]string) []string {
	var lines []string
	for _, a := range input.Actions() {
		keys, ok := controls[a.String()]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-10s %s", a, strings.Join(keys, ", ")))
	}
	return lines
}

func settingRows(cfg config.GameConfig, world string) []menus.Setting {
	return []menus.Setting{
		{Name: "world", Value: world},
		{Name: "screen", Value: fmt.Sprintf("%dx%d x%d", cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Display.Scale)},
		{Name: "tick rate", Value: strconv.Itoa(cfg.Timing.TickRate)},
		{Name: "frame rate", Value: strconv.Itoa(cfg.Timing.FrameRate)},
		{Name: "max speed", Value: strconv.FormatFloat(cfg.Movement.MaxSpeed, 'f', -1, 64)},
		{Name: "log level", Value: cfg.Logging.Level},
	}
}
