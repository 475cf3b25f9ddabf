package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/tileworld/internal/application/game"
	"github.com/younwookim/tileworld/internal/application/input"
	"github.com/younwookim/tileworld/internal/application/loop"
	"github.com/younwookim/tileworld/internal/application/replay"
)

var (
	flagRunWorld  string
	flagRunRecord string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window and play",
	Long: `Open a window and play the configured world.

The scheduler keeps its own fixed tick rate; ebiten only paces the frames.

Examples:
  tileworld run
  tileworld run --world map3 --record session.json`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	runCmd.Flags().StringVar(&flagRunWorld, "world", "", "World to load (default: from game.yaml)")
	runCmd.Flags().StringVar(&flagRunRecord, "record", "", "Record input to file (e.g., --record replay.json)")
}

func runWindow(cmd *cobra.Command, args []string) error {
	loader := newLoader()
	clock := loop.SystemClock()

	a, err := buildApp(loader, appOptions{
		World:    flagRunWorld,
		LogLevel: flagLogLevel,
		Clock:    clock,
	})
	if err != nil {
		return err
	}
	bindings, err := input.ParseBindings(a.cfg.Controls)
	if err != nil {
		return err
	}
	a.ctx.SetSource(input.NewKeyboard(bindings))
	var rec *replay.Recorder
	if flagRunRecord != "" {
		rec = replay.NewRecorder(a.world, a.cfg.Timing.TickRate)
		a.ctx.SetRecorder(rec)
	}

	w, h := a.ctx.ScreenSize()
	g := game.New(a.ctx, a.sched, clock, w, h)

	ebiten.SetWindowSize(w*a.cfg.Display.Scale, h*a.cfg.Display.Scale)
	ebiten.SetWindowTitle(a.cfg.Title)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	runErr := ebiten.RunGame(g)
	g.Close()
	if rec != nil {
		saveRecording(a, rec, flagRunRecord)
	}
	return runErr
}

// saveRecording writes rec to filename, logging the outcome.
func saveRecording(a *app, rec *replay.Recorder, filename string) {
	rec.Stop()
	if err := rec.Save(filename); err != nil {
		a.logger.Error("failed to save recording", "file", filename, "err", err)
		return
	}
	a.logger.Info("recording saved", "file", filename, "frames", rec.FrameCount())
}
