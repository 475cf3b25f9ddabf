// Package game adapts the fixed-timestep scheduler to ebiten's run loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tileworld/internal/application/loop"
)

// Simulation is what the adapter presents: a scheduler loop that renders
// into an offscreen surface.
type Simulation interface {
	loop.Loop
	Surface() *ebiten.Image
}

// Game implements ebiten.Game. ebiten calls Update once per display frame
// and the scheduler decides how many fixed ticks that frame runs.
type Game struct {
	sim     Simulation
	sched   *loop.Scheduler
	clock   loop.Clock
	screenW int
	screenH int
	closed  bool
}

// New creates a new Game driving sched from clock.
func New(sim Simulation, sched *loop.Scheduler, clock loop.Clock, screenW, screenH int) *Game {
	return &Game{
		sim:     sim,
		sched:   sched,
		clock:   clock,
		screenW: screenW,
		screenH: screenH,
	}
}

// Update runs one scheduler iteration.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.sched.Stopped() {
		g.Close()
		return ebiten.Termination
	}
	_, err := g.sched.Step(g.clock.Now())
	return err
}

// Draw presents the last rendered frame.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if surface := g.sim.Surface(); surface != nil {
		screen.DrawImage(surface, nil)
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close runs the simulation's cleanup once. It is safe to call after the
// window was closed by the user.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.sim.Cleanup()
}
