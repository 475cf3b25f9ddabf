package game

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tileworld/internal/application/loop"
)

// mockSimulation is a test double for Simulation
type mockSimulation struct {
	inputCalled   int
	updateCalled  int
	renderCalled  int
	cleanupCalled int
	updateErr     error
	surface       *ebiten.Image
}

func (m *mockSimulation) Input() { m.inputCalled++ }
func (m *mockSimulation) Update() error {
	m.updateCalled++
	return m.updateErr
}
func (m *mockSimulation) Render()                { m.renderCalled++ }
func (m *mockSimulation) Cleanup()               { m.cleanupCalled++ }
func (m *mockSimulation) Surface() *ebiten.Image { return m.surface }

type manualClock struct{ now time.Duration }

func (c *manualClock) Now() time.Duration    { return c.now }
func (c *manualClock) Sleep(d time.Duration) { c.now += d }

func createTestGame(t *testing.T) (*Game, *mockSimulation, *manualClock, *loop.Scheduler) {
	t.Helper()
	sim := &mockSimulation{}
	clock := &manualClock{}
	sched, err := loop.New(sim, clock, loop.DefaultConfig(), log.New(io.Discard))
	require.NoError(t, err)
	return New(sim, sched, clock, 320, 240), sim, clock, sched
}

func TestGame_Update_StepsScheduler(t *testing.T) {
	g, sim, clock, sched := createTestGame(t)

	require.NoError(t, g.Update())
	assert.Equal(t, 0, sim.updateCalled, "first frame anchors the timeline")
	assert.Equal(t, 1, sim.renderCalled)

	clock.now += 2 * sched.TickInterval()
	require.NoError(t, g.Update())
	assert.Equal(t, 2, sim.updateCalled)
	assert.Equal(t, 2, sim.inputCalled)
	assert.Equal(t, 2, sim.renderCalled)
}

func TestGame_UpdateError(t *testing.T) {
	g, sim, clock, sched := createTestGame(t)
	sim.updateErr = errors.New("boom")

	require.NoError(t, g.Update())
	clock.now += sched.TickInterval()

	err := g.Update()
	assert.Error(t, err, "Error should propagate from the simulation")
	assert.Equal(t, 0, sim.cleanupCalled)
}

func TestGame_StopTerminates(t *testing.T) {
	g, sim, _, sched := createTestGame(t)
	sched.Stop()

	err := g.Update()
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, 1, sim.cleanupCalled)

	g.Close()
	assert.Equal(t, 1, sim.cleanupCalled, "cleanup runs once")
}

func TestGame_Draw(t *testing.T) {
	g, sim, _, _ := createTestGame(t)
	screen := ebiten.NewImage(320, 240)

	assert.NotPanics(t, func() { g.Draw(screen) }, "nil surface draws nothing")

	sim.surface = ebiten.NewImage(320, 240)
	assert.NotPanics(t, func() { g.Draw(screen) })
}

func TestGame_Layout(t *testing.T) {
	g, _, _, _ := createTestGame(t)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}
