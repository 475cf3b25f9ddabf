package mode

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tileworld/internal/application/input"
)

// mockMode is a test double for Mode interface
type mockMode struct {
	id            ID
	enterCalled   int
	exitCalled    int
	inputCalled   int
	updateCalled  int
	renderCalled  int
	cleanupCalled int
	lastFrame     input.Frame
	updateErr     error
	onInput       func(f input.Frame)
}

func (m *mockMode) ID() ID    { return m.id }
func (m *mockMode) OnEnter() { m.enterCalled++ }
func (m *mockMode) OnExit()  { m.exitCalled++ }
func (m *mockMode) Input(f input.Frame) {
	m.inputCalled++
	m.lastFrame = f
	if m.onInput != nil {
		m.onInput(f)
	}
}
func (m *mockMode) Update() error {
	m.updateCalled++
	return m.updateErr
}
func (m *mockMode) Render(screen *ebiten.Image) { m.renderCalled++ }
func (m *mockMode) Cleanup()                    { m.cleanupCalled++ }

func createTestManager(t *testing.T) (*Manager, map[ID]*mockMode, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	m := NewManager(logger)
	modes := make(map[ID]*mockMode)
	for _, id := range All() {
		md := &mockMode{id: id}
		modes[id] = md
		require.NoError(t, m.Register(md))
	}
	return m, modes, &buf
}

func TestManager_NoActiveModeIsNoop(t *testing.T) {
	m := NewManager(nil)

	assert.NotPanics(t, func() {
		m.Input(input.Frame(0).With(input.ActionSelect))
		require.NoError(t, m.Update())
		m.Render(nil)
		m.Cleanup()
	})
	assert.Equal(t, None, m.Current())
	assert.Equal(t, None, m.Previous())
	assert.Nil(t, m.Active())
	assert.Nil(t, m.Last())
}

func TestManager_SwitchTo(t *testing.T) {
	m, modes, _ := createTestManager(t)

	require.True(t, m.SwitchTo(Play))
	assert.Equal(t, Play, m.Current())
	assert.Equal(t, None, m.Previous())
	assert.Equal(t, 1, modes[Play].enterCalled)
	assert.Nil(t, m.Last())

	require.True(t, m.SwitchTo(Pause))
	assert.Equal(t, Pause, m.Current())
	assert.Equal(t, Play, m.Previous())
	assert.Equal(t, 1, modes[Play].exitCalled)
	assert.Equal(t, 1, modes[Pause].enterCalled)
	assert.Same(t, modes[Play], m.Last())
}

func TestManager_BackNavigation(t *testing.T) {
	m, _, _ := createTestManager(t)

	m.SwitchTo(Play)
	m.SwitchTo(Pause)
	m.SwitchTo(Menu)
	assert.Equal(t, Pause, m.Previous())

	m.SwitchTo(m.Previous())
	assert.Equal(t, Pause, m.Current())
	assert.Equal(t, Menu, m.Previous())
}

func TestManager_InvalidIDIgnored(t *testing.T) {
	m, modes, buf := createTestManager(t)
	m.SwitchTo(Play)

	for _, id := range []ID{None, ID(10), ID(-1)} {
		assert.False(t, m.SwitchTo(id))
	}

	assert.Equal(t, Play, m.Current())
	assert.Equal(t, None, m.Previous())
	assert.Equal(t, 0, modes[Play].exitCalled)
	assert.Contains(t, buf.String(), "invalid mode")
}

func TestManager_UnregisteredIDIgnored(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(log.New(&buf))
	play := &mockMode{id: Play}
	require.NoError(t, m.Register(play))
	m.SwitchTo(Play)

	assert.False(t, m.SwitchTo(Battle))
	assert.Equal(t, Play, m.Current())
	assert.Contains(t, buf.String(), "unregistered")
}

func TestManager_Register(t *testing.T) {
	m := NewManager(nil)

	require.NoError(t, m.Register(&mockMode{id: Start}))
	assert.Error(t, m.Register(&mockMode{id: Start}), "duplicate")
	assert.Error(t, m.Register(&mockMode{id: ID(0)}), "invalid")

	md, ok := m.Get(Start)
	assert.True(t, ok)
	assert.Equal(t, Start, md.ID())

	_, ok = m.Get(Play)
	assert.False(t, ok)
}

func TestManager_DispatchOnlyToActive(t *testing.T) {
	m, modes, _ := createTestManager(t)
	m.SwitchTo(Menu)

	f := input.Frame(0).With(input.ActionDown)
	m.Input(f)
	require.NoError(t, m.Update())
	m.Render(nil)
	m.Cleanup()

	for id, md := range modes {
		if id == Menu {
			assert.Equal(t, 1, md.inputCalled)
			assert.Equal(t, f, md.lastFrame)
			assert.Equal(t, 1, md.updateCalled)
			assert.Equal(t, 1, md.renderCalled)
			assert.Equal(t, 1, md.cleanupCalled)
			continue
		}
		assert.Zero(t, md.inputCalled+md.updateCalled+md.renderCalled+md.cleanupCalled, id.String())
	}
}

func TestManager_UpdateErrorPropagates(t *testing.T) {
	m, modes, _ := createTestManager(t)
	modes[Play].updateErr = assert.AnError
	m.SwitchTo(Play)

	err := m.Update()
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "Play")
}

func TestManager_SwitchDuringInput(t *testing.T) {
	m, modes, _ := createTestManager(t)
	modes[Play].onInput = func(f input.Frame) {
		if f.Has(input.ActionPause) {
			m.SwitchTo(Pause)
		}
	}
	m.SwitchTo(Play)

	m.Input(input.Frame(0).With(input.ActionPause))
	require.NoError(t, m.Update())

	assert.Equal(t, Pause, m.Current())
	assert.Equal(t, 0, modes[Play].updateCalled)
	assert.Equal(t, 1, modes[Pause].updateCalled)
}
