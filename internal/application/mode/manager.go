package mode

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tileworld/internal/application/input"
)

// Manager owns the registered modes and tracks which one is active.
// It is not safe for concurrent use.
type Manager struct {
	modes    map[ID]Mode
	active   Mode
	current  ID
	previous ID
	last     Mode
	logger   *log.Logger
}

// NewManager creates an empty manager. A nil logger uses log.Default().
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		modes:  make(map[ID]Mode, len(All())),
		logger: logger,
	}
}

// Register adds a mode to the dispatch table.
func (m *Manager) Register(md Mode) error {
	id := md.ID()
	if !id.Valid() {
		return fmt.Errorf("register mode: invalid id %d", id)
	}
	if _, ok := m.modes[id]; ok {
		return fmt.Errorf("register mode: %s already registered", id)
	}
	m.modes[id] = md
	return nil
}

// SwitchTo deactivates the active mode, remembering it as the last one, and
// activates id. Invalid or unregistered ids are logged and ignored; the
// return value reports whether the switch happened.
func (m *Manager) SwitchTo(id ID) bool {
	if !id.Valid() {
		m.logger.Warn("ignoring switch to invalid mode", "id", int(id))
		return false
	}
	next, ok := m.modes[id]
	if !ok {
		m.logger.Warn("ignoring switch to unregistered mode", "mode", id)
		return false
	}

	m.logger.Debug("switching mode", "from", m.current, "to", id)

	if m.active != nil {
		m.last = m.active
		m.active.OnExit()
	}
	m.previous = m.current
	m.current = id
	m.active = next
	next.OnEnter()
	return true
}

// Current returns the active mode id, or None.
func (m *Manager) Current() ID { return m.current }

// Previous returns the id that was active before the current one, or None.
func (m *Manager) Previous() ID { return m.previous }

// Last returns the mode instance most recently deactivated, or nil.
func (m *Manager) Last() Mode { return m.last }

// Active returns the active mode instance, or nil.
func (m *Manager) Active() Mode { return m.active }

// Get returns a registered mode.
func (m *Manager) Get(id ID) (Mode, bool) {
	md, ok := m.modes[id]
	return md, ok
}

// Input forwards a frame to the active mode.
func (m *Manager) Input(f input.Frame) {
	if m.active != nil {
		m.active.Input(f)
	}
}

// Update forwards one tick to the active mode.
func (m *Manager) Update() error {
	if m.active == nil {
		return nil
	}
	id := m.current
	if err := m.active.Update(); err != nil {
		return fmt.Errorf("update %s: %w", id, err)
	}
	return nil
}

// Render forwards drawing to the active mode.
func (m *Manager) Render(screen *ebiten.Image) {
	if m.active != nil {
		m.active.Render(screen)
	}
}

// Cleanup forwards the shutdown hook to the active mode.
func (m *Manager) Cleanup() {
	if m.active != nil {
		m.active.Cleanup()
	}
}
