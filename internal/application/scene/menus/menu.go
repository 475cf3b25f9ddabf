package menus

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tileworld/internal/application/input"
	"github.com/younwookim/tileworld/internal/application/mode"
	"github.com/younwookim/tileworld/internal/application/scene/hud"
	"github.com/younwookim/tileworld/internal/application/sim"
)

// Menu entries in display order.
const (
	MenuPlay = iota
	MenuSettings
	MenuRestart
	MenuExit
	MenuBack
)

var menuOptions = []string{"Play", "Settings", "Restart", "Exit", "Back"}

// Menu is the in-game menu. Up and Down cycle the entries; the menu key
// returns to play.
type Menu struct {
	screen
	backdrop  Backdrop
	restarter Restarter
	sel       Selector
	from      mode.ID
}

// NewMenu creates the in-game menu drawn over backdrop.
func NewMenu(ctx *sim.Context, backdrop Backdrop, restarter Restarter) *Menu {
	return &Menu{
		screen:    screen{ctx: ctx, id: mode.Menu},
		backdrop:  backdrop,
		restarter: restarter,
		sel:       NewSelector(len(menuOptions)),
		from:      mode.Play,
	}
}

// Selected returns the highlighted entry, or -1.
func (m *Menu) Selected() int { return m.sel.Selected() }

// From returns the mode the Back entry returns to.
func (m *Menu) From() mode.ID { return m.from }

// OnEnter remembers where the menu was opened from. Coming back from the
// settings screen keeps the first origin.
func (m *Menu) OnEnter() {
	m.ctx.MenuUp = true
	if prev := m.ctx.Modes.Previous(); prev.Valid() && prev != mode.Settings {
		m.from = prev
	}
}

// Input implements mode.Mode.
func (m *Menu) Input(f input.Frame) {
	if f.Has(input.ActionMenu) {
		m.ctx.MenuUp = false
		m.ctx.SwitchTo(mode.Play)
		return
	}
	if f.Has(input.ActionDown) {
		m.sel.Next()
	}
	if f.Has(input.ActionUp) {
		m.sel.Prev()
	}
	if !f.Has(input.ActionSelect) {
		return
	}

	switch m.sel.Selected() {
	case MenuPlay:
		m.ctx.SwitchTo(mode.Play)
	case MenuSettings:
		m.ctx.SwitchTo(mode.Settings)
	case MenuRestart:
		if m.restarter != nil {
			m.restarter.Reset()
		}
		m.ctx.SwitchTo(mode.Start)
	case MenuExit:
		m.ctx.RequestStop()
	case MenuBack:
		m.ctx.SwitchTo(m.from)
	}
}

// Render implements mode.Mode.
func (m *Menu) Render(dst *ebiten.Image) {
	drawBackdrop(dst, m.backdrop)
	hud.Overlay(dst, 160)
	hud.Title(dst, "Menu")
	hud.VerticalList(dst, menuOptions, m.sel.Selected(), float64(dst.Bounds().Dy())/3)
	hud.Hint(dst, "up/down to choose, enter to select, M to resume")
}
