package menus

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tileworld/internal/application/input"
	"github.com/younwookim/tileworld/internal/application/mode"
	"github.com/younwookim/tileworld/internal/application/scene/hud"
	"github.com/younwookim/tileworld/internal/application/sim"
)

var startOptions = []string{"Play", "Options"}

// Start is the title screen. Left and Right choose between playing and the
// options screen.
type Start struct {
	screen
	title string
	sel   Selector
}

// NewStart creates the title screen.
func NewStart(ctx *sim.Context, title string) *Start {
	return &Start{
		screen: screen{ctx: ctx, id: mode.Start},
		title:  title,
		sel:    NewSelector(len(startOptions)),
	}
}

// Selected returns the highlighted option index, or -1.
func (s *Start) Selected() int { return s.sel.Selected() }

// OnEnter clears every game flag.
func (s *Start) OnEnter() {
	s.ctx.Paused = false
	s.ctx.MenuUp = false
	s.ctx.GameOver = false
}

// Input implements mode.Mode.
func (s *Start) Input(f input.Frame) {
	if f.Has(input.ActionRight) {
		s.sel.Next()
	}
	if f.Has(input.ActionLeft) {
		s.sel.Prev()
	}
	if f.Has(input.ActionSelect) {
		switch s.sel.Selected() {
		case 0:
			s.ctx.SwitchTo(mode.Play)
		case 1:
			s.ctx.SwitchTo(mode.Options)
		}
	}
}

// Render implements mode.Mode.
func (s *Start) Render(dst *ebiten.Image) {
	dst.Fill(hud.ColorBackground)
	hud.Title(dst, s.title)
	hud.HorizontalList(dst, startOptions, s.sel.Selected(), float64(dst.Bounds().Dy())/2)
	hud.Hint(dst, "left/right to choose, enter to select")
}

// Options shows static game information. Back returns to the previous mode.
type Options struct {
	screen
	lines []string
}

// NewOptions creates the options screen listing lines.
func NewOptions(ctx *sim.Context, lines []string) *Options {
	return &Options{screen: screen{ctx: ctx, id: mode.Options}, lines: lines}
}

// Input implements mode.Mode.
func (o *Options) Input(f input.Frame) {
	if f.Has(input.ActionBack) {
		o.ctx.SwitchTo(o.ctx.Modes.Previous())
	}
}

// Render implements mode.Mode.
func (o *Options) Render(dst *ebiten.Image) {
	dst.Fill(hud.ColorBackground)
	hud.Title(dst, "Options")
	for i, l := range o.lines {
		hud.Centered(dst, l, float64(dst.Bounds().Dy())/3+float64(i)*hud.BodySize*1.5, hud.BodySize, false, hud.ColorText)
	}
	hud.Hint(dst, "escape to go back")
}

// Setting is one name/value row on the settings screen.
type Setting struct {
	Name  string
	Value string
}

// Settings shows the active configuration. Back returns to the previous mode.
type Settings struct {
	screen
	rows []Setting
}

// NewSettings creates the settings screen.
func NewSettings(ctx *sim.Context, rows []Setting) *Settings {
	return &Settings{screen: screen{ctx: ctx, id: mode.Settings}, rows: rows}
}

// Input implements mode.Mode.
func (s *Settings) Input(f input.Frame) {
	if f.Has(input.ActionBack) {
		s.ctx.SwitchTo(s.ctx.Modes.Previous())
	}
}

// Render implements mode.Mode.
func (s *Settings) Render(dst *ebiten.Image) {
	dst.Fill(hud.ColorBackground)
	hud.Title(dst, "Settings")
	y := float64(dst.Bounds().Dy()) / 3
	for i, r := range s.rows {
		line := fmt.Sprintf("%-14s %s", r.Name, r.Value)
		hud.Centered(dst, line, y+float64(i)*hud.SmallSize*1.6, hud.SmallSize, false, hud.ColorText)
	}
	hud.Hint(dst, "escape to go back")
}
