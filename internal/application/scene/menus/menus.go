// Package menus implements the non-gameplay modes: the start screen, the
// in-game menu and the overlays drawn on top of the stage.
package menus

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tileworld/internal/application/mode"
	"github.com/younwookim/tileworld/internal/application/scene/hud"
	"github.com/younwookim/tileworld/internal/application/sim"
)

// Backdrop draws the scene an overlay is shown on top of.
type Backdrop interface {
	Render(screen *ebiten.Image)
}

// Restarter puts the game world back to its initial state.
type Restarter interface {
	Reset()
}

// Selector is a wrapping cursor over a fixed number of options.
// It starts with nothing selected.
type Selector struct {
	n   int
	cur int
}

// NewSelector creates a cursor over n options.
func NewSelector(n int) Selector {
	return Selector{n: n, cur: -1}
}

// Next moves forward, wrapping to the first option.
func (s *Selector) Next() {
	s.cur++
	if s.cur >= s.n {
		s.cur = 0
	}
}

// Prev moves back, wrapping to the last option.
func (s *Selector) Prev() {
	s.cur--
	if s.cur < 0 {
		s.cur = s.n - 1
	}
}

// Selected returns the current option, or -1 when none is selected.
func (s *Selector) Selected() int { return s.cur }

// Clear deselects.
func (s *Selector) Clear() { s.cur = -1 }

// screen holds what every menu mode needs.
type screen struct {
	ctx *sim.Context
	id  mode.ID
}

func (s *screen) ID() mode.ID   { return s.id }
func (s *screen) OnEnter()      {}
func (s *screen) OnExit()       {}
func (s *screen) Update() error { return nil }
func (s *screen) Cleanup()      {}

// drawBackdrop renders b if present, otherwise clears to the background.
func drawBackdrop(dst *ebiten.Image, b Backdrop) {
	if b == nil {
		dst.Fill(hud.ColorBackground)
		return
	}
	b.Render(dst)
}
