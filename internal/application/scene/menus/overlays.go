package menus

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tileworld/internal/application/input"
	"github.com/younwookim/tileworld/internal/application/mode"
	"github.com/younwookim/tileworld/internal/application/scene/hud"
	"github.com/younwookim/tileworld/internal/application/sim"
)

// Pause freezes the stage. The pause key resumes, the menu key opens the menu.
type Pause struct {
	screen
	backdrop Backdrop
}

// NewPause creates the pause overlay.
func NewPause(ctx *sim.Context, backdrop Backdrop) *Pause {
	return &Pause{screen: screen{ctx: ctx, id: mode.Pause}, backdrop: backdrop}
}

// OnEnter sets the paused flag. The menu is closed whenever Pause is showing.
func (p *Pause) OnEnter() {
	p.ctx.Paused = true
	p.ctx.MenuUp = false
}

// Input implements mode.Mode.
func (p *Pause) Input(f input.Frame) {
	switch {
	case f.Has(input.ActionPause) && p.ctx.Paused:
		p.ctx.Paused = false
		p.ctx.SwitchTo(mode.Play)
	case f.Has(input.ActionMenu) && !p.ctx.MenuUp:
		p.ctx.MenuUp = true
		p.ctx.SwitchTo(mode.Menu)
	}
}

// Render implements mode.Mode.
func (p *Pause) Render(dst *ebiten.Image) {
	drawBackdrop(dst, p.backdrop)
	hud.Overlay(dst, 128)
	hud.Title(dst, "Paused")
	secs := float64(p.ctx.PauseTicks) * p.ctx.TickInterval().Seconds()
	hud.Centered(dst, fmt.Sprintf("%.1fs", secs), float64(dst.Bounds().Dy())/2, hud.BodySize, false, hud.ColorDim)
	hud.Hint(dst, "P to resume, M for menu")
}

// Inventory is a placeholder overlay. Inventory or Back returns to play.
type Inventory struct {
	screen
	backdrop Backdrop
}

// NewInventory creates the inventory overlay.
func NewInventory(ctx *sim.Context, backdrop Backdrop) *Inventory {
	return &Inventory{screen: screen{ctx: ctx, id: mode.Inventory}, backdrop: backdrop}
}

// Input implements mode.Mode.
func (i *Inventory) Input(f input.Frame) {
	if f.Has(input.ActionInventory) || f.Has(input.ActionBack) {
		i.ctx.SwitchTo(mode.Play)
	}
}

// Render implements mode.Mode.
func (i *Inventory) Render(dst *ebiten.Image) {
	drawBackdrop(dst, i.backdrop)
	hud.Overlay(dst, 160)
	hud.Title(dst, "Inventory")
	hud.Centered(dst, "(empty)", float64(dst.Bounds().Dy())/2, hud.BodySize, false, hud.ColorDim)
	hud.Hint(dst, "I or escape to close")
}

// Battle is shown when the player steps onto an encounter tile. Select or
// Back returns to play.
type Battle struct {
	screen
	backdrop Backdrop
	count    int
}

// NewBattle creates the encounter screen.
func NewBattle(ctx *sim.Context, backdrop Backdrop) *Battle {
	return &Battle{screen: screen{ctx: ctx, id: mode.Battle}, backdrop: backdrop}
}

// Count returns how many encounters have been shown.
func (b *Battle) Count() int { return b.count }

// OnEnter implements mode.Mode.
func (b *Battle) OnEnter() {
	b.count++
	b.ctx.Logger.Debug("battle started", "count", b.count)
}

// Input implements mode.Mode.
func (b *Battle) Input(f input.Frame) {
	if f.Has(input.ActionSelect) || f.Has(input.ActionBack) {
		b.ctx.SwitchTo(mode.Play)
	}
}

// Render implements mode.Mode.
func (b *Battle) Render(dst *ebiten.Image) {
	drawBackdrop(dst, b.backdrop)
	hud.Overlay(dst, 200)
	hud.Title(dst, "Encounter!")
	hud.Hint(dst, "enter to flee")
}

// GameOver is shown once the player has died. Select resets the world and
// returns to the start screen.
type GameOver struct {
	screen
	backdrop  Backdrop
	restarter Restarter
}

// NewGameOver creates the game over screen.
func NewGameOver(ctx *sim.Context, backdrop Backdrop, restarter Restarter) *GameOver {
	return &GameOver{
		screen:    screen{ctx: ctx, id: mode.GameOver},
		backdrop:  backdrop,
		restarter: restarter,
	}
}

// OnEnter sets the game over flag.
func (g *GameOver) OnEnter() {
	g.ctx.GameOver = true
}

// Input implements mode.Mode.
func (g *GameOver) Input(f input.Frame) {
	if !f.Has(input.ActionSelect) {
		return
	}
	if g.restarter != nil {
		g.restarter.Reset()
	}
	g.ctx.GameOver = false
	g.ctx.SwitchTo(mode.Start)
}

// Render implements mode.Mode.
func (g *GameOver) Render(dst *ebiten.Image) {
	drawBackdrop(dst, g.backdrop)
	hud.Overlay(dst, 180)
	hud.Centered(dst, "GAME OVER", float64(dst.Bounds().Dy())/3, hud.TitleSize, true, hud.ColorDanger)
	hud.Hint(dst, "enter to return to the title")
}
