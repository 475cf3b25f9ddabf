// Package playing provides the main gameplay mode.
package playing

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/tileworld/internal/application/input"
	"github.com/younwookim/tileworld/internal/application/mode"
	"github.com/younwookim/tileworld/internal/application/scene/hud"
	"github.com/younwookim/tileworld/internal/application/sim"
	"github.com/younwookim/tileworld/internal/application/system"
	"github.com/younwookim/tileworld/internal/domain/entity"
	"github.com/younwookim/tileworld/internal/domain/tile"
)

// Colors for rendering
var (
	colorSolid     = color.RGBA{80, 80, 100, 255}
	colorHazard    = color.RGBA{120, 70, 40, 255}
	colorEncounter = color.RGBA{220, 120, 200, 255}
	colorGround    = color.RGBA{70, 140, 60, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorDying     = color.RGBA{200, 50, 50, 255}
	colorBox       = color.RGBA{200, 200, 100, 128}
)

var tileColors = map[tile.ID]color.RGBA{
	tile.Grass0: {70, 140, 60, 255},
	tile.Grass1: {80, 150, 70, 255},
	tile.Grass2: {60, 130, 55, 255},
	tile.Brick0: {150, 70, 50, 255},
	tile.Brick1: {140, 65, 45, 255},
	tile.Brick2: {130, 60, 40, 255},
	tile.Path0:  {190, 170, 120, 255},
	tile.Path1:  {180, 160, 110, 255},
	tile.Path2:  {170, 150, 100, 255},
	tile.Dirt:   {120, 90, 60, 255},
	tile.Sand:   {220, 200, 140, 255},
	tile.Flower: {90, 150, 80, 255},
	tile.Water:  {50, 90, 200, 255},
	tile.Mud:    {100, 75, 50, 255},
	tile.Stone0: {120, 120, 130, 255},
	tile.Stone1: {100, 100, 110, 255},
}

// Playing is the Play mode: it moves the player over the stage, resolves
// special tiles and keeps the camera on the player.
type Playing struct {
	ctx     *sim.Context
	stage   *system.Stage
	physics *system.PhysicsSystem
	input   *system.InputSystem
	combat  *system.CombatSystem
	logger  *log.Logger

	encounters int
	showBox    bool
}

// New creates the Play mode for a loaded stage.
func New(ctx *sim.Context, stage *system.Stage) *Playing {
	physics := system.NewPhysicsSystem(stage.Grid())
	p := &Playing{
		ctx:     ctx,
		stage:   stage,
		physics: physics,
		input:   system.NewInputSystem(),
		combat:  system.NewCombatSystem(physics),
		logger:  ctx.Logger.WithPrefix("play"),
	}
	w, h := stage.Grid().PixelSize()
	ctx.Camera.SetWorld(w, h)
	ctx.Camera.Center(stage.Player)
	return p
}

// ID implements mode.Mode.
func (p *Playing) ID() mode.ID { return mode.Play }

// Stage returns the stage being played.
func (p *Playing) Stage() *system.Stage { return p.stage }

// Encounters returns how many encounters have started since the last reset.
func (p *Playing) Encounters() int { return p.encounters }

// SetDebugBoxes toggles drawing of the player's bounding box.
func (p *Playing) SetDebugBoxes(on bool) { p.showBox = on }

// OnEnter clears the pause and menu flags.
func (p *Playing) OnEnter() {
	p.ctx.Paused = false
	p.ctx.MenuUp = false
}

// OnExit drops any held movement so the player does not drift on return.
func (p *Playing) OnExit() {
	p.stage.Player.Intent = entity.Intent{}
}

// Input routes mode actions and hands movement to the player.
func (p *Playing) Input(f input.Frame) {
	switch {
	case f.Has(input.ActionPause):
		p.ctx.Paused = true
		p.ctx.PauseTicks = 0
		p.ctx.SwitchTo(mode.Pause)
	case f.Has(input.ActionMenu):
		p.ctx.MenuUp = true
		p.ctx.SwitchTo(mode.Menu)
	case f.Has(input.ActionInventory):
		p.ctx.SwitchTo(mode.Inventory)
	default:
		p.input.UpdatePlayer(p.stage.Player, f)
	}
}

// Update advances every actor by one tick.
func (p *Playing) Update() error {
	dt := p.ctx.TickInterval()
	player := p.stage.Player
	encounter := false

	for _, a := range p.stage.Actors {
		p.physics.Update(a, dt)
		switch p.combat.Check(a) {
		case system.TileEventHazard:
			p.logger.Debug("hazard", "actor", a.ID, "x", a.X, "y", a.Y)
		case system.TileEventEncounter:
			if a == player {
				encounter = true
			}
		}
	}
	if n := p.stage.Prune(); n > 0 {
		p.logger.Debug("pruned dead actors", "count", n)
	}

	p.ctx.Camera.Center(player)

	switch {
	case player.State() == entity.StateDead:
		p.logger.Info("player died", "x", player.X, "y", player.Y)
		p.ctx.GameOver = true
		p.ctx.SwitchTo(mode.GameOver)
	case encounter:
		p.encounters++
		p.logger.Debug("encounter", "count", p.encounters)
		p.ctx.SwitchTo(mode.Battle)
	}
	return nil
}

// Reset puts the stage back to its initial state.
func (p *Playing) Reset() {
	p.stage.Reset()
	p.combat.Forget(p.stage.Player.ID)
	p.encounters = 0
	p.ctx.GameOver = false
	p.ctx.Camera.Center(p.stage.Player)
	p.logger.Info("stage reset", "stage", p.stage.Name)
}

// Render draws the visible tiles, the actors and the status line.
func (p *Playing) Render(screen *ebiten.Image) {
	screen.Fill(hud.ColorBackground)
	p.drawTiles(screen)
	p.drawActors(screen)
	p.drawStatus(screen)
}

// Cleanup implements mode.Mode.
func (p *Playing) Cleanup() {}

// VisibleTiles returns the inclusive tile range covered by the viewport,
// clipped to the grid.
func (p *Playing) VisibleTiles() (x0, y0, x1, y1 int) {
	grid := p.stage.Grid()
	cx, cy := p.ctx.Camera.Offset()
	vw, vh := p.ctx.Camera.Viewport()

	x0 = max(0, tile.ToTile(cx))
	y0 = max(0, tile.ToTile(cy))
	x1 = min(grid.Width()-1, tile.ToTile(cx+vw-1))
	y1 = min(grid.Height()-1, tile.ToTile(cy+vh-1))
	return x0, y0, x1, y1
}

func (p *Playing) drawTiles(screen *ebiten.Image) {
	grid := p.stage.Grid()
	x0, y0, x1, y1 := p.VisibleTiles()

	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			sx, sy := p.ctx.Camera.ToScreen(float64(tx*tile.Size), float64(ty*tile.Size))
			vector.DrawFilledRect(screen, float32(sx), float32(sy), tile.Size, tile.Size, tileColor(grid.At(tx, ty)), false)
		}
	}
}

func tileColor(d tile.Descriptor) color.RGBA {
	if c, ok := tileColors[d.ID]; ok {
		return c
	}
	switch {
	case d.Solid:
		return colorSolid
	case d.Hazard:
		return colorHazard
	case d.Encounter:
		return colorEncounter
	}
	return colorGround
}

func (p *Playing) drawActors(screen *ebiten.Image) {
	for _, a := range p.stage.Actors {
		c := colorPlayer
		if !a.State().Alive() {
			c = colorDying
		}
		sx, sy := p.ctx.Camera.ToScreen(a.X, a.Y)
		l, t, r, b := a.Box.WorldRect(a.X, a.Y)
		bx, by := p.ctx.Camera.ToScreen(l, t)
		vector.DrawFilledRect(screen, float32(bx), float32(by), float32(r-l), float32(b-t), c, false)
		if p.showBox {
			vector.StrokeRect(screen, float32(sx), float32(sy), float32(a.Width), float32(a.Height), 1, colorBox, false)
		}
	}
}

func (p *Playing) drawStatus(screen *ebiten.Image) {
	player := p.stage.Player
	vx, vy := player.Velocity()
	status := fmt.Sprintf("%s  pos %.0f,%.0f  vel %.2f,%.2f  %s",
		p.stage.Name, player.X, player.Y, vx, vy, player.State())
	hud.Draw(screen, status, 8, 6, hud.SmallSize, hud.ColorText)
}
