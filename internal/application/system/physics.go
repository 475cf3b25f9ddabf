package system

import (
	"time"

	"github.com/younwookim/tileworld/internal/domain/entity"
	"github.com/younwookim/tileworld/internal/domain/tile"
)

// SnapMargin is the gap left between a bounding box and a solid tile it runs
// into from the left or from above.
const SnapMargin = 1.0

// PhysicsSystem integrates actor velocity and resolves it against the tile grid,
// X axis first, then Y.
type PhysicsSystem struct {
	grid *tile.Grid
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(grid *tile.Grid) *PhysicsSystem {
	return &PhysicsSystem{grid: grid}
}

// SetGrid swaps the grid, e.g. after a world reload.
func (s *PhysicsSystem) SetGrid(grid *tile.Grid) {
	s.grid = grid
}

// Update advances one actor by one tick of length dt.
// Dying and dead actors only run their life timer.
func (s *PhysicsSystem) Update(a *entity.Actor, dt time.Duration) {
	a.UpdateLife(dt)
	if !a.State().Alive() {
		return
	}

	a.Integrate()
	s.moveX(a)
	s.moveY(a)

	if vx, vy := a.Velocity(); vx == 0 && vy == 0 {
		a.SetState(entity.StateIdle)
	} else {
		a.SetState(entity.StateNormal)
	}
}

// moveX applies horizontal velocity unless the column the leading edge would
// enter is blocked, in which case the box is snapped against that column.
func (s *PhysicsSystem) moveX(a *entity.Actor) {
	vx, _ := a.Velocity()
	bb := a.Box

	switch {
	case vx > 0:
		tx := tile.ToTile(a.X + vx + bb.OffsetX + bb.Width)
		if s.columnBlocked(a, tx) {
			a.X = float64(tx*tile.Size) - bb.OffsetX - bb.Width - SnapMargin
			return
		}
		a.X += vx
	case vx < 0:
		tx := tile.ToTile(a.X + vx + bb.OffsetX)
		if s.columnBlocked(a, tx) {
			a.X = float64(tx*tile.Size+tile.Size) - bb.OffsetX
			return
		}
		a.X += vx
	}
}

// moveY is moveX for the vertical axis.
func (s *PhysicsSystem) moveY(a *entity.Actor) {
	_, vy := a.Velocity()
	bb := a.Box

	switch {
	case vy > 0:
		ty := tile.ToTile(a.Y + vy + bb.OffsetY + bb.Height)
		if s.rowBlocked(a, ty) {
			a.Y = float64(ty*tile.Size) - bb.OffsetY - bb.Height - SnapMargin
			return
		}
		a.Y += vy
	case vy < 0:
		ty := tile.ToTile(a.Y + vy + bb.OffsetY)
		if s.rowBlocked(a, ty) {
			a.Y = float64(ty*tile.Size+tile.Size) - bb.OffsetY
			return
		}
		a.Y += vy
	}
}

// columnBlocked tests the tiles at the top and bottom edge of the box in column tx.
func (s *PhysicsSystem) columnBlocked(a *entity.Actor, tx int) bool {
	top := tile.ToTile(a.Y + a.Box.OffsetY)
	bottom := tile.ToTile(a.Y + a.Box.OffsetY + a.Box.Height)
	return s.grid.Solid(tx, top) || s.grid.Solid(tx, bottom)
}

// rowBlocked tests the tiles at the left and right edge of the box in row ty.
func (s *PhysicsSystem) rowBlocked(a *entity.Actor, ty int) bool {
	left := tile.ToTile(a.X + a.Box.OffsetX)
	right := tile.ToTile(a.X + a.Box.OffsetX + a.Box.Width)
	return s.grid.Solid(left, ty) || s.grid.Solid(right, ty)
}

// TileUnder returns the tile below the centre of the actor's bounding box.
func (s *PhysicsSystem) TileUnder(a *entity.Actor) tile.Descriptor {
	l, t, r, b := a.Box.WorldRect(a.X, a.Y)
	return s.grid.AtPixel((l+r)/2, (t+b)/2)
}
