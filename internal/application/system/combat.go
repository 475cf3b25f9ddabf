package system

import (
	"github.com/younwookim/tileworld/internal/domain/entity"
	"github.com/younwookim/tileworld/internal/domain/tile"
)

// TileEvent is the outcome of an actor standing on a special tile.
type TileEvent int

const (
	TileEventNone TileEvent = iota
	TileEventHazard
	TileEventEncounter
)

// String returns the string representation of the tile event
func (e TileEvent) String() string {
	switch e {
	case TileEventNone:
		return "None"
	case TileEventHazard:
		return "Hazard"
	case TileEventEncounter:
		return "Encounter"
	default:
		return "Unknown"
	}
}

type cell struct{ x, y int }

// CombatSystem reacts to hazard and encounter tiles under actors.
// Encounters fire when an actor enters an encounter tile, not while it stays on one.
type CombatSystem struct {
	physics *PhysicsSystem
	last    map[entity.EntityID]cell
}

// NewCombatSystem creates a combat system reading tiles through physics.
func NewCombatSystem(physics *PhysicsSystem) *CombatSystem {
	return &CombatSystem{
		physics: physics,
		last:    make(map[entity.EntityID]cell),
	}
}

// Check inspects the tile under a and applies its effect. Hazards kill the
// actor; encounters are only reported.
func (s *CombatSystem) Check(a *entity.Actor) TileEvent {
	if !a.State().Alive() {
		return TileEventNone
	}

	d := s.physics.TileUnder(a)
	l, t, r, b := a.Box.WorldRect(a.X, a.Y)
	here := cell{tile.ToTile((l + r) / 2), tile.ToTile((t + b) / 2)}
	prev, seen := s.last[a.ID]
	s.last[a.ID] = here

	switch {
	case d.Hazard:
		a.Kill()
		return TileEventHazard
	case d.Encounter && (!seen || prev != here):
		return TileEventEncounter
	}
	return TileEventNone
}

// Forget drops the remembered position of an actor, e.g. after a respawn.
func (s *CombatSystem) Forget(id entity.EntityID) {
	delete(s.last, id)
}
