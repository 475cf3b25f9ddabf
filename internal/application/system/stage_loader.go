package system

import (
	"github.com/younwookim/tileworld/internal/domain/entity"
	"github.com/younwookim/tileworld/internal/domain/tile"
)

// Stage is a decoded world ready for play. It owns the grid and the actors
// living on it, including removal of dead ones.
type Stage struct {
	Name   string
	World  *tile.World
	Player *entity.Actor
	Actors []*entity.Actor
}

// LoadStage places the player at the world's spawn point.
func LoadStage(name string, w *tile.World, tuning entity.Tuning) *Stage {
	player := entity.NewPlayer(float64(w.SpawnX), float64(w.SpawnY), tuning)
	player.ID = entity.EntityID(w.EntityID)

	return &Stage{
		Name:   name,
		World:  w,
		Player: player,
		Actors: []*entity.Actor{player},
	}
}

// Grid returns the stage's tile grid.
func (s *Stage) Grid() *tile.Grid {
	return s.World.Grid
}

// Reset puts the player back at the spawn point.
func (s *Stage) Reset() {
	s.Player.Respawn(float64(s.World.SpawnX), float64(s.World.SpawnY))
	s.Actors = []*entity.Actor{s.Player}
}

// Prune drops dead actors other than the player and returns how many were removed.
// A dead player stays so the game over flow can inspect it.
func (s *Stage) Prune() int {
	kept := s.Actors[:0]
	for _, a := range s.Actors {
		if a.State() != entity.StateDead || a == s.Player {
			kept = append(kept, a)
		}
	}
	removed := len(s.Actors) - len(kept)
	for i := len(kept); i < len(s.Actors); i++ {
		s.Actors[i] = nil
	}
	s.Actors = kept
	return removed
}
