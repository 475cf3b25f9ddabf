package system

import (
	"github.com/younwookim/tileworld/internal/application/input"
	"github.com/younwookim/tileworld/internal/domain/entity"
)

// InputSystem handles player input
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// IntentFor converts the movement actions of a frame into intent flags.
func (s *InputSystem) IntentFor(f input.Frame) entity.Intent {
	return entity.Intent{
		Up:    f.Has(input.ActionUp),
		Down:  f.Has(input.ActionDown),
		Left:  f.Has(input.ActionLeft),
		Right: f.Has(input.ActionRight),
	}
}

// UpdatePlayer sets the player's intent from the frame. Actors that are not
// alive ignore input.
func (s *InputSystem) UpdatePlayer(player *entity.Actor, f input.Frame) {
	if !player.State().Alive() {
		player.Intent = entity.Intent{}
		return
	}
	player.Intent = s.IntentFor(f)
}
