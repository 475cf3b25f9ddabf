// Package mode defines the game modes and the manager that dispatches to the
// active one.
//
// Exactly one mode is active at a time. Modes are registered once at startup
// and toggled with Manager.SwitchTo; they are never destroyed.
package mode

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tileworld/internal/application/input"
)

// Mode is one top-level game screen (start, play, pause, menu, etc.)
//
// The manager forwards Input, Update, Render and Cleanup to the active mode
// only. A mode may call Manager.SwitchTo from any of its methods; the switch
// takes effect for the next dispatched call.
type Mode interface {
	// ID returns the mode's identifier.
	ID() ID

	// OnEnter is called when the mode becomes active.
	OnEnter()

	// OnExit is called when another mode replaces this one.
	OnExit()

	// Input handles the debounced input of one tick.
	Input(f input.Frame)

	// Update advances the mode by one tick.
	// Returns an error to terminate the game.
	Update() error

	// Render draws the mode to screen.
	Render(screen *ebiten.Image)

	// Cleanup releases resources when the game stops.
	Cleanup()
}
