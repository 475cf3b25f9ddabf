package entity

import (
	"fmt"
	"time"
)

// Intent holds the directional movement flags set from input or AI.
type Intent struct {
	Up, Down, Left, Right bool
}

// Moving reports whether any direction is requested.
func (i Intent) Moving() bool {
	return i.Up || i.Down || i.Left || i.Right
}

// Movement owns an actor's velocity. Velocity is bounded by Tuning.MaxSpeed on
// each axis; every write path clamps.
type Movement struct {
	Intent Intent
	tuning Tuning
	vx, vy float64
}

// NewMovement creates a movement component at rest.
func NewMovement(t Tuning) Movement {
	return Movement{tuning: t}
}

// Tuning returns the movement constants.
func (m *Movement) Tuning() Tuning { return m.tuning }

// Velocity returns the current velocity in pixels per tick.
func (m *Movement) Velocity() (vx, vy float64) {
	return m.vx, m.vy
}

// SetVelocity sets the velocity, clamped to the speed limit.
func (m *Movement) SetVelocity(vx, vy float64) {
	m.vx = m.clamp(vx)
	m.vy = m.clamp(vy)
}

// Stop zeroes the velocity.
func (m *Movement) Stop() {
	m.vx, m.vy = 0, 0
}

// Integrate advances velocity by one tick from the intent flags. A set flag
// accelerates toward the signed speed limit; a clear flag decays toward zero
// without crossing it.
func (m *Movement) Integrate() {
	m.vy = m.axis(m.vy, m.Intent.Up, m.Intent.Down)
	m.vx = m.axis(m.vx, m.Intent.Left, m.Intent.Right)
}

// axis applies the negative direction first, then the positive one.
func (m *Movement) axis(v float64, neg, pos bool) float64 {
	t := m.tuning

	if neg {
		v = m.clamp(v - t.Acceleration)
	} else if v < 0 {
		v = min(v+t.Deceleration, 0)
	}

	if pos {
		v = m.clamp(v + t.Acceleration)
	} else if v > 0 {
		v = max(v-t.Deceleration, 0)
	}

	return v
}

func (m *Movement) clamp(v float64) float64 {
	return max(-m.tuning.MaxSpeed, min(v, m.tuning.MaxSpeed))
}

// Actor is a movable entity in the tile world.
type Actor struct {
	ID EntityID
	Body
	Movement

	state     LifeState
	stateTime time.Duration
}

// NewActor creates an actor at (x, y) with a square default footprint.
func NewActor(id EntityID, x, y float64, box BoundingBox, t Tuning) (*Actor, error) {
	if box.Width < 0 || box.Height < 0 {
		return nil, fmt.Errorf("actor %d: negative bounding box", id)
	}
	return &Actor{
		ID: id,
		Body: Body{
			X:      x,
			Y:      y,
			Width:  DefaultFootprint,
			Height: DefaultFootprint,
			Box:    box,
		},
		Movement: NewMovement(t),
		state:    StateNormal,
	}, nil
}

// PlayerBox is the player's collision box inside its 64x64 footprint.
var PlayerBox = BoundingBox{OffsetX: 22, OffsetY: 30, Width: 20, Height: 30}

// NewPlayer creates the player actor at a spawn point.
func NewPlayer(x, y float64, t Tuning) *Actor {
	a, _ := NewActor(0, x, y, PlayerBox, t)
	return a
}

// State returns the life state.
func (a *Actor) State() LifeState { return a.state }

// StateTime returns the time spent in the current life state.
func (a *Actor) StateTime() time.Duration { return a.stateTime }

// SetState changes the life state and restarts the state timer.
// Entering Dying zeroes velocity. Setting the current state is a no-op.
func (a *Actor) SetState(s LifeState) {
	if a.state == s {
		return
	}
	a.state = s
	a.stateTime = 0
	if s == StateDying {
		a.Stop()
	}
}

// Kill starts the dying sequence of a living actor.
func (a *Actor) Kill() {
	if a.state.Alive() {
		a.SetState(StateDying)
	}
}

// UpdateLife accumulates elapsed time and moves Dying to Dead once the die
// time has been reached.
func (a *Actor) UpdateLife(elapsed time.Duration) {
	a.stateTime += elapsed
	if a.state == StateDying && a.stateTime >= a.tuning.DieTime {
		a.SetState(StateDead)
	}
}

// Respawn puts the actor back at (x, y), at rest and alive.
func (a *Actor) Respawn(x, y float64) {
	a.SetPosition(x, y)
	a.Stop()
	a.Intent = Intent{}
	a.state = StateNormal
	a.stateTime = 0
}
