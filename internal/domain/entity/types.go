package entity

import "time"

// EntityID is a unique identifier for an entity
type EntityID uint32

// LifeState is the life cycle state of an actor
type LifeState int

const (
	StateNormal LifeState = iota
	StateIdle
	StateDying
	StateDead
)

// String returns the string representation of the life state
func (s LifeState) String() string {
	switch s {
	case StateNormal:
		return "Normal"
	case StateIdle:
		return "Idle"
	case StateDying:
		return "Dying"
	case StateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Alive reports whether the actor still takes part in movement.
func (s LifeState) Alive() bool {
	return s == StateNormal || s == StateIdle
}

// Default movement tuning, in pixels per tick.
const (
	DefaultMaxSpeed     = 5.05
	DefaultAcceleration = 2.255
	DefaultDeceleration = 1.15
	DefaultDieTime      = time.Second

	// DefaultFootprint is the nominal sprite edge length in pixels.
	DefaultFootprint = 64
)

// Tuning holds the per-tick movement constants shared by all actors of a kind.
type Tuning struct {
	MaxSpeed     float64
	Acceleration float64
	Deceleration float64
	DieTime      time.Duration
}

// DefaultTuning returns the stock movement constants.
func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:     DefaultMaxSpeed,
		Acceleration: DefaultAcceleration,
		Deceleration: DefaultDeceleration,
		DieTime:      DefaultDieTime,
	}
}
