package input

// Behavior controls how a held action is reported.
type Behavior int

const (
	// Normal reports the action on every tick while it is held.
	Normal Behavior = iota
	// InitialPressOnly reports the action once per press; it must be released
	// before it is reported again.
	InitialPressOnly
)

type pressState int

const (
	stateReleased pressState = iota
	statePressed
	stateWaitingForRelease
)

type actionState struct {
	behavior Behavior
	state    pressState
	amount   int
}

// Debouncer converts raw press and release edges into per-tick frames.
// A press that is released before the next poll is still reported once.
type Debouncer struct {
	actions [actionCount]actionState
}

// NewDebouncer creates a debouncer with movement actions in Normal mode and
// every other action in InitialPressOnly mode.
func NewDebouncer() *Debouncer {
	d := &Debouncer{}
	for _, a := range Actions() {
		switch a {
		case ActionUp, ActionDown, ActionLeft, ActionRight:
			d.actions[a].behavior = Normal
		default:
			d.actions[a].behavior = InitialPressOnly
		}
	}
	return d
}

// SetBehavior changes the behavior of one action.
func (d *Debouncer) SetBehavior(a Action, b Behavior) {
	d.actions[a].behavior = b
}

// Press signals that a went down.
func (d *Debouncer) Press(a Action) {
	s := &d.actions[a]
	if s.state != stateWaitingForRelease {
		s.amount++
		s.state = statePressed
	}
}

// Release signals that a went up.
func (d *Debouncer) Release(a Action) {
	d.actions[a].state = stateReleased
}

// Tap is a press immediately followed by a release.
func (d *Debouncer) Tap(a Action) {
	d.Press(a)
	d.Release(a)
}

// Reset forgets all pending presses.
func (d *Debouncer) Reset() {
	for i := range d.actions {
		d.actions[i].state = stateReleased
		d.actions[i].amount = 0
	}
}

// Poll returns the frame for this tick and consumes what it reports.
func (d *Debouncer) Poll() Frame {
	var f Frame
	for _, a := range Actions() {
		if d.consume(a) != 0 {
			f = f.With(a)
		}
	}
	return f
}

func (d *Debouncer) consume(a Action) int {
	s := &d.actions[a]
	n := s.amount
	if n != 0 {
		if s.state == stateReleased {
			s.amount = 0
		} else if s.behavior == InitialPressOnly {
			s.state = stateWaitingForRelease
			s.amount = 0
		}
	}
	return n
}
