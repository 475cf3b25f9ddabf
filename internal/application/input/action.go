// Package input turns device state into debounced logical actions.
package input

import (
	"fmt"
	"strings"
)

// Action is a logical input consumed by the simulation.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionMenu
	ActionSelect
	ActionBack
	ActionInventory

	actionCount
)

var actionNames = [actionCount]string{
	ActionUp:        "up",
	ActionDown:      "down",
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionPause:     "pause",
	ActionMenu:      "menu",
	ActionSelect:    "select",
	ActionBack:      "back",
	ActionInventory: "inventory",
}

// String returns the action name used in config files.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// ParseAction maps a config name to an action.
func ParseAction(name string) (Action, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range actionNames {
		if s == n {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Frame is the set of actions active during one tick.
type Frame uint16

// Has reports whether a is active.
func (f Frame) Has(a Action) bool {
	return f&(1<<a) != 0
}

// With returns f with a set.
func (f Frame) With(a Action) Frame {
	return f | 1<<a
}

// Empty reports whether no action is active.
func (f Frame) Empty() bool {
	return f == 0
}

// String lists the active actions, e.g. "up+select".
func (f Frame) String() string {
	var parts []string
	for _, a := range Actions() {
		if f.Has(a) {
			parts = append(parts, a.String())
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Source yields one frame per tick.
type Source interface {
	Poll() Frame
}

// SourceFunc adapts a function to Source.
type SourceFunc func() Frame

// Poll calls f.
func (f SourceFunc) Poll() Frame { return f() }
