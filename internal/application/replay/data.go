package replay

import "github.com/younwookim/tileworld/internal/application/input"

// Version is written into every replay file.
const Version = "1.0"

// FrameInput records the logical actions delivered on a single tick.
type FrameInput struct {
	F   int  `json:"f"`             // Tick number
	U   bool `json:"u,omitempty"`   // Up
	D   bool `json:"d,omitempty"`   // Down
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	P   bool `json:"p,omitempty"`   // Pause
	M   bool `json:"m,omitempty"`   // Menu
	S   bool `json:"s,omitempty"`   // Select
	B   bool `json:"b,omitempty"`   // Back
	Inv bool `json:"inv,omitempty"` // Inventory
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	World     string       `json:"world"`
	TickRate  int          `json:"tickRate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrameInput converts a debounced frame for tick n.
func NewFrameInput(n int, f input.Frame) FrameInput {
	return FrameInput{
		F:   n,
		U:   f.Has(input.ActionUp),
		D:   f.Has(input.ActionDown),
		L:   f.Has(input.ActionLeft),
		R:   f.Has(input.ActionRight),
		P:   f.Has(input.ActionPause),
		M:   f.Has(input.ActionMenu),
		S:   f.Has(input.ActionSelect),
		B:   f.Has(input.ActionBack),
		Inv: f.Has(input.ActionInventory),
	}
}

// Frame converts back to an input frame.
func (fi FrameInput) Frame() input.Frame {
	var f input.Frame
	set := func(on bool, a input.Action) {
		if on {
			f = f.With(a)
		}
	}
	set(fi.U, input.ActionUp)
	set(fi.D, input.ActionDown)
	set(fi.L, input.ActionLeft)
	set(fi.R, input.ActionRight)
	set(fi.P, input.ActionPause)
	set(fi.M, input.ActionMenu)
	set(fi.S, input.ActionSelect)
	set(fi.B, input.ActionBack)
	set(fi.Inv, input.ActionInventory)
	return f
}
