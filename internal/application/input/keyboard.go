package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Bindings maps each action to the keys that trigger it.
type Bindings map[Action][]ebiten.Key

// DefaultBindings returns WASD and arrows for movement plus P, M, Enter, Escape and I.
func DefaultBindings() Bindings {
	return Bindings{
		ActionUp:        {ebiten.KeyW, ebiten.KeyArrowUp},
		ActionDown:      {ebiten.KeyS, ebiten.KeyArrowDown},
		ActionLeft:      {ebiten.KeyA, ebiten.KeyArrowLeft},
		ActionRight:     {ebiten.KeyD, ebiten.KeyArrowRight},
		ActionPause:     {ebiten.KeyP},
		ActionMenu:      {ebiten.KeyM},
		ActionSelect:    {ebiten.KeyEnter, ebiten.KeySpace},
		ActionBack:      {ebiten.KeyEscape},
		ActionInventory: {ebiten.KeyI},
	}
}

// ParseBindings converts config names ("up": ["W", "ArrowUp"]) into bindings.
// Actions missing from names keep their default keys.
func ParseBindings(names map[string][]string) (Bindings, error) {
	b := DefaultBindings()
	for action, keys := range names {
		a, err := ParseAction(action)
		if err != nil {
			return nil, err
		}
		parsed := make([]ebiten.Key, 0, len(keys))
		for _, name := range keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("binding for %s: %w", a, err)
			}
			parsed = append(parsed, k)
		}
		b[a] = parsed
	}
	return b, nil
}

// KeyState reports whether a key is currently held.
type KeyState func(ebiten.Key) bool

// Keyboard is a Source reading the ebiten keyboard through a Debouncer.
type Keyboard struct {
	bindings Bindings
	pressed  KeyState
	held     [actionCount]bool
	debounce *Debouncer
}

// NewKeyboard creates a keyboard source using ebiten.IsKeyPressed.
func NewKeyboard(b Bindings) *Keyboard {
	return NewKeyboardWith(b, ebiten.IsKeyPressed)
}

// NewKeyboardWith creates a keyboard source with a custom key reader.
func NewKeyboardWith(b Bindings, pressed KeyState) *Keyboard {
	return &Keyboard{
		bindings: b,
		pressed:  pressed,
		debounce: NewDebouncer(),
	}
}

// Poll samples the bound keys and returns the debounced frame.
func (k *Keyboard) Poll() Frame {
	for a, keys := range k.bindings {
		down := false
		for _, key := range keys {
			if k.pressed(key) {
				down = true
				break
			}
		}
		switch {
		case down && !k.held[a]:
			k.debounce.Press(a)
		case !down && k.held[a]:
			k.debounce.Release(a)
		}
		k.held[a] = down
	}
	return k.debounce.Poll()
}
