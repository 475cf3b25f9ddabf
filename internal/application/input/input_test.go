package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAction_String(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionUp, "up"},
		{ActionRight, "right"},
		{ActionPause, "pause"},
		{ActionInventory, "inventory"},
		{Action(99), "unknown"},
		{Action(-1), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.action.String())
		})
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := ParseAction(" Select ")
	require.NoError(t, err)
	assert.Equal(t, ActionSelect, got)

	_, err = ParseAction("jump")
	assert.Error(t, err)
}

func TestFrame(t *testing.T) {
	var f Frame
	assert.True(t, f.Empty())
	assert.Equal(t, "none", f.String())

	f = f.With(ActionUp).With(ActionSelect)
	assert.True(t, f.Has(ActionUp))
	assert.True(t, f.Has(ActionSelect))
	assert.False(t, f.Has(ActionDown))
	assert.Equal(t, "up+select", f.String())
}

func TestDebouncer_NormalHeld(t *testing.T) {
	d := NewDebouncer()
	d.Press(ActionRight)

	for i := 0; i < 3; i++ {
		assert.True(t, d.Poll().Has(ActionRight), "held movement reported every tick")
	}

	d.Release(ActionRight)
	assert.True(t, d.Poll().Has(ActionRight), "amount still pending on the release tick")
	assert.False(t, d.Poll().Has(ActionRight))
}

func TestDebouncer_InitialPressOnly(t *testing.T) {
	d := NewDebouncer()
	d.Press(ActionPause)

	assert.True(t, d.Poll().Has(ActionPause))
	assert.False(t, d.Poll().Has(ActionPause), "held key reported once")

	d.Press(ActionPause)
	assert.False(t, d.Poll().Has(ActionPause), "presses while waiting for release are ignored")

	d.Release(ActionPause)
	assert.False(t, d.Poll().Has(ActionPause))

	d.Press(ActionPause)
	assert.True(t, d.Poll().Has(ActionPause))
}

func TestDebouncer_TapBetweenPolls(t *testing.T) {
	d := NewDebouncer()
	d.Tap(ActionMenu)

	assert.True(t, d.Poll().Has(ActionMenu), "a tap shorter than a tick is not lost")
	assert.False(t, d.Poll().Has(ActionMenu))
}

func TestDebouncer_SetBehaviorAndReset(t *testing.T) {
	d := NewDebouncer()
	d.SetBehavior(ActionUp, InitialPressOnly)
	d.Press(ActionUp)
	assert.True(t, d.Poll().Has(ActionUp))
	assert.False(t, d.Poll().Has(ActionUp))

	d.Press(ActionDown)
	d.Reset()
	assert.True(t, d.Poll().Empty())
}

func TestKeyboard_Poll(t *testing.T) {
	held := map[ebiten.Key]bool{}
	kb := NewKeyboardWith(DefaultBindings(), func(k ebiten.Key) bool { return held[k] })

	assert.True(t, kb.Poll().Empty())

	held[ebiten.KeyArrowLeft] = true
	held[ebiten.KeyP] = true
	f := kb.Poll()
	assert.True(t, f.Has(ActionLeft))
	assert.True(t, f.Has(ActionPause))

	f = kb.Poll()
	assert.True(t, f.Has(ActionLeft))
	assert.False(t, f.Has(ActionPause))

	// second key for the same action keeps it held
	held[ebiten.KeyA] = true
	held[ebiten.KeyArrowLeft] = false
	assert.True(t, kb.Poll().Has(ActionLeft))

	held[ebiten.KeyA] = false
	held[ebiten.KeyP] = false
	assert.True(t, kb.Poll().Has(ActionLeft), "release tick")
	assert.True(t, kb.Poll().Empty())
}

func TestParseBindings(t *testing.T) {
	b, err := ParseBindings(map[string][]string{
		"pause": {"Escape"},
		"up":    {"K", "ArrowUp"},
	})
	require.NoError(t, err)

	assert.Equal(t, []ebiten.Key{ebiten.KeyEscape}, b[ActionPause])
	assert.Equal(t, []ebiten.Key{ebiten.KeyK, ebiten.KeyArrowUp}, b[ActionUp])
	assert.Equal(t, DefaultBindings()[ActionMenu], b[ActionMenu])

	_, err = ParseBindings(map[string][]string{"jump": {"Space"}})
	assert.Error(t, err)

	_, err = ParseBindings(map[string][]string{"up": {"NoSuchKey"}})
	assert.Error(t, err)
}
