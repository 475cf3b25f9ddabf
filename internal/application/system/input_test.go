package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/tileworld/internal/application/input"
	"github.com/younwookim/tileworld/internal/domain/entity"
)

func TestInputSystem_IntentFor(t *testing.T) {
	sys := NewInputSystem()

	tests := []struct {
		name  string
		frame input.Frame
		want  entity.Intent
	}{
		{"empty", 0, entity.Intent{}},
		{"up", input.Frame(0).With(input.ActionUp), entity.Intent{Up: true}},
		{"diagonal", input.Frame(0).With(input.ActionDown).With(input.ActionLeft), entity.Intent{Down: true, Left: true}},
		{"non movement ignored", input.Frame(0).With(input.ActionPause).With(input.ActionRight), entity.Intent{Right: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sys.IntentFor(tt.frame))
		})
	}
}

func TestInputSystem_UpdatePlayer(t *testing.T) {
	sys := NewInputSystem()
	player := createTestPlayer(0, 0)

	sys.UpdatePlayer(player, input.Frame(0).With(input.ActionRight))
	assert.True(t, player.Intent.Right)

	player.Kill()
	sys.UpdatePlayer(player, input.Frame(0).With(input.ActionRight))
	assert.False(t, player.Intent.Moving(), "dying actors ignore input")
}
