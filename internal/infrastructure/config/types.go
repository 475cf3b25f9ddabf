package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/tileworld/internal/domain/entity"
	"github.com/younwookim/tileworld/internal/domain/tile"
)

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Title    string              `yaml:"title"`
	World    string              `yaml:"world"`
	Display  DisplayConfig       `yaml:"display"`
	Timing   TimingConfig        `yaml:"timing"`
	Movement MovementConfig      `yaml:"movement"`
	Debug    DebugConfig         `yaml:"debug"`
	Controls map[string][]string `yaml:"controls"`
	Logging  LoggingConfig       `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
}

type TimingConfig struct {
	TickRate   int `yaml:"tickRate"`   // fixed updates per second
	FrameRate  int `yaml:"frameRate"`  // target renders per second
	MaxUpdates int `yaml:"maxUpdates"` // updates per loop iteration before dropping backlog
}

// MovementConfig is in pixels per tick.
type MovementConfig struct {
	MaxSpeed     float64 `yaml:"maxSpeed"`
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`
	DieTimeMs    int     `yaml:"dieTimeMs"`
}

type DebugConfig struct {
	ShowBoxes bool `yaml:"showBoxes"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultGameConfig returns the built-in settings used for keys missing
// from game.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Title: "tileworld",
		World: "map3",
		Display: DisplayConfig{
			ScreenWidth:  960,
			ScreenHeight: 640,
			Scale:        1,
		},
		Timing: TimingConfig{
			TickRate:   60,
			FrameRate:  60,
			MaxUpdates: 5,
		},
		Movement: MovementConfig{
			MaxSpeed:     entity.DefaultMaxSpeed,
			Acceleration: entity.DefaultAcceleration,
			Deceleration: entity.DefaultDeceleration,
			DieTimeMs:    int(entity.DefaultDieTime.Milliseconds()),
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Validate reports every invalid setting at once.
func (c *GameConfig) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display: screen %dx%d must be positive", c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display: scale %d must be positive", c.Display.Scale))
	}
	if c.Timing.TickRate <= 0 || c.Timing.FrameRate <= 0 || c.Timing.MaxUpdates <= 0 {
		errs = append(errs, fmt.Errorf("timing: tickRate %d, frameRate %d and maxUpdates %d must be positive",
			c.Timing.TickRate, c.Timing.FrameRate, c.Timing.MaxUpdates))
	}
	m := c.Movement
	if m.MaxSpeed <= 0 || m.Acceleration <= 0 || m.Deceleration <= 0 {
		errs = append(errs, fmt.Errorf("movement: maxSpeed, acceleration and deceleration must be positive"))
	}
	if m.MaxSpeed >= tile.Size {
		// collision only tests the destination tile, so faster actors tunnel through walls
		errs = append(errs, fmt.Errorf("movement: maxSpeed %g must stay below the tile size %d", m.MaxSpeed, tile.Size))
	}
	if m.DieTimeMs < 0 {
		errs = append(errs, fmt.Errorf("movement: dieTimeMs %d must not be negative", m.DieTimeMs))
	}
	if c.World == "" {
		errs = append(errs, errors.New("world: name is required"))
	}
	return errors.Join(errs...)
}

// Tuning converts the movement section.
func (c *GameConfig) Tuning() entity.Tuning {
	return entity.Tuning{
		MaxSpeed:     c.Movement.MaxSpeed,
		Acceleration: c.Movement.Acceleration,
		Deceleration: c.Movement.Deceleration,
		DieTime:      msToDuration(c.Movement.DieTimeMs),
	}
}

// TilesConfig is the root config for tiles.yaml
type TilesConfig struct {
	Boundary int         `yaml:"boundary"`
	Fallback int         `yaml:"fallback"`
	Tiles    []TileEntry `yaml:"tiles"`
}

// TileEntry describes one tile type.
type TileEntry struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	Solid     bool   `yaml:"solid"`
	Hazard    bool   `yaml:"hazard"`
	Encounter bool   `yaml:"encounter"`
}

// Registry builds the tile registry described by the config.
func (c *TilesConfig) Registry() (*tile.Registry, error) {
	descs := make([]tile.Descriptor, 0, len(c.Tiles))
	for _, t := range c.Tiles {
		descs = append(descs, tile.Descriptor{
			ID:        tile.ID(t.ID),
			Name:      t.Name,
			Solid:     t.Solid,
			Hazard:    t.Hazard,
			Encounter: t.Encounter,
		})
	}
	reg, err := tile.NewRegistry(descs, tile.ID(c.Boundary), tile.ID(c.Fallback))
	if err != nil {
		return nil, fmt.Errorf("tiles: %w", err)
	}
	return reg, nil
}
