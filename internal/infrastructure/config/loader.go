// Package config loads game settings, the tile registry and world files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/tileworld/internal/domain/tile"
)

const (
	gameFile  = "game.yaml"
	tilesFile = "tiles.yaml"
	worldDir  = "worlds"
	worldExt  = ".txt"
)

// Bundle holds everything needed to start a session.
type Bundle struct {
	Game     GameConfig
	Tiles    TilesConfig
	Registry *tile.Registry
}

type layer struct {
	fsys fs.FS
	name string
}

// Loader reads config files from one or more fs.FS layers. The first layer
// containing a file wins.
type Loader struct {
	layers []layer
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return NewFSLoader(os.DirFS(basePath), basePath)
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{layers: []layer{{fsys: fsys, name: basePath}}}
}

// NewSearchLoader searches customDir (when set), ~/.tileworld/configs,
// ./configs and finally the embedded defaults.
func NewSearchLoader(customDir string, defaults fs.FS) *Loader {
	l := &Loader{}
	if customDir != "" {
		l.layers = append(l.layers, layer{fsys: os.DirFS(customDir), name: customDir})
	}
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".tileworld", "configs")
		l.layers = append(l.layers, layer{fsys: os.DirFS(dir), name: dir})
	}
	l.layers = append(l.layers,
		layer{fsys: os.DirFS("configs"), name: "configs"},
		layer{fsys: defaults, name: "embedded"},
	)
	return l
}

// readFile returns the first layer's copy of path.
func (l *Loader) readFile(path string) ([]byte, string, error) {
	for _, ly := range l.layers {
		data, err := fs.ReadFile(ly.fsys, path)
		if err == nil {
			return data, ly.name, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, ly.name, fmt.Errorf("failed to read config %s from %s: %w", path, ly.name, err)
		}
	}
	return nil, "", fmt.Errorf("failed to read config %s: %w", path, fs.ErrNotExist)
}

// LoadGame loads game.yaml over the built-in defaults and validates it.
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, src, err := l.readFile(gameFile)
	if err != nil {
		return nil, err
	}

	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s from %s: %w", gameFile, src, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s from %s: %w", gameFile, src, err)
	}
	return &cfg, nil
}

// LoadTiles loads tiles.yaml
func (l *Loader) LoadTiles() (*TilesConfig, error) {
	data, src, err := l.readFile(tilesFile)
	if err != nil {
		return nil, err
	}

	var cfg TilesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s from %s: %w", tilesFile, src, err)
	}
	return &cfg, nil
}

// LoadWorld decodes worlds/<name>.txt against reg.
func (l *Loader) LoadWorld(name string, reg *tile.Registry) (*tile.World, error) {
	path := worldDir + "/" + name + worldExt
	data, src, err := l.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("world %s: %w", name, err)
	}
	w, err := tile.Decode(bytes.NewReader(data), reg)
	if err != nil {
		return nil, fmt.Errorf("world %s from %s: %w", name, src, err)
	}
	return w, nil
}

// Worlds lists the world names available across all layers, sorted.
func (l *Loader) Worlds() []string {
	seen := make(map[string]bool)
	var names []string
	for _, ly := range l.layers {
		matches, err := fs.Glob(ly.fsys, worldDir+"/*"+worldExt)
		if err != nil {
			continue
		}
		for _, m := range matches {
			name := m[len(worldDir)+1 : len(m)-len(worldExt)]
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	slices.Sort(names)
	return names
}

// LoadAll loads game.yaml and tiles.yaml and builds the registry.
func (l *Loader) LoadAll() (*Bundle, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}
	tiles, err := l.LoadTiles()
	if err != nil {
		return nil, err
	}
	reg, err := tiles.Registry()
	if err != nil {
		return nil, err
	}
	return &Bundle{Game: *game, Tiles: *tiles, Registry: reg}, nil
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
