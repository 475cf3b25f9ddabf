package tile

import "fmt"

// MaxGridTiles bounds width*height of any grid.
const MaxGridTiles = 1 << 24

// checkSize rejects non-positive sizes and sizes whose area exceeds MaxGridTiles.
func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("grid size %dx%d: %w", width, height, ErrMalformedWorld)
	}
	if width > MaxGridTiles/height {
		return fmt.Errorf("grid size %dx%d exceeds %d tiles: %w", width, height, MaxGridTiles, ErrMalformedWorld)
	}
	return nil
}

// Grid is a fixed width x height array of tile ids stored row-major.
type Grid struct {
	width    int
	height   int
	ids      []ID
	registry *Registry
}

// NewGrid creates a grid. ids is row-major (index x + y*width) and must hold
// exactly width*height entries, each in [0, registry.Len()).
func NewGrid(width, height int, ids []ID, registry *Registry) (*Grid, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	if len(ids) != width*height {
		return nil, fmt.Errorf("grid %dx%d needs %d tiles, got %d: %w",
			width, height, width*height, len(ids), ErrMalformedWorld)
	}
	for i, id := range ids {
		if id < 0 || int(id) >= registry.Len() {
			return nil, fmt.Errorf("tile %d at (%d,%d): %w", id, i%width, i/width, ErrUnknownTile)
		}
	}

	cp := make([]ID, len(ids))
	copy(cp, ids)
	return &Grid{width: width, height: height, ids: cp, registry: registry}, nil
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *Grid) Height() int { return g.height }

// Registry returns the registry the grid resolves ids with.
func (g *Grid) Registry() *Registry { return g.registry }

// PixelSize returns the grid extent in pixels.
func (g *Grid) PixelSize() (w, h int) {
	return g.width * Size, g.height * Size
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the tile at tile coordinates (x, y). It never fails: cells outside
// the grid report the boundary tile and unregistered ids the fallback tile.
func (g *Grid) At(x, y int) Descriptor {
	if !g.InBounds(x, y) {
		return g.registry.Boundary()
	}
	return g.registry.Lookup(g.ids[x+y*g.width])
}

// AtPixel returns the tile under pixel coordinates (px, py).
func (g *Grid) AtPixel(px, py float64) Descriptor {
	return g.At(ToTile(px), ToTile(py))
}

// Solid reports whether the tile at (x, y) blocks movement.
func (g *Grid) Solid(x, y int) bool {
	return g.At(x, y).Solid
}

// IDs returns a row-major copy of the raw tile ids.
func (g *Grid) IDs() []ID {
	out := make([]ID, len(g.ids))
	copy(out, g.ids)
	return out
}

// ToTile converts a pixel coordinate to a tile index, rounding toward negative infinity.
func ToTile(px float64) int {
	t := int(px) / Size
	if px < 0 && float64(t*Size) != px {
		t--
	}
	return t
}
