// Package tile holds the tile registry, the tile grid and the world file codec.
package tile

import (
	"errors"
	"fmt"
	"sort"
)

// Size is the edge length of one tile in pixels.
const Size = 64

// ID identifies a tile type inside a Registry.
type ID int

// Descriptor describes one registered tile type.
type Descriptor struct {
	ID        ID
	Name      string
	Solid     bool
	Hazard    bool // standing on it puts the actor into the dying state
	Encounter bool // standing on it starts a battle
}

var (
	// ErrUnknownTile is returned when a tile id is not registered.
	ErrUnknownTile = errors.New("unknown tile id")
	// ErrMalformedWorld is returned for world files that cannot be decoded.
	ErrMalformedWorld = errors.New("malformed world file")
)

// Registry maps tile ids to descriptors.
// Ids may have gaps; a gap resolves to the fallback tile on lookup.
type Registry struct {
	tiles    []*Descriptor
	boundary ID
	fallback ID
}

// MaxID is the largest tile id a registry accepts.
const MaxID ID = 1<<16 - 1

// NewRegistry builds a registry from descriptors.
// boundary is returned for out-of-bounds lookups and fallback for unregistered ids;
// both must be registered and walkable.
func NewRegistry(descs []Descriptor, boundary, fallback ID) (*Registry, error) {
	maxID := ID(-1)
	for _, d := range descs {
		if d.ID < 0 {
			return nil, fmt.Errorf("tile %q: negative id %d", d.Name, d.ID)
		}
		if d.ID > MaxID {
			return nil, fmt.Errorf("tile %q: id %d above %d", d.Name, d.ID, MaxID)
		}
		if d.ID > maxID {
			maxID = d.ID
		}
	}

	r := &Registry{
		tiles:    make([]*Descriptor, maxID+1),
		boundary: boundary,
		fallback: fallback,
	}
	for i := range descs {
		d := descs[i]
		if r.tiles[d.ID] != nil {
			return nil, fmt.Errorf("tile %q: duplicate id %d", d.Name, d.ID)
		}
		r.tiles[d.ID] = &d
	}

	for _, id := range []ID{boundary, fallback} {
		d, ok := r.lookup(id)
		if !ok {
			return nil, fmt.Errorf("reserved tile %d: %w", id, ErrUnknownTile)
		}
		if d.Solid {
			return nil, fmt.Errorf("reserved tile %q must not be solid", d.Name)
		}
	}

	return r, nil
}

// Len returns the number of id slots, i.e. the highest registered id plus one.
// Valid ids in a world file are 0 <= id < Len().
func (r *Registry) Len() int {
	return len(r.tiles)
}

// Registered reports whether id maps to a descriptor.
func (r *Registry) Registered(id ID) bool {
	_, ok := r.lookup(id)
	return ok
}

// Lookup returns the descriptor for id, or the fallback tile when id is unregistered.
func (r *Registry) Lookup(id ID) Descriptor {
	if d, ok := r.lookup(id); ok {
		return d
	}
	return r.Fallback()
}

// Boundary returns the tile reported outside the grid.
func (r *Registry) Boundary() Descriptor {
	return *r.tiles[r.boundary]
}

// Fallback returns the walkable default tile.
func (r *Registry) Fallback() Descriptor {
	return *r.tiles[r.fallback]
}

// Descriptors returns all registered descriptors ordered by id.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.tiles))
	for _, d := range r.tiles {
		if d != nil {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Registry) lookup(id ID) (Descriptor, bool) {
	if id < 0 || int(id) >= len(r.tiles) || r.tiles[id] == nil {
		return Descriptor{}, false
	}
	return *r.tiles[id], true
}

// Well-known ids of the default tile set.
const (
	Grass0 ID = iota
	Grass1
	Grass2
	Brick0
	Brick1
	Brick2
	Path0
	Path1
	Path2
	Dirt
	Sand
	Flower
	Water
	Mud
	Stone0
	Stone1
)

// Default returns the built-in sixteen tile set.
// Out-of-bounds lookups report grass1, unregistered ids report dirt.
func Default() *Registry {
	descs := []Descriptor{
		{ID: Grass0, Name: "grass0"},
		{ID: Grass1, Name: "grass1"},
		{ID: Grass2, Name: "grass2"},
		{ID: Brick0, Name: "brick0", Solid: true},
		{ID: Brick1, Name: "brick1", Solid: true},
		{ID: Brick2, Name: "brick2", Solid: true},
		{ID: Path0, Name: "path0"},
		{ID: Path1, Name: "path1"},
		{ID: Path2, Name: "path2"},
		{ID: Dirt, Name: "dirt"},
		{ID: Sand, Name: "sand"},
		{ID: Flower, Name: "flower"},
		{ID: Water, Name: "water", Solid: true},
		{ID: Mud, Name: "mud"},
		{ID: Stone0, Name: "stone0", Solid: true},
		{ID: Stone1, Name: "stone1", Solid: true},
	}
	r, err := NewRegistry(descs, Grass1, Dirt)
	if err != nil {
		panic(err)
	}
	return r
}
