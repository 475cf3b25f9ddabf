package tile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const headerTokens = 5

// World is the decoded content of a world file.
type World struct {
	Grid     *Grid
	EntityID int
	SpawnX   int // pixels
	SpawnY   int // pixels
}

// Decode reads a world file: whitespace separated integers
//
//	width height entity_id spawnX spawnY tile[0] ... tile[width*height-1]
//
// with tiles in row-major order. Every tile id must be in [0, registry.Len()).
// Missing, extra or non-integer tokens are reported as ErrMalformedWorld.
func Decode(r io.Reader, registry *Registry) (*World, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	pos := 0
	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("read %s: %w", what, err)
			}
			return 0, fmt.Errorf("token %d (%s): unexpected end of file: %w", pos, what, ErrMalformedWorld)
		}
		tok := sc.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("token %d (%s) %q is not an integer: %w", pos, what, tok, ErrMalformedWorld)
		}
		pos++
		return v, nil
	}

	var header [headerTokens]int
	for i, name := range []string{"width", "height", "entity_id", "spawnX", "spawnY"} {
		v, err := next(name)
		if err != nil {
			return nil, err
		}
		header[i] = v
	}
	width, height := header[0], header[1]
	if err := checkSize(width, height); err != nil {
		return nil, fmt.Errorf("world header: %w", err)
	}

	n := width * height
	ids := make([]ID, 0, min(n, 1<<16))
	for i := 0; i < n; i++ {
		v, err := next("tile")
		if err != nil {
			return nil, err
		}
		if v < 0 || v >= registry.Len() {
			return nil, fmt.Errorf("tile %d at (%d,%d) outside [0,%d): %w: %w",
				v, i%width, i/width, registry.Len(), ErrMalformedWorld, ErrUnknownTile)
		}
		ids = append(ids, ID(v))
	}

	if sc.Scan() {
		return nil, fmt.Errorf("token %d %q: trailing data after %d tiles: %w", pos, sc.Text(), n, ErrMalformedWorld)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read trailing data: %w", err)
	}

	grid, err := NewGrid(width, height, ids, registry)
	if err != nil {
		return nil, err
	}

	return &World{
		Grid:     grid,
		EntityID: header[2],
		SpawnX:   header[3],
		SpawnY:   header[4],
	}, nil
}

// Encode writes w in the format read by Decode, one grid row per line.
func Encode(out io.Writer, w *World) error {
	bw := bufio.NewWriter(out)
	g := w.Grid

	if _, err := fmt.Fprintf(bw, "%d %d\n%d\n%d %d\n", g.Width(), g.Height(), w.EntityID, w.SpawnX, w.SpawnY); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, g.Width())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			row[x] = strconv.Itoa(int(g.ids[x+y*g.Width()]))
		}
		if _, err := fmt.Fprintln(bw, strings.Join(row, " ")); err != nil {
			return fmt.Errorf("write row %d: %w", y, err)
		}
	}

	return bw.Flush()
}
