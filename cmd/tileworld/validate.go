package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/younwookim/tileworld/internal/domain/tile"
	"github.com/younwookim/tileworld/internal/infrastructure/config"
)

var flagEmit bool

var validateCmd = &cobra.Command{
	Use:   "validate <world-file|world-name>",
	Short: "Check a world file against the tile registry",
	Long: `Decode a world file with the configured tile registry and report its
size, spawn point and tile counts. A name without a matching file is
looked up in the config worlds directory.

With --emit the decoded world is written back to stdout in the world
file format.

Examples:
  tileworld validate ./my_world.txt
  tileworld validate map3 --emit > copy.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateWorld(newLoader(), args[0], flagEmit, cmd.OutOrStdout())
	},
}

func init() {
	validateCmd.Flags().BoolVar(&flagEmit, "emit", false, "Print the decoded world in the world file format")
}

func validateWorld(loader *config.Loader, target string, emit bool, out io.Writer) error {
	tiles, err := loader.LoadTiles()
	if err != nil {
		return err
	}
	reg, err := tiles.Registry()
	if err != nil {
		return err
	}

	w, err := decodeTarget(loader, target, reg)
	if err != nil {
		return err
	}

	if emit {
		return tile.Encode(out, w)
	}

	g := w.Grid
	counts := make(map[tile.ID]int)
	for _, id := range g.IDs() {
		counts[id]++
	}
	fmt.Fprintf(out, "%s: %dx%d tiles, entity %d, spawn (%d, %d)\n",
		target, g.Width(), g.Height(), w.EntityID, w.SpawnX, w.SpawnY)
	for _, d := range reg.Descriptors() {
		if n := counts[d.ID]; n > 0 {
			fmt.Fprintf(out, "  %-8s %4d%s\n", d.Name, n, tileTraits(d))
		}
	}
	return nil
}

// decodeTarget reads target as a file, falling back to a named world.
func decodeTarget(loader *config.Loader, target string, reg *tile.Registry) (*tile.World, error) {
	f, err := os.Open(target)
	if errors.Is(err, fs.ErrNotExist) {
		return loader.LoadWorld(target, reg)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w, err := tile.Decode(f, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}
	return w, nil
}

func tileTraits(d tile.Descriptor) string {
	var s string
	if d.Solid {
		s += " solid"
	}
	if d.Hazard {
		s += " hazard"
	}
	if d.Encounter {
		s += " encounter"
	}
	return s
}
