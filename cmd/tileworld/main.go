// tileworld is a tile-based world runner built on a fixed-timestep scheduler.
//
// Usage:
//
//	tileworld run                  - Open a window and play
//	tileworld headless             - Run the simulation without a window
//	tileworld validate <world>     - Check a world file against the tile registry
//	tileworld worlds               - List available worlds
//
// Global flags:
//
//	--config <dir>       - Config directory searched before the built-in defaults
//	--log-level <level>  - debug, info, warn or error (default: from game.yaml)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfigDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tileworld",
	Short: "Tileworld - walk a tile map on a fixed-timestep loop",
	Long: `Tileworld runs a top-down tile world: a player walks the map, collides
with solid tiles, and moves between start, play, pause, menu, inventory,
battle and game-over screens.

Examples:
  tileworld run
  tileworld run --world map3
  tileworld headless --ticks 600 --record run.json
  tileworld headless --replay run.json
  tileworld validate my_world.txt --emit`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (searched before ~/.tileworld/configs, ./configs and the defaults)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(worldsCmd)
}
