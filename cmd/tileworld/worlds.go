package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "List available worlds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := newLoader()
		cfg, err := loader.LoadGame()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available worlds:")
		for _, name := range loader.Worlds() {
			marker := " "
			if name == cfg.World {
				marker = "*"
			}
			fmt.Fprintf(out, "  %s %s\n", marker, name)
		}
		return nil
	},
}
