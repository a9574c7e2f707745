// ABOUTME: Root Cobra command and global flags
// ABOUTME: Sets up CLI structure and loads simulator configuration

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/mapbridge/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "mapbridge",
	Short: "Region/delta to center/zoom map adapter simulator",
	Long: `mapbridge adapts a mobile-style map API (region plus latitude/longitude
deltas) onto a web map widget that thinks in center and zoom.

The run command starts an interactive simulated widget session; the mcp
command exposes the adapter's region and camera surface to AI agents.

Examples:
  mapbridge run
  mapbridge run --lat 37 --lng -122 --lat-delta 0.1 --lng-delta 0.1
  mapbridge mcp`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
