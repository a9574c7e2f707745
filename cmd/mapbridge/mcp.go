// ABOUTME: MCP serve command
// ABOUTME: Starts the MCP server over a loaded simulated widget

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harper/mapbridge/internal/adapter"
	"github.com/harper/mapbridge/internal/mcp"
	"github.com/harper/mapbridge/internal/widget"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		region := cfg.GetRegion()
		sim := widget.NewSim(nil)
		a := adapter.New(sim, nil, adapter.Options{
			InitialRegion: &region,
			MapType:       cfg.GetMapType(),
		})
		defer a.Close()
		sim.Load()

		server, err := mcp.NewServer(a)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
