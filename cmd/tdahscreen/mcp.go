package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/dshills/tdahscreen/internal/mcptools"
)

func newMCPCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the screening tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.loadEngine()
			if err != nil {
				return err
			}
			g.logf()("Starting MCP stdio server")
			return server.ServeStdio(mcptools.NewServer(e, version))
		},
	}
}
