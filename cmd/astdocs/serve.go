package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tesfalegnp/Auto-Document-Generation/internal/config"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/graph"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/mcptools"
)

// runServe starts the MCP server until interrupted.
func runServe(flags cliFlags, cfg *config.ProjectConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := graph.OpenStore(flags.GraphDB)
	if err != nil {
		return err
	}
	defer store.Close()

	svc := mcptools.NewDocService(store, registryFrom(cfg))
	fmt.Fprintf(os.Stderr, "astdocs MCP server listening on %s\n", flags.MCPAddr)
	return mcptools.RunMCPServer(ctx, svc, flags.MCPAddr)
}
