package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewDocMCPServer creates an MCP server with all 4 document tools registered.
func NewDocMCPServer(svc *DocService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "astdocs",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan_project",
		Description: "Scan a directory tree, extract definitions from every recognized source file, and load the derived structure graph. Returns file counts and graph statistics.",
	}, svc.ScanProject)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query_nodes",
		Description: "Search graph nodes (folders, files, classes, functions, variables) by name substring match. Optionally filter by node kind and limit results.",
	}, svc.QueryNodes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "file_definitions",
		Description: "Return the full definition record extracted for one file in the last scan, including its language, parser, and any parse error.",
	}, svc.FileDefinitions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_neighbors",
		Description: "Return graph nodes one hop from a given node ID, following edges outward or inward.",
	}, svc.GetNeighbors)

	return server
}

// RunMCPServer starts an HTTP server exposing the document MCP tools.
func RunMCPServer(ctx context.Context, svc *DocService, addr string) error {
	server := NewDocMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
