package mcptools

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Tesfalegnp/Auto-Document-Generation/internal/doctree"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/graph"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/language"
)

// DocService holds the graph store, language registry, and last scanned tree
// used by MCP tool handlers.
type DocService struct {
	store    graph.Store
	registry *language.Registry

	mu   sync.RWMutex
	tree *doctree.Node
}

// NewDocService creates a DocService with the given store and registry.
func NewDocService(store graph.Store, registry *language.Registry) *DocService {
	return &DocService{store: store, registry: registry}
}

// ScanProject walks a directory, derives the structure graph, and loads it
// into the store. The resulting tree is kept for file_definitions lookups.
func (s *DocService) ScanProject(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScanProjectInput,
) (*mcp.CallToolResult, ScanProjectOutput, error) {
	if input.RootPath == "" {
		return nil, ScanProjectOutput{}, fmt.Errorf("rootPath is required")
	}
	info, err := os.Stat(input.RootPath)
	if err != nil {
		return nil, ScanProjectOutput{}, fmt.Errorf("cannot access rootPath: %w", err)
	}
	if !info.IsDir() {
		return nil, ScanProjectOutput{}, fmt.Errorf("rootPath is not a directory: %s", input.RootPath)
	}

	walker := doctree.NewWalker(s.registry)
	if input.Workers > 1 {
		walker.Workers = input.Workers
	}
	tree, err := walker.Walk(ctx, input.RootPath)
	if err != nil {
		return nil, ScanProjectOutput{}, fmt.Errorf("walk: %w", err)
	}

	builder := graph.NewBuilder()
	builder.IncludeVariables = input.IncludeVariables
	g := builder.Build(tree)

	if err := graph.LoadGraph(ctx, s.store, g); err != nil {
		return nil, ScanProjectOutput{}, fmt.Errorf("load graph: %w", err)
	}

	s.mu.Lock()
	s.tree = tree
	s.mu.Unlock()

	return nil, ScanProjectOutput{
		Summary: doctree.Summarize(tree),
		Stats:   g.Stats(),
	}, nil
}

// QueryNodes searches graph nodes by name substring match.
func (s *DocService) QueryNodes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryNodesInput,
) (*mcp.CallToolResult, QueryNodesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	nodes, err := s.store.QueryNodes(ctx, input.Query, graph.NodeKind(strings.ToLower(input.Kind)), limit)
	if err != nil {
		return nil, QueryNodesOutput{}, fmt.Errorf("query nodes: %w", err)
	}

	return nil, QueryNodesOutput{Nodes: nodes, Total: len(nodes)}, nil
}

// FileDefinitions returns the extraction record for one file from the last
// scan.
func (s *DocService) FileDefinitions(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FileDefinitionsInput,
) (*mcp.CallToolResult, FileDefinitionsOutput, error) {
	if input.Path == "" {
		return nil, FileDefinitionsOutput{}, fmt.Errorf("path is required")
	}

	s.mu.RLock()
	tree := s.tree
	s.mu.RUnlock()
	if tree == nil {
		return nil, FileDefinitionsOutput{}, fmt.Errorf("no scan available; run scan_project first")
	}

	node := findFile(tree, input.Path)
	if node == nil {
		return nil, FileDefinitionsOutput{}, fmt.Errorf("file not found in last scan: %s", input.Path)
	}

	return nil, FileDefinitionsOutput{
		Path:        node.Path,
		Language:    string(node.Language),
		ParserKind:  string(node.ParserKind),
		ParseError:  node.ParseError,
		Definitions: node.Definitions,
	}, nil
}

// GetNeighbors returns graph nodes one hop from the given node.
func (s *DocService) GetNeighbors(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetNeighborsInput,
) (*mcp.CallToolResult, GetNeighborsOutput, error) {
	if input.NodeID == "" {
		return nil, GetNeighborsOutput{}, fmt.Errorf("nodeId is required")
	}

	dir := graph.DirectionOut
	if strings.EqualFold(input.Direction, "in") {
		dir = graph.DirectionIn
	}

	neighbors, err := s.store.Neighbors(ctx, input.NodeID, dir)
	if err != nil {
		return nil, GetNeighborsOutput{}, fmt.Errorf("neighbors: %w", err)
	}

	return nil, GetNeighborsOutput{Neighbors: neighbors}, nil
}

// findFile locates a file node by path via depth-first search.
func findFile(n *doctree.Node, path string) *doctree.Node {
	if n.IsFile() {
		if n.Path == path {
			return n
		}
		return nil
	}
	for _, c := range n.Children {
		if found := findFile(c, path); found != nil {
			return found
		}
	}
	return nil
}
