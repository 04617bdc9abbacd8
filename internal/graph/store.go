package graph

import (
	"context"
	"io"
)

// Store is the interface for the structure graph backend.
// Implementations: KuzuStore (persistent, cgo), MemStore (in-process).
type Store interface {
	io.Closer

	// Schema setup, called once before any data is inserted.
	InitSchema(ctx context.Context) error

	// Write operations.
	AddNode(ctx context.Context, node Node) error
	AddEdge(ctx context.Context, edge Edge) error

	// Read operations.
	GetNode(ctx context.Context, id string) (*Node, error)
	QueryNodes(ctx context.Context, query string, kind NodeKind, limit int) ([]Node, error)
	Neighbors(ctx context.Context, id string, dir Direction) ([]Node, error)

	// Stats.
	Stats(ctx context.Context) (*GraphStats, error)
}

// Direction controls neighbor traversal direction.
type Direction string

const (
	DirectionOut Direction = "out" // nodes this one points to
	DirectionIn  Direction = "in"  // nodes pointing to this one
)

// LoadGraph bulk-inserts a built graph into a store, nodes before edges.
func LoadGraph(ctx context.Context, st Store, g *Graph) error {
	if err := st.InitSchema(ctx); err != nil {
		return err
	}
	for _, n := range g.Nodes {
		if err := st.AddNode(ctx, n); err != nil {
			return err
		}
	}
	for _, e := range g.Edges {
		if err := st.AddEdge(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
