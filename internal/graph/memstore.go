package graph

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Compile-time assertion: *MemStore satisfies Store.
var _ Store = (*MemStore)(nil)

// MemStore implements Store using Go maps. Thread-safe via sync.RWMutex.
type MemStore struct {
	mu    sync.RWMutex
	nodes map[string]Node
	edges []Edge
}

// NewMemStore returns an initialized MemStore ready for use.
func NewMemStore() *MemStore {
	return &MemStore{nodes: make(map[string]Node)}
}

// InitSchema is a no-op for the in-memory store.
func (m *MemStore) InitSchema(_ context.Context) error {
	return nil
}

// AddNode stores a node keyed by its ID. Re-adding an ID overwrites.
func (m *MemStore) AddNode(_ context.Context, node Node) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes[node.ID] = node
	return nil
}

// AddEdge appends an edge to the internal slice.
func (m *MemStore) AddEdge(_ context.Context, edge Edge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edges = append(m.edges, edge)
	return nil
}

// GetNode returns the node for the given ID, or nil if not found.
func (m *MemStore) GetNode(_ context.Context, id string) (*Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.nodes[id]
	if !ok {
		return nil, nil
	}
	return &n, nil
}

// QueryNodes returns nodes whose name contains query (case-insensitive),
// optionally filtered by kind, up to limit results. A limit <= 0 returns all
// matches. Results are sorted by ID for stable output.
func (m *MemStore) QueryNodes(_ context.Context, query string, kind NodeKind, limit int) ([]Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lowerQuery := strings.ToLower(query)
	var results []Node
	for _, n := range m.nodes {
		if kind != "" && n.Kind != kind {
			continue
		}
		if strings.Contains(strings.ToLower(n.Name), lowerQuery) {
			results = append(results, n)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Neighbors returns nodes one hop from id along the given direction, sorted
// by ID.
func (m *MemStore) Neighbors(_ context.Context, id string, dir Direction) ([]Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Node
	for _, e := range m.edges {
		var other string
		switch {
		case dir == DirectionOut && e.From == id:
			other = e.To
		case dir == DirectionIn && e.To == id:
			other = e.From
		default:
			continue
		}
		if n, ok := m.nodes[other]; ok {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Stats returns counts of all node kinds and edges in the graph.
func (m *MemStore) Stats(_ context.Context) (*GraphStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var s GraphStats
	for _, n := range m.nodes {
		switch n.Kind {
		case NodeKindFolder:
			s.FolderCount++
		case NodeKindFile:
			s.FileCount++
		case NodeKindClass:
			s.ClassCount++
		case NodeKindFunction:
			s.FunctionCount++
		case NodeKindVariable:
			s.VariableCount++
		}
	}
	s.EdgeCount = len(m.edges)
	return &s, nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error {
	return nil
}
