//go:build cgo

package graph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	kuzu "github.com/kuzudb/go-kuzu"

	"github.com/Tesfalegnp/Auto-Document-Generation/internal/language"
)

// KuzuStore implements the Store interface using KuzuDB as the graph backend.
// It requires CGO because the go-kuzu driver wraps KuzuDB's C library.
type KuzuStore struct {
	db   *kuzu.Database
	conn *kuzu.Connection
}

// Compile-time check that KuzuStore satisfies Store.
var _ Store = (*KuzuStore)(nil)

// NewKuzuStore creates a KuzuStore backed by an in-memory KuzuDB instance.
func NewKuzuStore() (*KuzuStore, error) {
	return openKuzu(":memory:")
}

// NewKuzuFileStore creates a KuzuStore backed by a file-based KuzuDB at the
// given directory path. KuzuDB creates the directory itself for new databases;
// for existing databases, the directory must contain valid KuzuDB files.
func NewKuzuFileStore(dbPath string) (*KuzuStore, error) {
	// Ensure parent directory exists (KuzuDB creates the leaf directory).
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("kuzu: create parent directory: %w", err)
	}
	return openKuzu(dbPath)
}

func openKuzu(path string) (*KuzuStore, error) {
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

// Close releases the KuzuDB connection and database.
func (s *KuzuStore) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

// ---------- Schema setup ----------

// ddlStatements defines the Cypher DDL executed by InitSchema. A single Item
// node table holds every node kind; kind lives in the `type` column so edges
// of any relation can connect any two nodes. Node tables must precede
// relationship tables.
var ddlStatements = []string{
	`CREATE NODE TABLE IF NOT EXISTS Item(
		id STRING,
		type STRING,
		name STRING,
		language STRING,
		PRIMARY KEY(id)
	)`,
	`CREATE REL TABLE IF NOT EXISTS CONTAINS(FROM Item TO Item)`,
	`CREATE REL TABLE IF NOT EXISTS DEFINES(FROM Item TO Item)`,
	`CREATE REL TABLE IF NOT EXISTS HAS_METHOD(FROM Item TO Item)`,
	`CREATE REL TABLE IF NOT EXISTS USES(FROM Item TO Item)`,
}

// InitSchema creates the node and relationship tables if they do not exist.
func (s *KuzuStore) InitSchema(_ context.Context) error {
	for _, stmt := range ddlStatements {
		res, err := s.conn.Query(stmt)
		if err != nil {
			return fmt.Errorf("kuzu: init schema: %w", err)
		}
		res.Close()
	}
	return nil
}

// ---------- Write operations ----------

// AddNode inserts an Item node.
func (s *KuzuStore) AddNode(_ context.Context, node Node) error {
	return s.exec(
		"CREATE (n:Item {id: $id, type: $type, name: $name, language: $lang})",
		map[string]any{
			"id":   node.ID,
			"type": string(node.Kind),
			"name": node.Name,
			"lang": string(node.Language),
		},
	)
}

// AddEdge inserts a relationship edge between two nodes.
// The Cypher statement is chosen based on the Relation.
func (s *KuzuStore) AddEdge(_ context.Context, edge Edge) error {
	cypher, err := edgeCypher(edge.Relation)
	if err != nil {
		return err
	}
	return s.exec(cypher, map[string]any{
		"src": edge.From,
		"dst": edge.To,
	})
}

// edgeCypher returns the MATCH-CREATE Cypher for the given relation.
func edgeCypher(rel Relation) (string, error) {
	table, err := relTable(rel)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`MATCH (a:Item {id: $src}), (b:Item {id: $dst})
			CREATE (a)-[:%s]->(b)`, table), nil
}

// relTable maps a relation to its Kuzu table name.
func relTable(rel Relation) (string, error) {
	switch rel {
	case RelationContains:
		return "CONTAINS", nil
	case RelationDefines:
		return "DEFINES", nil
	case RelationHasMethod:
		return "HAS_METHOD", nil
	case RelationUses:
		return "USES", nil
	default:
		return "", fmt.Errorf("kuzu: unsupported relation: %s", rel)
	}
}

// ---------- Read operations ----------

// GetNode retrieves a single node by ID, or returns nil if not found.
func (s *KuzuStore) GetNode(_ context.Context, id string) (*Node, error) {
	rows, err := s.query(
		"MATCH (n:Item {id: $id}) RETURN n.id, n.type, n.name, n.language",
		map[string]any{"id": id},
	)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rowToNode(rows[0]), nil
}

// QueryNodes returns nodes whose name contains the query string, optionally
// filtered by kind, ordered by ID.
func (s *KuzuStore) QueryNodes(_ context.Context, queryStr string, kind NodeKind, limit int) ([]Node, error) {
	if limit <= 0 {
		limit = 100000
	}
	cypher := `MATCH (n:Item) WHERE n.name CONTAINS $q`
	params := map[string]any{"q": queryStr, "lim": int64(limit)}
	if kind != "" {
		cypher += ` AND n.type = $kind`
		params["kind"] = string(kind)
	}
	cypher += `
		 RETURN n.id, n.type, n.name, n.language
		 ORDER BY n.id
		 LIMIT $lim`

	rows, err := s.query(cypher, params)
	if err != nil {
		return nil, err
	}
	out := make([]Node, 0, len(rows))
	for _, r := range rows {
		out = append(out, *rowToNode(r))
	}
	return out, nil
}

// Neighbors returns nodes one hop from id along the given direction, across
// all relation tables, ordered by ID.
func (s *KuzuStore) Neighbors(_ context.Context, id string, dir Direction) ([]Node, error) {
	var cypher string
	switch dir {
	case DirectionOut:
		cypher = `MATCH (a:Item {id: $id})-[]->(b:Item)
			 RETURN b.id, b.type, b.name, b.language ORDER BY b.id`
	case DirectionIn:
		cypher = `MATCH (a:Item)-[]->(b:Item {id: $id})
			 RETURN a.id, a.type, a.name, a.language ORDER BY a.id`
	default:
		return nil, fmt.Errorf("kuzu: unknown direction: %s", dir)
	}
	rows, err := s.query(cypher, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	out := make([]Node, 0, len(rows))
	for _, r := range rows {
		out = append(out, *rowToNode(r))
	}
	return out, nil
}

// ---------- Stats ----------

// Stats returns node counts by kind plus the total edge count.
func (s *KuzuStore) Stats(_ context.Context) (*GraphStats, error) {
	var stats GraphStats
	counts := []struct {
		kind NodeKind
		dst  *int
	}{
		{NodeKindFolder, &stats.FolderCount},
		{NodeKindFile, &stats.FileCount},
		{NodeKindClass, &stats.ClassCount},
		{NodeKindFunction, &stats.FunctionCount},
		{NodeKindVariable, &stats.VariableCount},
	}
	for _, c := range counts {
		n, err := s.countKind(c.kind)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	edges, err := s.countEdges()
	if err != nil {
		return nil, err
	}
	stats.EdgeCount = edges
	return &stats, nil
}

// ---------- Internal helpers ----------

// exec runs a parameterized Cypher statement that produces no result rows.
func (s *KuzuStore) exec(cypher string, params map[string]any) error {
	stmt, err := s.conn.Prepare(cypher)
	if err != nil {
		return fmt.Errorf("kuzu: prepare: %w", err)
	}
	defer stmt.Close()

	res, err := s.conn.Execute(stmt, params)
	if err != nil {
		return fmt.Errorf("kuzu: execute: %w", err)
	}
	res.Close()
	return nil
}

// query runs a parameterized Cypher statement and collects all result rows.
// Each row is a []any slice with values in column order.
func (s *KuzuStore) query(cypher string, params map[string]any) ([][]any, error) {
	var res *kuzu.QueryResult
	var err error

	if len(params) == 0 {
		res, err = s.conn.Query(cypher)
	} else {
		var stmt *kuzu.PreparedStatement
		stmt, err = s.conn.Prepare(cypher)
		if err != nil {
			return nil, fmt.Errorf("kuzu: prepare: %w", err)
		}
		defer stmt.Close()
		res, err = s.conn.Execute(stmt, params)
	}
	if err != nil {
		return nil, fmt.Errorf("kuzu: query: %w", err)
	}
	defer res.Close()

	var rows [][]any
	for res.HasNext() {
		tuple, err := res.Next()
		if err != nil {
			return nil, fmt.Errorf("kuzu: next: %w", err)
		}
		vals, err := tuple.GetAsSlice()
		if err != nil {
			return nil, fmt.Errorf("kuzu: row values: %w", err)
		}
		rows = append(rows, vals)
	}
	return rows, nil
}

// countKind returns the number of Item rows with the given type.
func (s *KuzuStore) countKind(kind NodeKind) (int, error) {
	rows, err := s.query(
		"MATCH (n:Item) WHERE n.type = $kind RETURN count(n)",
		map[string]any{"kind": string(kind)},
	)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, nil
	}
	return toInt(rows[0][0]), nil
}

// countEdges returns the total number of edges across all relationship tables.
func (s *KuzuStore) countEdges() (int, error) {
	tables := []string{"CONTAINS", "DEFINES", "HAS_METHOD", "USES"}
	total := 0
	for _, t := range tables {
		cypher := fmt.Sprintf("MATCH ()-[r:%s]->() RETURN count(r)", t)
		rows, err := s.query(cypher, nil)
		if err != nil {
			// Table may not exist yet; treat as zero.
			continue
		}
		if len(rows) > 0 && len(rows[0]) > 0 {
			total += toInt(rows[0][0])
		}
	}
	return total, nil
}

// rowToNode converts a 4-column result row into a Node.
// Column order: id, type, name, language.
func rowToNode(r []any) *Node {
	n := &Node{
		ID:   toString(r[0]),
		Kind: NodeKind(toString(r[1])),
		Name: toString(r[2]),
	}
	if lang := toString(r[3]); lang != "" {
		n.Language = language.Language(lang)
	}
	return n
}

// ---------- Type coercion helpers ----------
// KuzuDB returns typed Go values (int64, bool, string).
// These helpers safely coerce any -> concrete type.

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func toInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case int32:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
