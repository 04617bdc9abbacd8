//go:build cgo

package graph

// OpenStore opens the persistent KuzuDB store at dbPath, or the in-memory
// store when dbPath is empty.
func OpenStore(dbPath string) (Store, error) {
	if dbPath == "" {
		return NewMemStore(), nil
	}
	return NewKuzuFileStore(dbPath)
}
