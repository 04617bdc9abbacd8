//go:build !cgo

package graph

import "errors"

// OpenStore returns the in-memory store when dbPath is empty. Persistent
// storage needs the KuzuDB driver, which is unavailable without CGO.
func OpenStore(dbPath string) (Store, error) {
	if dbPath == "" {
		return NewMemStore(), nil
	}
	return nil, errors.New("graph: persistent store requires a cgo build")
}
