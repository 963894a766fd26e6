// Package store provides the contact storage interface and its file and
// SQLite implementations.
package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotSaved is returned by Load when nothing has been saved yet.
var ErrNotSaved = errors.New("nothing saved yet")

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
)

// Backends lists the supported backend names.
var Backends = []string{BackendJSON, BackendYAML, BackendSQLite}

// Storage persists the rendered contact lines.
type Storage interface {
	// Save replaces the persisted lines with data.
	Save(ctx context.Context, data []string) error

	// Load returns the most recently saved lines.
	// Returns ErrNotSaved if nothing was saved.
	Load(ctx context.Context) ([]string, error)

	// Close releases the storage.
	Close() error
}

// Open returns the storage for backend, persisting at path.
func Open(backend, path string) (Storage, error) {
	switch backend {
	case BackendJSON, "":
		return NewJSONStorage(path), nil
	case BackendYAML:
		return NewYAMLStorage(path), nil
	case BackendSQLite:
		return NewSQLiteStorage(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (valid: json, yaml, sqlite)", backend)
	}
}

// DefaultPath returns the default file name for backend.
func DefaultPath(backend string) string {
	switch backend {
	case BackendYAML:
		return "contacts.yaml"
	case BackendSQLite:
		return "contacts.db"
	default:
		return "contacts.json"
	}
}
