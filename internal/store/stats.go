package store

import (
	"context"
	"errors"
	"os"
)

// Stats holds storage statistics.
type Stats struct {
	Backend   string     `json:"backend"`
	Path      string     `json:"path"`
	SizeBytes int64      `json:"size_bytes"`
	Saved     bool       `json:"saved"`
	Entries   int        `json:"entries"`
	Snapshots []Snapshot `json:"snapshots,omitempty"`
}

// Collect gathers statistics for s, which persists at path.
func Collect(ctx context.Context, s Storage, backend, path string) (*Stats, error) {
	st := &Stats{Backend: backend, Path: path}

	if info, err := os.Stat(path); err == nil {
		st.SizeBytes = info.Size()
	}

	data, err := s.Load(ctx)
	switch {
	case errors.Is(err, ErrNotSaved):
		return st, nil
	case err != nil:
		return st, err
	}
	st.Saved = true
	st.Entries = len(data)

	if sq, ok := s.(*SQLiteStorage); ok {
		snaps, err := sq.Snapshots(ctx)
		if err != nil {
			return st, err
		}
		st.Snapshots = snaps
	}

	return st, nil
}
