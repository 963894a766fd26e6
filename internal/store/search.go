package store

import (
	"context"
	"strings"
)

// Search returns the saved lines containing term, in saved order.
// Matching is case-sensitive.
func Search(ctx context.Context, s Storage, term string) ([]string, error) {
	if sq, ok := s.(*SQLiteStorage); ok {
		return sq.Search(ctx, term)
	}

	lines, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := []string{}
	for _, l := range lines {
		if strings.Contains(l, term) {
			results = append(results, l)
		}
	}
	return results, nil
}

// Search finds lines of the newest snapshot containing term. instr is used
// instead of LIKE, which ignores ASCII case.
func (s *SQLiteStorage) Search(ctx context.Context, term string) ([]string, error) {
	id, err := s.latestSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT text FROM entries
		WHERE snapshot_id = ? AND instr(text, ?) > 0
		ORDER BY seq`, id, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []string{}
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		results = append(results, line)
	}
	return results, rows.Err()
}
