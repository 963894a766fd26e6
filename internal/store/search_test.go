package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSearch_Basic(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	sq, err := NewSQLiteStorage(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer sq.Close()

	lines := []string{
		"name: Ann, phone: 111, birthday: 2000-01-01",
		"name: Bob, phone: 222, birthday: -",
		"name: Annette, phone: 333, birthday: 1990-01-01",
	}

	for _, s := range []Storage{sq, NewJSONStorage(filepath.Join(dir, "test.json"))} {
		if err := s.Save(ctx, lines); err != nil {
			t.Fatal(err)
		}

		results, err := Search(ctx, s, "Ann")
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(results, []string{lines[0], lines[2]}) {
			t.Errorf("expected Ann and Annette, got %q", results)
		}

		// Case-sensitive
		results, err = Search(ctx, s, "ann")
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 0 {
			t.Errorf("expected 0 results, got %q", results)
		}

		results, err = Search(ctx, s, "1990")
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 1 {
			t.Errorf("expected 1 result, got %d", len(results))
		}
	}
}

func TestSearch_NothingSaved(t *testing.T) {
	dir := t.TempDir()
	sq := newTestStore(t)

	for _, s := range []Storage{sq, NewYAMLStorage(filepath.Join(dir, "test.yaml"))} {
		_, err := Search(context.Background(), s, "x")
		if !errors.Is(err, ErrNotSaved) {
			t.Errorf("expected ErrNotSaved, got %v", err)
		}
	}
}
