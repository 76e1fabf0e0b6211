package history

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := newTestStore(t)

	if err := s.Record("cmd-1", "add", "2024-03-01", "Sandwich", 1, 270); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.Record("cmd-2", "remove", "2024-03-01", "Sandwich", 1, 270); err != nil {
		t.Fatalf("record: %v", err)
	}

	entries, err := s.List(ListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Op != "remove" || entries[1].Op != "add" {
		t.Errorf("unexpected order: %q, %q", entries[0].Op, entries[1].Op)
	}
	if entries[0].CommandID != "cmd-2" {
		t.Errorf("expected cmd-2 first, got %q", entries[0].CommandID)
	}
	if entries[1].Food != "Sandwich" || entries[1].Calories != 270 {
		t.Errorf("unexpected entry %+v", entries[1])
	}
	if entries[0].ID == "" || entries[0].ID == entries[1].ID {
		t.Error("expected distinct non-empty row ids")
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestListFilters(t *testing.T) {
	s := newTestStore(t)

	s.Record("c1", "add", "2024-03-01", "Apple", 1, 95)
	s.Record("c2", "add", "2024-03-02", "Bread", 1, 80)
	s.Record("c2", "undo-add", "2024-03-02", "Bread", 1, 80)

	byDate, err := s.List(ListParams{Date: "2024-03-02"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byDate) != 2 {
		t.Errorf("expected 2 entries for date, got %d", len(byDate))
	}

	byOp, err := s.List(ListParams{Op: "undo-add"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byOp) != 1 || byOp[0].Food != "Bread" {
		t.Errorf("unexpected op filter result %+v", byOp)
	}

	both, err := s.List(ListParams{Date: "2024-03-01", Op: "undo-add"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(both) != 0 {
		t.Errorf("expected no matches, got %d", len(both))
	}
}

func TestListLimit(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		s.Record("c", "add", "2024-03-01", "Apple", 1, 95)
	}

	entries, err := s.List(ListParams{Limit: 3})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(entries))
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("expected db file to be created")
	}
}
