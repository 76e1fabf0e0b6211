// Package history keeps a durable, append-only record of diary edits in
// SQLite. The JSON log file stays authoritative; history is derived data
// for reviewing past edits across sessions.
package history

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// Entry is one recorded diary edit. Op is one of add, remove, undo-add,
// undo-remove.
type Entry struct {
	ID        string    `json:"id"`
	CommandID string    `json:"command_id"`
	Op        string    `json:"op"`
	Date      string    `json:"date"`
	Food      string    `json:"food"`
	Servings  float64   `json:"servings"`
	Calories  float64   `json:"calories"`
	CreatedAt time.Time `json:"created_at"`
}

// ListParams holds filters for listing history entries.
type ListParams struct {
	Date  string
	Op    string
	Limit int
}

// Store is the SQLite-backed history store.
type Store struct {
	db *sql.DB

	// Monotonic so ids minted within the same millisecond still sort in
	// insertion order; List breaks created_at ties on id.
	entropy *ulid.MonotonicEntropy
}

// Open opens or creates the history database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	s := &Store{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS edits (
		id         TEXT PRIMARY KEY,
		command_id TEXT NOT NULL,
		op         TEXT NOT NULL,
		date       TEXT NOT NULL,
		food       TEXT NOT NULL,
		servings   REAL NOT NULL,
		calories   REAL NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_edits_date ON edits(date);
	CREATE INDEX IF NOT EXISTS idx_edits_command ON edits(command_id);
	CREATE INDEX IF NOT EXISTS idx_edits_created ON edits(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// Record appends one edit. Implements the diary's Recorder interface.
func (s *Store) Record(commandID, op, date, food string, servings, calories float64) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO edits (id, command_id, op, date, food, servings, calories, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.newID(), commandID, op, date, food, servings, calories, now)
	if err != nil {
		return fmt.Errorf("record edit: %w", err)
	}
	return nil
}

// List returns recorded edits matching the given filters, newest first.
func (s *Store) List(p ListParams) ([]Entry, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"1=1"}
	args := []interface{}{}

	if p.Date != "" {
		where = append(where, "date = ?")
		args = append(args, p.Date)
	}
	if p.Op != "" {
		where = append(where, "op = ?")
		args = append(args, p.Op)
	}

	query := fmt.Sprintf(`
		SELECT id, command_id, op, date, food, servings, calories, created_at
		FROM edits
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, strings.Join(where, " AND "))
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.CommandID, &e.Op, &e.Date, &e.Food, &e.Servings, &e.Calories, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}
