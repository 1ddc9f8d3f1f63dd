// Package storage provides SQLite-based persistence for autosaves,
// named boards and puzzle solves.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a named record does not exist.
var ErrNotFound = errors.New("storage: not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SavedBoard is a board stored under a name.
type SavedBoard struct {
	ID        string // UUID
	Name      string
	Code      string // Compact board code without marble suffix
	Blue      int
	Red       int
	CreatedAt time.Time
}

// Solve records a board that produced a puzzle's goal.
type Solve struct {
	ID        int64
	PuzzleID  string
	Parts     int
	Code      string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS autosave (
			slot TEXT PRIMARY KEY,
			snapshot TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS boards (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			code TEXT NOT NULL,
			blue INTEGER NOT NULL,
			red INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL,
			parts INTEGER NOT NULL,
			code TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(puzzle_id, parts ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveAutosave stores a snapshot under slot, replacing any previous one.
func (s *Store) SaveAutosave(slot, snapshot string) error {
	_, err := s.db.Exec(
		`INSERT INTO autosave (slot, snapshot, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET snapshot = excluded.snapshot, updated_at = CURRENT_TIMESTAMP`,
		slot, snapshot,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save autosave %s: %w", slot, err)
	}
	return nil
}

// LoadAutosave returns the snapshot stored under slot.
// Returns ErrNotFound if the slot is empty.
func (s *Store) LoadAutosave(slot string) (string, error) {
	var snapshot string
	err := s.db.QueryRow("SELECT snapshot FROM autosave WHERE slot = ?", slot).Scan(&snapshot)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot load autosave %s: %w", slot, err)
	}
	return snapshot, nil
}

// DeleteAutosave clears a slot. Clearing an empty slot is not an error.
func (s *Store) DeleteAutosave(slot string) error {
	if _, err := s.db.Exec("DELETE FROM autosave WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete autosave %s: %w", slot, err)
	}
	return nil
}

// SaveBoard stores a board under name. Saving an existing name replaces
// its code and marbles but keeps its ID.
func (s *Store) SaveBoard(name, code string, blue, red int) (SavedBoard, error) {
	if name == "" {
		return SavedBoard{}, fmt.Errorf("storage: board name is empty")
	}
	_, err := s.db.Exec(
		`INSERT INTO boards (id, name, code, blue, red) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET code = excluded.code, blue = excluded.blue, red = excluded.red`,
		uuid.NewString(), name, code, blue, red,
	)
	if err != nil {
		return SavedBoard{}, fmt.Errorf("storage: cannot save board %s: %w", name, err)
	}
	return s.GetBoard(name)
}

// GetBoard returns the board stored under a name or ID.
func (s *Store) GetBoard(nameOrID string) (SavedBoard, error) {
	var b SavedBoard
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, name, code, blue, red, created_at
		 FROM boards
		 WHERE name = ? OR id = ?`,
		nameOrID, nameOrID,
	).Scan(&b.ID, &b.Name, &b.Code, &b.Blue, &b.Red, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedBoard{}, ErrNotFound
	}
	if err != nil {
		return SavedBoard{}, fmt.Errorf("storage: cannot load board %s: %w", nameOrID, err)
	}
	b.CreatedAt = parseTime(createdAt)
	return b, nil
}

// ListBoards returns all saved boards ordered by name.
func (s *Store) ListBoards() ([]SavedBoard, error) {
	rows, err := s.db.Query(
		`SELECT id, name, code, blue, red, created_at
		 FROM boards
		 ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query boards: %w", err)
	}
	defer rows.Close()

	var boards []SavedBoard
	for rows.Next() {
		var b SavedBoard
		var createdAt any
		if err := rows.Scan(&b.ID, &b.Name, &b.Code, &b.Blue, &b.Red, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		b.CreatedAt = parseTime(createdAt)
		boards = append(boards, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return boards, nil
}

// DeleteBoard removes a saved board by name or ID.
// Returns ErrNotFound if nothing was deleted.
func (s *Store) DeleteBoard(nameOrID string) error {
	result, err := s.db.Exec("DELETE FROM boards WHERE name = ? OR id = ?", nameOrID, nameOrID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete board %s: %w", nameOrID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordSolve stores a solving board for a puzzle.
// Returns the ID of the inserted record.
func (s *Store) RecordSolve(puzzleID string, parts int, code string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO solves (puzzle_id, parts, code) VALUES (?, ?, ?)",
		puzzleID, parts, code,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolves retrieves the solves using the fewest parts for a puzzle.
func (s *Store) BestSolves(puzzleID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, parts, code, created_at
		 FROM solves
		 WHERE puzzle_id = ?
		 ORDER BY parts ASC, id ASC
		 LIMIT ?`,
		puzzleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var e Solve
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PuzzleID, &e.Parts, &e.Code, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		solves = append(solves, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solves, nil
}

// FewestParts returns the smallest part count among a puzzle's solves.
// Returns 0 if the puzzle has not been solved.
func (s *Store) FewestParts(puzzleID string) (int, error) {
	var parts sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(parts) FROM solves WHERE puzzle_id = ?",
		puzzleID,
	).Scan(&parts)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query fewest parts: %w", err)
	}

	if !parts.Valid {
		return 0, nil
	}

	return int(parts.Int64), nil
}
