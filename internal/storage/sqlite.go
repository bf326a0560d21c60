// Package storage provides SQLite-based persistence for recorded runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrRunNotFound is returned when no run matches an ID.
var ErrRunNotFound = errors.New("storage: run not found")

// ErrInvalidID is returned when a run ID or prefix contains characters that
// cannot appear in a UUID.
var ErrInvalidID = errors.New("storage: invalid run id")

// ErrAmbiguousID is returned when an ID prefix matches more than one run.
var ErrAmbiguousID = errors.New("storage: ambiguous run id")

// Store manages the SQLite database connection for run recordings.
type Store struct {
	db *sql.DB
}

// Run is one recorded session: enough to rebuild the world and feed it the
// same inputs, plus the final result for verification.
type Run struct {
	ID         uuid.UUID
	GameID     string
	Seed       int64
	TickRate   int
	ConfigYAML []byte
	Frames     []byte // One packed action byte per simulated tick
	Ticks      int
	FinalScore int64
	FinalLevel int
	CreatedAt  time.Time
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// One writer at a time; SSH sessions share the store.
	db.SetMaxOpenConns(1)

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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			config_yaml BLOB NOT NULL,
			frames BLOB NOT NULL,
			ticks INTEGER NOT NULL,
			final_score INTEGER NOT NULL DEFAULT 0,
			final_level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
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

// SaveRun stores a run and returns its ID. A run without an ID gets a new
// random one. Ticks is always taken from the frame count.
func (s *Store) SaveRun(r Run) (uuid.UUID, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.ConfigYAML == nil {
		r.ConfigYAML = []byte{}
	}
	if r.Frames == nil {
		r.Frames = []byte{}
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, game_id, seed, tick_rate, config_yaml, frames, ticks, final_score, final_level)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.GameID, r.Seed, r.TickRate, r.ConfigYAML, r.Frames,
		len(r.Frames), r.FinalScore, r.FinalLevel,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

// LoadRun retrieves a run including its frames. id may be a full UUID or a
// unique prefix of one, as printed by ListRuns.
func (s *Store) LoadRun(id string) (*Run, error) {
	prefix, err := idPrefix(id)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, tick_rate, config_yaml, frames, ticks,
		        final_score, final_level, created_at
		 FROM runs
		 WHERE id LIKE ? || '%'
		 LIMIT 2`,
		prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var rawID string
		var createdAt any
		if err := rows.Scan(&rawID, &r.GameID, &r.Seed, &r.TickRate, &r.ConfigYAML, &r.Frames,
			&r.Ticks, &r.FinalScore, &r.FinalLevel, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if r.ID, err = uuid.Parse(rawID); err != nil {
			return nil, fmt.Errorf("storage: corrupt run id %q: %w", rawID, err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(runs) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	case 1:
		return &runs[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, id)
	}
}

// idPrefix normalizes a user-supplied run ID or prefix. Only hex digits and
// dashes are accepted, so the result is safe inside a LIKE pattern.
func idPrefix(id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: empty id", ErrInvalidID)
	}
	for _, r := range id {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F', r == '-':
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
		}
	}
	return strings.ToLower(id), nil
}

// ListRuns returns the most recent runs without their frames. An empty
// gameID lists every game.
func (s *Store) ListRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, tick_rate, ticks, final_score, final_level, created_at
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var rawID string
		var createdAt any
		if err := rows.Scan(&rawID, &r.GameID, &r.Seed, &r.TickRate, &r.Ticks,
			&r.FinalScore, &r.FinalLevel, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if r.ID, err = uuid.Parse(rawID); err != nil {
			return nil, fmt.Errorf("storage: corrupt run id %q: %w", rawID, err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// DeleteRun removes a run by full ID.
func (s *Store) DeleteRun(id uuid.UUID) error {
	res, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return nil
}

// parseTime handles both time.Time and the SQLite text form.
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
