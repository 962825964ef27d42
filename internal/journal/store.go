// Package journal records every design command executed in a session to
// a local SQLite database, so a session's modeling history can be
// replayed or audited after the fact.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Entry is one recorded command.
type Entry struct {
	ID         int64   `json:"id"`
	SessionID  string  `json:"session_id"`
	Action     string  `json:"action"`
	Params     string  `json:"params"` // JSON-encoded tool arguments
	Success    bool    `json:"success"`
	Error      *string `json:"error,omitempty"`
	DurationMS int64   `json:"duration_ms"`
	CreatedAt  string  `json:"created_at"`
}

// Config holds journal store configuration.
type Config struct {
	DataDir string
	Design  string
}

// DefaultConfig returns the default configuration for the journal store.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir: filepath.Join(home, ".vise"),
		Design:  "Untitled",
	}
}

// Store is the command journal backed by SQLite. Each Store owns one
// session row; all entries recorded through it belong to that session.
type Store struct {
	db        *sql.DB
	cfg       Config
	sessionID string
}

// New opens (or creates) the journal database and starts a new session.
// It creates the data directory if needed, opens SQLite with WAL mode,
// and runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("journal: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "journal.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("journal: open database: %w", err)
	}

	// SQLite performance pragmas
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("journal: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg, sessionID: uuid.New().String()}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("journal: migration: %w", err)
	}
	if err := s.createSession(); err != nil {
		return nil, fmt.Errorf("journal: create session: %w", err)
	}

	return s, nil
}

// Close ends the session and closes the database connection.
func (s *Store) Close() error {
	_, err := s.db.Exec(
		`UPDATE sessions SET ended_at = datetime('now') WHERE id = ?`,
		s.sessionID,
	)
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	return err
}

// SessionID returns the session this store records into.
func (s *Store) SessionID() string {
	return s.sessionID
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id         TEXT PRIMARY KEY,
			design     TEXT NOT NULL,
			started_at TEXT NOT NULL DEFAULT (datetime('now')),
			ended_at   TEXT
		);

		CREATE TABLE IF NOT EXISTS commands (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id  TEXT    NOT NULL,
			action      TEXT    NOT NULL,
			params      TEXT    NOT NULL DEFAULT '{}',
			success     INTEGER NOT NULL DEFAULT 1,
			error       TEXT,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at  TEXT    NOT NULL DEFAULT (datetime('now')),
			FOREIGN KEY (session_id) REFERENCES sessions(id)
		);

		CREATE INDEX IF NOT EXISTS idx_cmd_session ON commands(session_id);
		CREATE INDEX IF NOT EXISTS idx_cmd_created ON commands(created_at DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

func (s *Store) createSession() error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, design) VALUES (?, ?)`,
		s.sessionID, s.cfg.Design,
	)
	return err
}

// Record appends one command to the journal. errText is empty for
// successful commands.
func (s *Store) Record(action, params string, success bool, errText string, elapsed time.Duration) error {
	if params == "" {
		params = "{}"
	}
	var errCol *string
	if errText != "" {
		errCol = &errText
	}
	_, err := s.db.Exec(
		`INSERT INTO commands (session_id, action, params, success, error, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.sessionID, action, params, success, errCol, elapsed.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("journal: record %q: %w", action, err)
	}
	return nil
}

// Recent returns the newest entries of the current session, most recent
// first. A non-positive limit defaults to 20.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, session_id, action, params, success, error, duration_ms, created_at
		 FROM commands
		 WHERE session_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		s.sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: list recent: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Action, &e.Params, &e.Success, &e.Error, &e.DurationMS, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("journal: scan entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: list recent: %w", err)
	}
	return out, nil
}
