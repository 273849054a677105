// Package history records completed deployments in a local sqlite
// database so `hatch history` can list them later.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded deployment.
type Entry struct {
	Project     string
	AccountID   string
	AccountName string
	URL         string
	DeployedAt  time.Time
}

// Store wraps the history database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the history database location under the user's
// home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error finding home directory: %w", err)
	}
	return filepath.Join(home, ".hatch", "history.db"), nil
}

// Open opens (creating if needed) the history store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS deployments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project TEXT NOT NULL,
		account_id TEXT NOT NULL,
		account_name TEXT NOT NULL,
		url TEXT NOT NULL,
		deployed_at TIMESTAMP NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends a deployment entry.
func (s *Store) Record(e Entry) error {
	if e.DeployedAt.IsZero() {
		e.DeployedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO deployments (project, account_id, account_name, url, deployed_at) VALUES (?, ?, ?, ?, ?)`,
		e.Project, e.AccountID, e.AccountName, e.URL, e.DeployedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record deployment: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT project, account_id, account_name, url, deployed_at
		 FROM deployments ORDER BY deployed_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Project, &e.AccountID, &e.AccountName, &e.URL, &e.DeployedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
