// Package store persists companies, rosters and generated calendars in
// sqlite. The calendar engine itself never touches it; handlers load a
// company's roster here, run the engine, and save the result back.
package store

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested row doesn't exist.
var ErrNotFound = errors.New("not found")

// Store handles all database operations
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite backend
func New(dbPath string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS companies (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		website TEXT,
		industry TEXT,
		audience TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS personas (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies(id),
		name TEXT NOT NULL,
		reddit_username TEXT NOT NULL,
		bio TEXT,
		expertise TEXT,
		tone TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS subreddits (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies(id),
		name TEXT NOT NULL,
		description TEXT,
		posts_per_week INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS topics (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies(id),
		query TEXT NOT NULL,
		intent TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS calendars (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies(id),
		week_start DATETIME NOT NULL,
		week_end DATETIME NOT NULL,
		posts_per_week INTEGER NOT NULL,
		quality_score REAL NOT NULL,
		generated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		calendar_id TEXT NOT NULL REFERENCES calendars(id),
		persona_key TEXT NOT NULL,
		subreddit_key TEXT NOT NULL,
		title TEXT,
		body TEXT NOT NULL,
		topic TEXT,
		date DATETIME NOT NULL,
		hour INTEGER NOT NULL,
		minute INTEGER NOT NULL,
		kind TEXT NOT NULL,
		parent_key TEXT,
		status TEXT NOT NULL,
		title_source TEXT,
		content_source TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_personas_company ON personas(company_id);
	CREATE INDEX IF NOT EXISTS idx_subreddits_company ON subreddits(company_id);
	CREATE INDEX IF NOT EXISTS idx_topics_company ON topics(company_id);
	CREATE INDEX IF NOT EXISTS idx_calendars_company ON calendars(company_id);
	CREATE INDEX IF NOT EXISTS idx_posts_calendar ON posts(calendar_id);
	`

	_, err := s.db.Exec(schema)
	return err
}
