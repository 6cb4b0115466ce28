// Package storage records play history in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for play history.
type Store struct {
	db *sql.DB
}

// Play is one launch of a catalog entry.
type Play struct {
	ID        int64
	SessionID string
	Title     string
	Exec      string
	StartedAt time.Time
	EndedAt   time.Time // zero while running or if the launcher stopped first
}

// Duration returns how long the game ran, or zero if it never ended.
func (p Play) Duration() time.Duration {
	if p.EndedAt.IsZero() {
		return 0
	}
	return p.EndedAt.Sub(p.StartedAt)
}

// TitleStats aggregates every play of one title.
type TitleStats struct {
	Title     string
	Plays     int
	TotalTime time.Duration
	LastPlay  time.Time
}

// NewSessionID returns an identifier for one person's browsing session.
func NewSessionID() string {
	return uuid.New().String()
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS plays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			title TEXT NOT NULL,
			exec TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER
		);
		CREATE INDEX IF NOT EXISTS idx_plays_title ON plays(title);
		CREATE INDEX IF NOT EXISTS idx_plays_session ON plays(session_id);
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

// RecordLaunch stores the start of a play and returns its ID.
func (s *Store) RecordLaunch(sessionID, title, exec string, startedAt time.Time) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO plays (session_id, title, exec, started_at) VALUES (?, ?, ?, ?)",
		sessionID, title, exec, startedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record launch: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get play ID: %w", err)
	}

	return id, nil
}

// RecordExit stores the end time of a play.
func (s *Store) RecordExit(id int64, endedAt time.Time) error {
	result, err := s.db.Exec("UPDATE plays SET ended_at = ? WHERE id = ?", endedAt.UnixMilli(), id)
	if err != nil {
		return fmt.Errorf("storage: cannot record exit: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot record exit: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("storage: no play with ID %d", id)
	}

	return nil
}

// RecentPlays returns the latest plays, newest first.
func (s *Store) RecentPlays(limit int) ([]Play, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, title, exec, started_at, ended_at
		 FROM plays ORDER BY started_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query plays: %w", err)
	}
	defer rows.Close()

	var plays []Play
	for rows.Next() {
		var p Play
		var started int64
		var ended sql.NullInt64
		if err := rows.Scan(&p.ID, &p.SessionID, &p.Title, &p.Exec, &started, &ended); err != nil {
			return nil, fmt.Errorf("storage: cannot scan play: %w", err)
		}
		p.StartedAt = time.UnixMilli(started)
		if ended.Valid {
			p.EndedAt = time.UnixMilli(ended.Int64)
		}
		plays = append(plays, p)
	}

	return plays, rows.Err()
}

// Stats aggregates plays per title, most played first.
func (s *Store) Stats() ([]TitleStats, error) {
	rows, err := s.db.Query(`
		SELECT title,
		       COUNT(*),
		       COALESCE(SUM(CASE WHEN ended_at IS NOT NULL THEN ended_at - started_at ELSE 0 END), 0),
		       MAX(started_at)
		FROM plays
		GROUP BY title
		ORDER BY COUNT(*) DESC, title ASC`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var stats []TitleStats
	for rows.Next() {
		var st TitleStats
		var totalMillis, last int64
		if err := rows.Scan(&st.Title, &st.Plays, &totalMillis, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats: %w", err)
		}
		st.TotalTime = time.Duration(totalMillis) * time.Millisecond
		st.LastPlay = time.UnixMilli(last)
		stats = append(stats, st)
	}

	return stats, rows.Err()
}

// SessionCount returns the number of distinct sessions that launched anything.
func (s *Store) SessionCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(DISTINCT session_id) FROM plays").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count sessions: %w", err)
	}
	return n, nil
}
