package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const queryTimeout = 5 * time.Second

// Run is one completed checkout speedrun.
type Run struct {
	ID          int64
	Name        string
	Duration    time.Duration
	CompletedAt time.Time
}

// Leaderboard stores completed runs in a local sqlite database.
type Leaderboard struct {
	db *sql.DB
}

// OpenLeaderboard opens (and if needed creates) the leaderboard database at
// the default config-dir location.
func OpenLeaderboard() (*Leaderboard, error) {
	path, err := configPath("leaderboard.db")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return OpenLeaderboardAt(path)
}

// OpenLeaderboardAt opens a leaderboard database at an explicit path.
func OpenLeaderboardAt(path string) (*Leaderboard, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			completed_at TEXT NOT NULL
		)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Leaderboard{db: db}, nil
}

// Close releases the database handle.
func (l *Leaderboard) Close() error {
	return l.db.Close()
}

// RecordRun inserts a completed run.
func (l *Leaderboard) RecordRun(ctx context.Context, name string, duration time.Duration, completedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO runs (name, duration_ms, completed_at) VALUES (?, ?, ?)`,
		name, duration.Milliseconds(), completedAt.UTC().Format(time.RFC3339))
	return err
}

// TopRuns returns the fastest runs, quickest first.
func (l *Leaderboard) TopRuns(ctx context.Context, limit int) ([]Run, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, name, duration_ms, completed_at FROM runs ORDER BY duration_ms ASC, id ASC LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var durationMS int64
		var completedAt string
		if err := rows.Scan(&run.ID, &run.Name, &durationMS, &completedAt); err != nil {
			return nil, err
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		if ts, err := time.Parse(time.RFC3339, completedAt); err == nil {
			run.CompletedAt = ts
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
