// Package storage provides the SQLite results ledger for finished games.
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

	"github.com/vovakirdan/tui-ladders/internal/core"
)

// ErrUnfinished is returned when saving a report without a winner.
// Only finished games are recorded.
var ErrUnfinished = errors.New("storage: match has no winner")

// Store manages the SQLite database connection for the ledger.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished game.
type MatchRecord struct {
	ID             int64
	MatchID        string
	Variant        string
	Winner         int
	Turns          int
	Final          [2]int // final squares of player 1 and 2
	SnakeBites     [2]int
	LaddersClimbed [2]int
	Overshoots     [2]int
	Duration       time.Duration
	CreatedAt      time.Time
}

// WinCounts holds wins per player.
type WinCounts struct {
	Player1 int
	Player2 int
}

// Total returns the number of recorded games.
func (w WinCounts) Total() int {
	return w.Player1 + w.Player2
}

// MatchStats contains aggregated statistics for a variant.
type MatchStats struct {
	Variant     string
	GamesCount  int
	AvgTurns    float64
	MinTurns    int
	MaxTurns    int
	SnakeBites  int
	Ladders     int
	AvgDuration time.Duration
	LastPlayed  time.Time
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			winner INTEGER NOT NULL,
			turns INTEGER NOT NULL,
			p1_final INTEGER NOT NULL,
			p2_final INTEGER NOT NULL,
			p1_snakes INTEGER NOT NULL DEFAULT 0,
			p2_snakes INTEGER NOT NULL DEFAULT 0,
			p1_ladders INTEGER NOT NULL DEFAULT 0,
			p2_ladders INTEGER NOT NULL DEFAULT 0,
			p1_overshoots INTEGER NOT NULL DEFAULT 0,
			p2_overshoots INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_variant ON matches(variant);
		CREATE INDEX IF NOT EXISTS idx_matches_recent ON matches(variant, created_at DESC);
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

// SaveMatch records a finished game and returns its match ID.
func (s *Store) SaveMatch(report core.MatchReport, duration time.Duration) (string, error) {
	if report.Winner != 1 && report.Winner != 2 {
		return "", ErrUnfinished
	}

	matchID := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, variant, winner, turns, p1_final, p2_final,
		  p1_snakes, p2_snakes, p1_ladders, p2_ladders, p1_overshoots, p2_overshoots, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		matchID,
		report.Variant,
		report.Winner,
		report.Turns,
		report.Positions[0], report.Positions[1],
		report.SnakeBites[0], report.SnakeBites[1],
		report.LaddersClimbed[0], report.LaddersClimbed[1],
		report.Overshoots[0], report.Overshoots[1],
		int64(duration/time.Second),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}

	return matchID, nil
}

// RecentMatches retrieves the most recent games, newest first.
// An empty variant matches every variant.
func (s *Store) RecentMatches(variant string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, variant, winner, turns, p1_final, p2_final,
		        p1_snakes, p2_snakes, p1_ladders, p2_ladders, p1_overshoots, p2_overshoots,
		        duration_secs, created_at
		 FROM matches
		 WHERE (? = '' OR variant = ?)
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var r MatchRecord
		var durationSecs int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.MatchID,
			&r.Variant,
			&r.Winner,
			&r.Turns,
			&r.Final[0], &r.Final[1],
			&r.SnakeBites[0], &r.SnakeBites[1],
			&r.LaddersClimbed[0], &r.LaddersClimbed[1],
			&r.Overshoots[0], &r.Overshoots[1],
			&durationSecs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationSecs) * time.Second
		r.CreatedAt = parseTimestamp(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// WinCounts returns wins per player. An empty variant counts every variant.
func (s *Store) WinCounts(variant string) (WinCounts, error) {
	rows, err := s.db.Query(
		`SELECT winner, COUNT(*)
		 FROM matches
		 WHERE (? = '' OR variant = ?)
		 GROUP BY winner`,
		variant, variant,
	)
	if err != nil {
		return WinCounts{}, fmt.Errorf("storage: cannot query win counts: %w", err)
	}
	defer rows.Close()

	var counts WinCounts
	for rows.Next() {
		var winner, n int
		if err := rows.Scan(&winner, &n); err != nil {
			return WinCounts{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		switch winner {
		case 1:
			counts.Player1 = n
		case 2:
			counts.Player2 = n
		}
	}

	if err := rows.Err(); err != nil {
		return WinCounts{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// Stats retrieves aggregated statistics. An empty variant covers every variant.
func (s *Store) Stats(variant string) (*MatchStats, error) {
	stats := &MatchStats{Variant: variant}

	var avgDuration float64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(turns), 0), COALESCE(MIN(turns), 0), COALESCE(MAX(turns), 0),
		        COALESCE(SUM(p1_snakes + p2_snakes), 0), COALESCE(SUM(p1_ladders + p2_ladders), 0),
		        COALESCE(AVG(duration_secs), 0), MAX(created_at)
		 FROM matches
		 WHERE (? = '' OR variant = ?)`,
		variant, variant,
	).Scan(
		&stats.GamesCount,
		&stats.AvgTurns,
		&stats.MinTurns,
		&stats.MaxTurns,
		&stats.SnakeBites,
		&stats.Ladders,
		&avgDuration,
		&lastPlayed,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get match stats: %w", err)
	}

	stats.AvgDuration = time.Duration(avgDuration * float64(time.Second))
	stats.LastPlayed = parseTimestamp(lastPlayed)
	return stats, nil
}

// ClearMatches deletes the recorded games of a variant, or all games
// when variant is empty. Returns the number of deleted games.
func (s *Store) ClearMatches(variant string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM matches WHERE (? = '' OR variant = ?)", variant, variant)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n, nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
