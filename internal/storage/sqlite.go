// Package storage provides SQLite-based persistence for the play history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for play history.
type Store struct {
	db *sql.DB
}

// PlayEntry represents one finished or abandoned run of a level.
type PlayEntry struct {
	ID        int64
	Level     int
	Moves     int
	Won       bool
	CreatedAt time.Time
}

// LevelStats aggregates the play history of a single level.
type LevelStats struct {
	Level     int
	Plays     int
	Wins      int
	BestMoves int // 0 when the level was never won
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
		CREATE TABLE IF NOT EXISTS plays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_plays_level ON plays(level);
		CREATE INDEX IF NOT EXISTS idx_plays_best ON plays(level, won, moves);
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

// SavePlay records a run of a level. Returns the ID of the inserted record.
func (s *Store) SavePlay(level, moves int, won bool) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO plays (level, moves, won) VALUES (?, ?, ?)",
		level, moves, won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save play: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestMoves returns the fewest moves of any winning run for the given level.
// The second result is false when the level was never won.
func (s *Store) BestMoves(level int) (int, bool, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM plays WHERE level = ? AND won = 1",
		level,
	).Scan(&moves)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !moves.Valid {
		return 0, false, nil
	}
	return int(moves.Int64), true, nil
}

// StatsForLevel aggregates the play history of a single level.
func (s *Store) StatsForLevel(level int) (LevelStats, error) {
	st := LevelStats{Level: level}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(won), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN moves END), 0)
		 FROM plays
		 WHERE level = ?`,
		level,
	).Scan(&st.Plays, &st.Wins, &st.BestMoves)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query level stats: %w", err)
	}
	return st, nil
}

// Stats aggregates the play history per level, ordered by level number.
func (s *Store) Stats() ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level,
		        COUNT(*),
		        SUM(won),
		        COALESCE(MIN(CASE WHEN won = 1 THEN moves END), 0)
		 FROM plays
		 GROUP BY level
		 ORDER BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var st LevelStats
		if err := rows.Scan(&st.Level, &st.Plays, &st.Wins, &st.BestMoves); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// RecentPlays retrieves the most recent N runs across all levels.
func (s *Store) RecentPlays(limit int) ([]PlayEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, moves, won, created_at
		 FROM plays
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query plays: %w", err)
	}
	defer rows.Close()

	var entries []PlayEntry
	for rows.Next() {
		var e PlayEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Level, &e.Moves, &e.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearLevel deletes all recorded runs for the given level.
func (s *Store) ClearLevel(level int) error {
	_, err := s.db.Exec("DELETE FROM plays WHERE level = ?", level)
	if err != nil {
		return fmt.Errorf("storage: cannot clear plays: %w", err)
	}
	return nil
}
