// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// RunRecord is one walk through a map, from start (or restart) to exit.
type RunRecord struct {
	ID        int64
	MapID     string
	Ticks     uint64
	Distance  float64 // world units walked
	Bumps     int     // moves rejected by walls
	Player    string  // SSH user, or empty for local play
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			map_id TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			distance REAL NOT NULL,
			bumps INTEGER NOT NULL DEFAULT 0,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_map_id ON runs(map_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(map_id, distance DESC);
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

// SaveRun records a finished run. Runs that never ticked are not worth
// keeping and are rejected.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.MapID == "" {
		return 0, errors.New("storage: run has no map id")
	}
	if r.Ticks == 0 {
		return 0, errors.New("storage: run has no ticks")
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (map_id, ticks, distance, bumps, player) VALUES (?, ?, ?, ?, ?)",
		r.MapID, int64(r.Ticks), r.Distance, r.Bumps, r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the N longest walks on the given map.
// Results are ordered by distance descending.
func (s *Store) TopRuns(mapID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRuns(
		`SELECT id, map_id, ticks, distance, bumps, player, created_at
		 FROM runs
		 WHERE map_id = ?
		 ORDER BY distance DESC, id ASC
		 LIMIT ?`,
		mapID, limit,
	)
}

// RecentRuns retrieves the most recent runs on any map.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryRuns(
		`SELECT id, map_id, ticks, distance, bumps, player, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.MapID, &ticks, &r.Distance, &r.Bumps, &r.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes all runs for the given map.
func (s *Store) ClearRuns(mapID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE map_id = ?", mapID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// MapStats contains aggregated statistics for a map.
type MapStats struct {
	MapID         string
	Runs          int
	TotalTicks    int64
	TotalDistance float64
	LongestWalk   float64
	TotalBumps    int64
	LastPlayed    time.Time
}

// GetMapStats retrieves aggregated statistics for a specific map.
func (s *Store) GetMapStats(mapID string) (*MapStats, error) {
	stats := &MapStats{MapID: mapID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(SUM(distance), 0),
		        COALESCE(MAX(distance), 0), COALESCE(SUM(bumps), 0), MAX(created_at)
		 FROM runs WHERE map_id = ?`,
		mapID,
	).Scan(&stats.Runs, &stats.TotalTicks, &stats.TotalDistance, &stats.LongestWalk, &stats.TotalBumps, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get map stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllMapStats retrieves statistics for every map that has runs.
func (s *Store) GetAllMapStats() (map[string]*MapStats, error) {
	rows, err := s.db.Query(
		`SELECT map_id, COUNT(*), SUM(ticks), SUM(distance), MAX(distance), SUM(bumps), MAX(created_at)
		 FROM runs
		 GROUP BY map_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all map stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*MapStats)
	for rows.Next() {
		var m MapStats
		var lastPlayed any
		if err := rows.Scan(&m.MapID, &m.Runs, &m.TotalTicks, &m.TotalDistance, &m.LongestWalk, &m.TotalBumps, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastPlayed = parseTime(lastPlayed)
		stats[m.MapID] = &m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
