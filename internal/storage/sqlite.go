// Package storage provides a SQLite ledger of gacha rewards.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only rewards are stored. Boards and clicks are never persisted.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/leva-autoplay/internal/config"
)

// Store manages the SQLite database connection for the reward ledger.
type Store struct {
	db *sql.DB
}

// Reward represents a single gacha roll result.
type Reward struct {
	ID        int64
	RunID     string // Run that rolled it
	RecordID  int    // Server-side record id
	Name      string
	Pic       string
	IsCode    bool // Reward is a redeem code
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath = config.ExpandHome(dbPath)

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
		CREATE TABLE IF NOT EXISTS rewards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			record_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			pic TEXT NOT NULL DEFAULT '',
			is_code INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rewards_run_id ON rewards(run_id);
		CREATE INDEX IF NOT EXISTS idx_rewards_created ON rewards(created_at DESC);
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

// SaveReward records a reward.
// Returns the ID of the inserted record.
func (s *Store) SaveReward(r Reward) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO rewards (run_id, record_id, name, pic, is_code) VALUES (?, ?, ?, ?, ?)",
		r.RunID, r.RecordID, r.Name, r.Pic, r.IsCode,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save reward: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRewards retrieves the newest rewards, newest first.
func (s *Store) RecentRewards(limit int) ([]Reward, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, record_id, name, pic, is_code, created_at
		 FROM rewards
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rewards: %w", err)
	}
	defer rows.Close()

	var rewards []Reward
	for rows.Next() {
		var r Reward
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.RecordID, &r.Name, &r.Pic, &r.IsCode, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		rewards = append(rewards, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rewards, nil
}

// RewardCount returns the number of recorded rewards.
func (s *Store) RewardCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM rewards").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count rewards: %w", err)
	}
	return n, nil
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
