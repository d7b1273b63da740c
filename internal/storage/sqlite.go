// Package storage provides a SQLite-backed records store.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database lives in memory only; records die with the process.
package storage

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/button-maze/internal/core"
	"github.com/vovakirdan/button-maze/internal/records"
)

// Store implements records.Store on a private in-memory SQLite database.
type Store struct {
	db *sql.DB

	closeOnce sync.Once
	closeErr  error
}

var _ records.Store = (*Store)(nil)

// OpenMemory creates an empty in-memory database and runs migrations.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			elapsed_secs REAL NOT NULL,
			bonus_count INTEGER NOT NULL DEFAULT 0,
			completed_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_records_order ON records(elapsed_secs ASC, bonus_count DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. Safe to call more than once.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		if s.db != nil {
			s.closeErr = s.db.Close()
		}
	})
	return s.closeErr
}

// Append inserts a completed session record.
func (s *Store) Append(r records.Record) error {
	_, err := s.db.Exec(
		`INSERT INTO records (session_id, difficulty, elapsed_secs, bonus_count, completed_at)
		 VALUES (?, ?, ?, ?, ?)`,
		r.SessionID, string(r.Difficulty), r.ElapsedSeconds, r.BonusCount, r.CompletedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save record: %w", err)
	}
	return nil
}

// Sorted returns every record, fastest first, most bonus first on ties.
// Full ties keep insertion order.
func (s *Store) Sorted() ([]records.Record, error) {
	rows, err := s.db.Query(
		`SELECT session_id, difficulty, elapsed_secs, bonus_count, completed_at
		 FROM records
		 ORDER BY elapsed_secs ASC, bonus_count DESC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	out := []records.Record{}
	for rows.Next() {
		var (
			r          records.Record
			difficulty string
			completed  int64
		)
		if err := rows.Scan(&r.SessionID, &difficulty, &r.ElapsedSeconds, &r.BonusCount, &completed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Difficulty = core.Difficulty(difficulty)
		r.CompletedAt = time.Unix(0, completed)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// Stats returns per-difficulty aggregates in selection order, computed by SQLite.
// Difficulties without records are omitted.
func (s *Store) Stats() ([]records.Summary, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MIN(elapsed_secs), MAX(bonus_count)
		 FROM records
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	byDifficulty := make(map[core.Difficulty]records.Summary)
	for rows.Next() {
		var (
			st         records.Summary
			difficulty string
		)
		if err := rows.Scan(&difficulty, &st.Count, &st.BestSeconds, &st.MostBonus); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		st.Difficulty = core.Difficulty(difficulty)
		byDifficulty[st.Difficulty] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	var stats []records.Summary
	for _, d := range core.Difficulties {
		if st, ok := byDifficulty[d]; ok {
			stats = append(stats, st)
		}
	}
	return stats, nil
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count records: %w", err)
	}
	return n, nil
}
