// Package store handles SQLite persistence of game rounds.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/wordserver/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed-width UTC so stored timestamps sort and compare as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for round history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			wordlist_path TEXT NOT NULL,
			word TEXT NOT NULL,
			scrambled TEXT NOT NULL,
			guess TEXT NOT NULL,
			outcome TEXT NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_ended_at ON rounds(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_wordlist_path ON rounds(wordlist_path);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRound stores a finished round.
func (s *Store) InsertRound(ctx context.Context, r model.RoundResult) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (started_at, ended_at, wordlist_path, word, scrambled, guess, outcome, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.StartedAt.UTC().Format(timeLayout),
		r.EndedAt.UTC().Format(timeLayout),
		r.WordListPath,
		r.Word,
		r.Scrambled,
		r.Guess,
		string(r.Outcome),
		r.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRounds returns rounds in ascending end time, limited to the last N when set.
func (s *Store) ListRounds(ctx context.Context, f model.HistoryFilter) ([]model.RoundResult, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if f.WordListPath != "" {
		clauses = append(clauses, "wordlist_path = ?")
		args = append(args, f.WordListPath)
	}
	if f.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, f.Since.UTC().Format(timeLayout))
	}
	limit := -1
	if f.Last > 0 {
		limit = f.Last
	}
	args = append(args, limit)
	query := fmt.Sprintf(`SELECT * FROM (
		SELECT id, started_at, ended_at, wordlist_path, word, scrambled, guess, outcome, duration_ms
		FROM rounds
		WHERE %s
		ORDER BY ended_at DESC, id DESC
		LIMIT ?
	) ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var rounds []model.RoundResult
	for rows.Next() {
		var r model.RoundResult
		var startedAt, endedAt, outcome string
		if err := rows.Scan(&r.ID, &startedAt, &endedAt, &r.WordListPath, &r.Word, &r.Scrambled, &r.Guess, &outcome, &r.DurationMs); err != nil {
			return nil, err
		}
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if r.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		r.Outcome = model.Outcome(outcome)
		rounds = append(rounds, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rounds, nil
}

// Summary aggregates rounds for a word list, or all rounds when path is empty.
func (s *Store) Summary(ctx context.Context, path string) (model.Summary, error) {
	row := s.db.QueryRowContext(ctx, `SELECT
			COUNT(*),
			COALESCE(SUM(outcome = 'solved'), 0),
			COALESCE(SUM(outcome = 'missed'), 0),
			COALESCE(SUM(outcome = 'skipped'), 0),
			COALESCE(CAST(AVG(CASE WHEN outcome = 'solved' THEN duration_ms END) AS INTEGER), 0)
		FROM rounds
		WHERE (? = '' OR wordlist_path = ?)`, path, path)
	var sum model.Summary
	if err := row.Scan(&sum.Rounds, &sum.Solved, &sum.Missed, &sum.Skipped, &sum.AvgSolveMs); err != nil {
		return model.Summary{}, err
	}
	return sum, nil
}
