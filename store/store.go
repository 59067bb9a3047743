// Package store persists settled runs in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/lineup/report"
	"github.com/katalvlaran/lineup/roster"
)

// ErrRunNotFound is returned when a run id has no stored row.
var ErrRunNotFound = errors.New("store: run not found")

// Run is one settled pipeline run.
type Run struct {
	ID        string
	CreatedAt time.Time
	Method    string
	Threshold float64
	Ceiling   int64
	Records   report.Records
	Warnings  []roster.Warning
}

// Store manages the SQLite connection and schema.
type Store struct {
	db *sql.DB
}

// Open initializes the SQLite database at path with WAL journaling and
// foreign keys enforced.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("schema migration failed: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		method TEXT NOT NULL,
		threshold REAL NOT NULL,
		ceiling INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS assignments (
		run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		segment TEXT NOT NULL,
		performer TEXT NOT NULL,
		rating INTEGER NOT NULL,
		PRIMARY KEY (run_id, seq)
	);

	CREATE TABLE IF NOT EXISTS show_order (
		run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		segment TEXT NOT NULL,
		PRIMARY KEY (run_id, position)
	);

	CREATE TABLE IF NOT EXISTS warnings (
		run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		kind TEXT NOT NULL,
		subject TEXT NOT NULL,
		detail TEXT NOT NULL,
		PRIMARY KEY (run_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// SaveRun stores run in one transaction and returns its id. A fresh uuid is
// generated when run.ID is empty; a zero CreatedAt becomes now.
func (s *Store) SaveRun(ctx context.Context, run *Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, created_at, method, threshold, ceiling) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt, run.Method, run.Threshold, run.Ceiling,
	); err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	for i, a := range run.Records.Assignments {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO assignments (run_id, seq, segment, performer, rating) VALUES (?, ?, ?, ?, ?)`,
			run.ID, i, a.Segment, a.Performer, a.Rating,
		); err != nil {
			return "", fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	for _, o := range run.Records.Order {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO show_order (run_id, position, segment) VALUES (?, ?, ?)`,
			run.ID, o.Position, o.Segment,
		); err != nil {
			return "", fmt.Errorf("failed to insert show order: %w", err)
		}
	}

	for i, w := range run.Warnings {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO warnings (run_id, seq, kind, subject, detail) VALUES (?, ?, ?, ?, ?)`,
			run.ID, i, string(w.Kind), w.Subject, w.Detail,
		); err != nil {
			return "", fmt.Errorf("failed to insert warning: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}

	return run.ID, nil
}

func (s *Store) ensureRun(ctx context.Context, runID string) error {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT run_id FROM runs WHERE run_id = ?`, runID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return fmt.Errorf("failed to query run: %w", err)
	}

	return nil
}

// LoadOrder returns the stored show order of a run by position.
func (s *Store) LoadOrder(ctx context.Context, runID string) ([]report.OrderRecord, error) {
	if err := s.ensureRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT position, segment FROM show_order WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query show order: %w", err)
	}
	defer rows.Close()

	var out []report.OrderRecord
	for rows.Next() {
		var o report.OrderRecord
		if err := rows.Scan(&o.Position, &o.Segment); err != nil {
			return nil, fmt.Errorf("failed to scan show order: %w", err)
		}
		out = append(out, o)
	}

	return out, rows.Err()
}

// LoadAssignments returns the stored relations of a run in saved order.
func (s *Store) LoadAssignments(ctx context.Context, runID string) ([]report.AssignmentRecord, error) {
	if err := s.ensureRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT segment, performer, rating FROM assignments WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var out []report.AssignmentRecord
	for rows.Next() {
		var a report.AssignmentRecord
		if err := rows.Scan(&a.Segment, &a.Performer, &a.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

// WarningCount returns how many warnings a run stored.
func (s *Store) WarningCount(ctx context.Context, runID string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM warnings WHERE run_id = ?`, runID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count warnings: %w", err)
	}

	return n, nil
}
