// Copyright Meridiano Data SL, 2026. All rights reserved.

// Package runlog persists conversion run history in a SQLite database under
// the output directory: one row per run plus one row per pipeline step, so
// past runs can be inspected without digging through log files.
package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/meridianodata/docs2md/pkg/types"
)

const dbFile = "docs2md.db"

// Store manages the run history database.
type Store struct {
	db  *sql.DB
	dir string
}

// Open opens or creates the run history database at dir/docs2md.db and
// ensures the schema exists.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dir: dir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			input_file TEXT NOT NULL,
			raw_path TEXT,
			adjusted_path TEXT,
			backend TEXT,
			started_at TEXT NOT NULL,
			finished_at TEXT,
			status TEXT NOT NULL,
			error TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS run_adjustments (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			status TEXT NOT NULL,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_adjustments_run_id ON run_adjustments(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// NewRecord starts a run record for cfg with a fresh UUID and the current
// UTC time.
func NewRecord(cfg types.Config) types.RunRecord {
	return types.RunRecord{
		ID:        uuid.NewString(),
		InputFile: cfg.InputFile,
		Backend:   cfg.Backend,
		StartedAt: time.Now().UTC(),
	}
}

// Record inserts a finished run and its per-adjustment outcomes in one
// transaction.
func (s *Store) Record(ctx context.Context, rec types.RunRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, input_file, raw_path, adjusted_path, backend, started_at, finished_at, status, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.InputFile, rec.RawPath, rec.AdjustedPath, string(rec.Backend),
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.FinishedAt.UTC().Format(time.RFC3339Nano),
		string(rec.Status), rec.Error,
	)
	if err != nil {
		return fmt.Errorf("inserting run %s: %w", rec.ID, err)
	}

	for _, a := range rec.Adjustments {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_adjustments (run_id, position, name, status, error)
			 VALUES (?, ?, ?, ?, ?)`,
			rec.ID, a.Position, a.Name, string(a.Status), a.Error,
		)
		if err != nil {
			return fmt.Errorf("inserting adjustment %s for run %s: %w", a.Name, rec.ID, err)
		}
	}

	return tx.Commit()
}

// List returns the most recent runs, newest first, with their adjustment
// outcomes in pipeline order. A non-positive limit returns all runs.
func (s *Store) List(ctx context.Context, limit int) ([]types.RunRecord, error) {
	q := `SELECT id, input_file, raw_path, adjusted_path, backend, started_at, finished_at, status, error
	      FROM runs ORDER BY started_at DESC`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.RunRecord
	for rows.Next() {
		var rec types.RunRecord
		var backend, started, finished string
		if err := rows.Scan(&rec.ID, &rec.InputFile, &rec.RawPath, &rec.AdjustedPath,
			&backend, &started, &finished, &rec.Status, &rec.Error); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		rec.Backend = types.Backend(backend)
		if rec.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parsing started_at for run %s: %w", rec.ID, err)
		}
		if rec.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("parsing finished_at for run %s: %w", rec.ID, err)
		}
		runs = append(runs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	for i := range runs {
		if runs[i].Adjustments, err = s.adjustments(ctx, runs[i].ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (s *Store) adjustments(ctx context.Context, runID string) ([]types.AdjustmentRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, name, status, error FROM run_adjustments
		 WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying adjustments for run %s: %w", runID, err)
	}
	defer rows.Close()

	var recs []types.AdjustmentRecord
	for rows.Next() {
		var a types.AdjustmentRecord
		if err := rows.Scan(&a.Position, &a.Name, &a.Status, &a.Error); err != nil {
			return nil, fmt.Errorf("scanning adjustment: %w", err)
		}
		recs = append(recs, a)
	}
	return recs, rows.Err()
}
