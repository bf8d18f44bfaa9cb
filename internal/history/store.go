// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a ledger of completed merge runs in SQLite.
// Implements: prd002-history (R1-R3); docs/ARCHITECTURE § Merge History.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/mergepdf/internal/merge"
	"github.com/pdiddy/mergepdf/pkg/types"
)

const dbFile = "history.db"

// ItemRecord is one input file's outcome within a recorded run.
type ItemRecord struct {
	Position int    `json:"position"`
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	Pages    int    `json:"pages"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
}

// Run is one recorded merge run with its per-item outcomes.
type Run struct {
	ID         int64        `json:"id"`
	StartedAt  time.Time    `json:"started_at"`
	OutputPath string       `json:"output_path"`
	Pages      int          `json:"pages"`
	Succeeded  int          `json:"succeeded"`
	Failed     int          `json:"failed"`
	Items      []ItemRecord `json:"items"`
}

// Item statuses stored in the ledger.
const (
	StatusMerged = "merged"
	StatusFailed = "failed"
)

// DefaultPath returns the ledger location under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(dir, "mergepdf", dbFile), nil
}

// Store manages the merge history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger for cfg, creating parent directories and
// the schema as needed (R1.2). An empty cfg.Path selects DefaultPath.
func Open(cfg types.HistoryConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			output_path TEXT NOT NULL,
			pages INTEGER NOT NULL,
			succeeded INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_items (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			path TEXT NOT NULL,
			kind TEXT NOT NULL,
			pages INTEGER NOT NULL,
			status TEXT NOT NULL,
			reason TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_items_run_id ON run_items(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts a completed run and its items in one transaction (R1.1).
func (s *Store) Record(ctx context.Context, run Run) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, output_path, pages, succeeded, failed)
		 VALUES (?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.OutputPath, run.Pages, run.Succeeded, run.Failed,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_items (run_id, position, path, kind, pages, status, reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing item insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range run.Items {
		_, err := stmt.ExecContext(ctx,
			runID, item.Position, item.Path, item.Kind,
			item.Pages, item.Status, item.Reason,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting item %s: %w", item.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Recent returns the most recent runs, newest first, items included (R2.1).
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, output_path, pages, succeeded, failed
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var startedAt string
		if err := rows.Scan(&run.ID, &startedAt, &run.OutputPath,
			&run.Pages, &run.Succeeded, &run.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	for i := range runs {
		items, err := s.runItems(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Items = items
	}
	return runs, nil
}

func (s *Store) runItems(ctx context.Context, runID int64) ([]ItemRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, path, kind, pages, status, COALESCE(reason, '')
		 FROM run_items WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run items: %w", err)
	}
	defer rows.Close()

	var items []ItemRecord
	for rows.Next() {
		var item ItemRecord
		if err := rows.Scan(&item.Position, &item.Path, &item.Kind,
			&item.Pages, &item.Status, &item.Reason); err != nil {
			return nil, fmt.Errorf("scanning run item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// FromResult builds a Run record from a finished merge. Inputs are walked in
// their original order; each one matches the head of either the success or
// the failure list, both of which preserve input order.
func FromResult(outputPath string, inputs []types.InputItem, res *merge.Result, startedAt time.Time) Run {
	run := Run{
		StartedAt:  startedAt,
		OutputPath: outputPath,
		Pages:      res.PageCount(),
		Succeeded:  len(res.Items),
		Failed:     len(res.Failures),
	}

	si, fi := 0, 0
	for pos, item := range inputs {
		switch {
		case si < len(res.Items) && res.Items[si].Item == item:
			run.Items = append(run.Items, ItemRecord{
				Position: pos,
				Path:     item.Path,
				Kind:     string(item.Kind),
				Pages:    res.Items[si].Pages,
				Status:   StatusMerged,
			})
			si++
		case fi < len(res.Failures) && res.Failures[fi].Item == item:
			run.Items = append(run.Items, ItemRecord{
				Position: pos,
				Path:     item.Path,
				Kind:     string(item.Kind),
				Status:   StatusFailed,
				Reason:   res.Failures[fi].Reason,
			})
			fi++
		}
	}
	return run
}
