package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"noa/internal/config"
	"noa/internal/services"
)

// Store manages ledger persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the ledger database and applies the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.LedgerPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// BeginRun inserts a new run in the running state and returns it.
func (s *Store) BeginRun(ctx context.Context, payload string) (*Run, error) {
	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (payload, status, steps, created_at, updated_at)
         VALUES (?, ?, '[]', ?, ?)`,
		payload, StatusRunning, timestamp, timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("run id: %w", err)
	}
	return &Run{
		ID:        id,
		Payload:   payload,
		Status:    StatusRunning,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CompleteRun marks a run completed with its final workspace and trace.
func (s *Store) CompleteRun(ctx context.Context, id int64, workspace string, steps []string) error {
	return s.finishRun(ctx, id, StatusCompleted, workspace, steps, "")
}

// FailRun marks a run failed, preserving the partial trace and error message.
func (s *Store) FailRun(ctx context.Context, id int64, workspace string, steps []string, errMsg string) error {
	return s.finishRun(ctx, id, StatusFailed, workspace, steps, errMsg)
}

func (s *Store) finishRun(ctx context.Context, id int64, status Status, workspace string, steps []string, errMsg string) error {
	encoded, err := encodeSteps(steps)
	if err != nil {
		return err
	}
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, workspace = ?, steps = ?, error_message = ?, updated_at = ?
         WHERE id = ?`,
		status, workspace, encoded, errMsg, timestamp, id,
	)
	if err != nil {
		return fmt.Errorf("update run %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update run %d: %w", id, err)
	}
	if affected == 0 {
		return services.Wrap(services.ErrNotFound, "ledger", "update run", fmt.Sprintf("run %d", id), nil)
	}
	return nil
}

// GetRun fetches a run by identifier.
func (s *Store) GetRun(ctx context.Context, id int64) (*Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, payload, workspace, status, steps, error_message, created_at, updated_at
         FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, services.Wrap(services.ErrNotFound, "ledger", "get run", fmt.Sprintf("run %d", id), nil)
	}
	return run, err
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, payload, workspace, status, steps, error_message, created_at, updated_at
         FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RecordAgentEvent appends an audit entry for an agent execution.
func (s *Store) RecordAgentEvent(ctx context.Context, agent, action string, details map[string]any) error {
	encoded := "{}"
	if len(details) > 0 {
		data, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("encode event details: %w", err)
		}
		encoded = string(data)
	}
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO agent_events (agent, action, details, created_at) VALUES (?, ?, ?, ?)`,
		agent, action, encoded, timestamp,
	); err != nil {
		return fmt.Errorf("insert agent event: %w", err)
	}
	return nil
}

// ListAgentEvents returns audit entries in chronological order. An empty
// agent lists events across all agents.
func (s *Store) ListAgentEvents(ctx context.Context, agent string, limit int) ([]*AgentEvent, error) {
	if limit <= 0 {
		limit = 200
	}
	query := `SELECT id, agent, action, details, created_at FROM agent_events
         ORDER BY id ASC LIMIT ?`
	args := []any{limit}
	if agent != "" {
		query = `SELECT id, agent, action, details, created_at FROM agent_events
         WHERE agent = ? ORDER BY id ASC LIMIT ?`
		args = []any{agent, limit}
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list agent events: %w", err)
	}
	defer rows.Close()

	var events []*AgentEvent
	for rows.Next() {
		var (
			event     AgentEvent
			details   string
			createdAt string
		)
		if err := rows.Scan(&event.ID, &event.Agent, &event.Action, &details, &createdAt); err != nil {
			return nil, fmt.Errorf("scan agent event: %w", err)
		}
		if err := json.Unmarshal([]byte(details), &event.Details); err != nil {
			return nil, fmt.Errorf("decode event details: %w", err)
		}
		event.CreatedAt = parseTimestamp(createdAt)
		events = append(events, &event)
	}
	return events, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		run       Run
		steps     string
		createdAt string
		updatedAt string
	)
	if err := row.Scan(&run.ID, &run.Payload, &run.Workspace, &run.Status, &steps, &run.ErrorMessage, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(steps), &run.Steps); err != nil {
		return nil, fmt.Errorf("decode run steps: %w", err)
	}
	run.CreatedAt = parseTimestamp(createdAt)
	run.UpdatedAt = parseTimestamp(updatedAt)
	return &run, nil
}

func encodeSteps(steps []string) (string, error) {
	if steps == nil {
		steps = []string{}
	}
	data, err := json.Marshal(steps)
	if err != nil {
		return "", fmt.Errorf("encode run steps: %w", err)
	}
	return string(data), nil
}

func parseTimestamp(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
