package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/securebank-console/internal/model"
	"github.com/Veraticus/securebank-console/internal/service"
	"github.com/google/uuid"
)

// DefaultListLimit caps a journal listing when the filter sets no limit.
const DefaultListLimit = 50

// Record appends a completed call to the journal. An empty ID is assigned.
func (s *SQLiteStorage) Record(ctx context.Context, entry model.JournalEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateEntry(entry); err != nil {
		return err
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO journal (
			id, recorded_at, request_id, workflow, method, path,
			request_body, outcome, error, duration_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.RecordedAt.UTC(),
		entry.RequestID,
		string(entry.Workflow),
		entry.Method,
		entry.Path,
		entry.RequestBody,
		string(entry.Outcome),
		entry.Error,
		entry.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to record journal entry: %w", err)
	}
	return nil
}

// List returns journal entries newest first.
func (s *SQLiteStorage) List(ctx context.Context, filter service.JournalFilter) ([]model.JournalEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLimit, filter.Limit)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	var (
		where []string
		args  []any
	)
	if filter.Workflow != "" {
		where = append(where, "workflow = ?")
		args = append(args, string(filter.Workflow))
	}
	if filter.FailedOnly {
		where = append(where, "outcome = ?")
		args = append(args, string(model.OutcomeFailed))
	}

	query := `
		SELECT id, recorded_at, request_id, workflow, method, path,
			request_body, outcome, error, duration_ms
		FROM journal`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY recorded_at DESC, rowid DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.JournalEntry
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	return entries, nil
}

func scanEntry(rows *sql.Rows) (model.JournalEntry, error) {
	var (
		entry      model.JournalEntry
		workflow   string
		outcome    string
		body       sql.NullString
		errText    sql.NullString
		durationMS int64
	)

	err := rows.Scan(
		&entry.ID,
		&entry.RecordedAt,
		&entry.RequestID,
		&workflow,
		&entry.Method,
		&entry.Path,
		&body,
		&outcome,
		&errText,
		&durationMS,
	)
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("failed to scan journal entry: %w", err)
	}

	entry.Workflow = model.Workflow(workflow)
	entry.Outcome = model.Outcome(outcome)
	entry.RequestBody = body.String
	entry.Error = errText.String
	entry.Duration = time.Duration(durationMS) * time.Millisecond

	return entry, nil
}
