package storage

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/securebank-console/internal/model"
	"github.com/Veraticus/securebank-console/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func entryAt(offset time.Duration, workflow model.Workflow, outcome model.Outcome) model.JournalEntry {
	return model.JournalEntry{
		RecordedAt:  baseTime.Add(offset),
		RequestID:   "req-" + offset.String(),
		Workflow:    workflow,
		Method:      "POST",
		Path:        "/" + string(workflow),
		RequestBody: `{"dataset_version":"v1"}`,
		Outcome:     outcome,
		Duration:    150 * time.Millisecond,
	}
}

func TestJournal_RecordAndList(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	failed := entryAt(time.Minute, model.WorkflowAudit, model.OutcomeFailed)
	failed.Error = "backend error (400) on /audit_performance/: Missing dataset version"

	require.NoError(t, store.Record(ctx, entryAt(0, model.WorkflowPredict, model.OutcomeSucceeded)))
	require.NoError(t, store.Record(ctx, failed))

	entries, err := store.List(ctx, service.JournalFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	got := entries[0]
	assert.NotEmpty(t, got.ID)
	assert.True(t, got.RecordedAt.Equal(failed.RecordedAt))
	assert.Equal(t, failed.RequestID, got.RequestID)
	assert.Equal(t, model.WorkflowAudit, got.Workflow)
	assert.Equal(t, "POST", got.Method)
	assert.Equal(t, failed.RequestBody, got.RequestBody)
	assert.Equal(t, model.OutcomeFailed, got.Outcome)
	assert.Equal(t, failed.Error, got.Error)
	assert.Equal(t, 150*time.Millisecond, got.Duration)

	assert.Equal(t, model.WorkflowPredict, entries[1].Workflow)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestJournal_ListFilters(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	seed := []model.JournalEntry{
		entryAt(0, model.WorkflowPredict, model.OutcomeSucceeded),
		entryAt(time.Second, model.WorkflowPredict, model.OutcomeFailed),
		entryAt(2*time.Second, model.WorkflowAudit, model.OutcomeSuperseded),
		entryAt(3*time.Second, model.WorkflowAudit, model.OutcomeSucceeded),
		entryAt(4*time.Second, model.WorkflowHistory, model.OutcomeFailed),
	}
	for _, entry := range seed {
		require.NoError(t, store.Record(ctx, entry))
	}

	tests := []struct {
		name   string
		filter service.JournalFilter
		want   []string
	}{
		{
			name: "everything newest first",
			want: []string{"req-4s", "req-3s", "req-2s", "req-1s", "req-0s"},
		},
		{
			name:   "by workflow",
			filter: service.JournalFilter{Workflow: model.WorkflowAudit},
			want:   []string{"req-3s", "req-2s"},
		},
		{
			name:   "failed only",
			filter: service.JournalFilter{FailedOnly: true},
			want:   []string{"req-4s", "req-1s"},
		},
		{
			name:   "workflow and failed",
			filter: service.JournalFilter{Workflow: model.WorkflowPredict, FailedOnly: true},
			want:   []string{"req-1s"},
		},
		{
			name:   "limited",
			filter: service.JournalFilter{Limit: 2},
			want:   []string{"req-4s", "req-3s"},
		},
		{
			name:   "no matches",
			filter: service.JournalFilter{Workflow: model.WorkflowModels},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := store.List(ctx, tt.filter)
			require.NoError(t, err)

			var ids []string
			for _, entry := range entries {
				ids = append(ids, entry.RequestID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestJournal_KeepsProvidedID(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	entry := entryAt(0, model.WorkflowModel, model.OutcomeSucceeded)
	entry.ID = "fixed-id"
	require.NoError(t, store.Record(ctx, entry))

	entries, err := store.List(ctx, service.JournalFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fixed-id", entries[0].ID)
}

func TestJournal_RecordValidation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		wantErr error
		mutate  func(*model.JournalEntry)
		name    string
	}{
		{name: "missing timestamp", wantErr: ErrInvalidEntry, mutate: func(e *model.JournalEntry) { e.RecordedAt = time.Time{} }},
		{name: "missing workflow", wantErr: ErrInvalidEntry, mutate: func(e *model.JournalEntry) { e.Workflow = "" }},
		{name: "missing path", wantErr: ErrInvalidEntry, mutate: func(e *model.JournalEntry) { e.Path = "" }},
		{name: "unknown outcome", wantErr: ErrInvalidOutcome, mutate: func(e *model.JournalEntry) { e.Outcome = "lost" }},
		{name: "negative duration", wantErr: ErrNegativeDuration, mutate: func(e *model.JournalEntry) { e.Duration = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := entryAt(0, model.WorkflowPredict, model.OutcomeSucceeded)
			tt.mutate(&entry)
			assert.ErrorIs(t, store.Record(ctx, entry), tt.wantErr)
		})
	}

	entries, err := store.List(ctx, service.JournalFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJournal_NegativeLimit(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.List(context.Background(), service.JournalFilter{Limit: -1})
	assert.ErrorIs(t, err, ErrNegativeLimit)
}
