package console

import (
	"context"
	"sync"

	"github.com/Veraticus/securebank-console/internal/model"
	"github.com/Veraticus/securebank-console/internal/service"
	"github.com/stretchr/testify/mock"
)

type mockBackend struct {
	mock.Mock
}

var _ service.Backend = (*mockBackend)(nil)

func (m *mockBackend) History(ctx context.Context) ([]model.HistoryEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]model.HistoryEntry)
	return entries, args.Error(1)
}

func (m *mockBackend) Datasets(ctx context.Context) ([]model.DatasetSummary, error) {
	args := m.Called(ctx)
	datasets, _ := args.Get(0).([]model.DatasetSummary)
	return datasets, args.Error(1)
}

func (m *mockBackend) Models(ctx context.Context) ([]model.ModelName, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]model.ModelName)
	return names, args.Error(1)
}

func (m *mockBackend) Predict(ctx context.Context, txn model.TransactionInput) (model.PredictResponse, error) {
	args := m.Called(ctx, txn)
	resp, _ := args.Get(0).(model.PredictResponse)
	return resp, args.Error(1)
}

func (m *mockBackend) GenerateDataset(ctx context.Context, params model.DatasetParams) (model.MessageResponse, error) {
	args := m.Called(ctx, params)
	resp, _ := args.Get(0).(model.MessageResponse)
	return resp, args.Error(1)
}

func (m *mockBackend) TrainModel(ctx context.Context, req model.TrainRequest) (model.MessageResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(model.MessageResponse)
	return resp, args.Error(1)
}

func (m *mockBackend) SelectModel(ctx context.Context, req model.SelectRequest) (model.MessageResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(model.MessageResponse)
	return resp, args.Error(1)
}

func (m *mockBackend) AuditPerformance(ctx context.Context, req model.AuditRequest) (model.AuditResult, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(model.AuditResult)
	return resp, args.Error(1)
}

type memJournal struct {
	err     error
	entries []model.JournalEntry
	mu      sync.Mutex
}

func (j *memJournal) Record(_ context.Context, entry model.JournalEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.err != nil {
		return j.err
	}
	j.entries = append(j.entries, entry)
	return nil
}

func (j *memJournal) List(_ context.Context, _ service.JournalFilter) ([]model.JournalEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]model.JournalEntry(nil), j.entries...), nil
}

func (j *memJournal) Close() error {
	return nil
}

func rate(v float64) *float64 {
	return &v
}
