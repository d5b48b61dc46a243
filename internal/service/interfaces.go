// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/securebank-console/internal/model"
)

// Backend is the fraud-detection service the console drives.
type Backend interface {
	// Read operations
	History(ctx context.Context) ([]model.HistoryEntry, error)
	Datasets(ctx context.Context) ([]model.DatasetSummary, error)
	Models(ctx context.Context) ([]model.ModelName, error)

	// Write operations
	Predict(ctx context.Context, txn model.TransactionInput) (model.PredictResponse, error)
	GenerateDataset(ctx context.Context, params model.DatasetParams) (model.MessageResponse, error)
	TrainModel(ctx context.Context, req model.TrainRequest) (model.MessageResponse, error)
	SelectModel(ctx context.Context, req model.SelectRequest) (model.MessageResponse, error)
	AuditPerformance(ctx context.Context, req model.AuditRequest) (model.AuditResult, error)
}

// JournalFilter narrows a journal listing.
type JournalFilter struct {
	Workflow   model.Workflow
	Limit      int
	FailedOnly bool
}

// Journal records completed backend calls for later review.
type Journal interface {
	Record(ctx context.Context, entry model.JournalEntry) error
	List(ctx context.Context, filter JournalFilter) ([]model.JournalEntry, error)
	Close() error
}
