package model

import "time"

// Workflow names one of the console's task areas.
type Workflow string

// Console workflows. WorkflowModels covers the model enumeration refresh.
const (
	WorkflowPredict  Workflow = "predict"
	WorkflowDataset  Workflow = "dataset"
	WorkflowModel    Workflow = "model"
	WorkflowHistory  Workflow = "history"
	WorkflowAudit    Workflow = "audit"
	WorkflowDatasets Workflow = "datasets"
	WorkflowModels   Workflow = "models"
)

// Outcome is how a backend call ended.
type Outcome string

// Call outcomes.
const (
	OutcomeSucceeded  Outcome = "succeeded"
	OutcomeFailed     Outcome = "failed"
	OutcomeSuperseded Outcome = "superseded"
)

// JournalEntry records one completed backend call.
type JournalEntry struct {
	RecordedAt  time.Time
	ID          string
	RequestID   string
	Workflow    Workflow
	Method      string
	Path        string
	RequestBody string
	Outcome     Outcome
	Error       string
	Duration    time.Duration
}
