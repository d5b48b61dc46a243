// Package console holds the console's interaction state and the operations that mutate it.
package console

import (
	"time"

	"github.com/Veraticus/securebank-console/internal/model"
)

// Tab identifies one of the five workflow panels.
type Tab int

// Workflow tabs in display order.
const (
	TabPredict Tab = iota
	TabDataset
	TabModel
	TabHistory
	TabAudit
)

var tabNames = [...]string{"Predict", "Dataset", "Model", "History", "Audit"}

// Tabs returns every tab in display order.
func Tabs() []Tab {
	return []Tab{TabPredict, TabDataset, TabModel, TabHistory, TabAudit}
}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "Unknown"
	}
	return tabNames[t]
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(tabNames))
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	return Tab((int(t) + len(tabNames) - 1) % len(tabNames))
}

// Form names an editable field set.
type Form string

// Editable forms.
const (
	FormTransaction Form = "transaction"
	FormDataset     Form = "dataset"
)

// Status is where a workflow slot's latest request stands.
type Status int

// Slot statuses.
const (
	StatusIdle Status = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Slot is one workflow's last-write-wins result. A failure keeps the previous Value
// and records Err.
type Slot[T any] struct {
	UpdatedAt time.Time
	Value     T
	Err       error
	RequestID string
	Status    Status
	Has       bool
}

// Pending reports whether a request for this slot is in flight.
func (s Slot[T]) Pending() bool {
	return s.Status == StatusPending
}

// Failed reports whether the latest request for this slot failed.
func (s Slot[T]) Failed() bool {
	return s.Status == StatusFailed
}

func (s *Slot[T]) begin(requestID string) {
	s.Status = StatusPending
	s.RequestID = requestID
}

func (s *Slot[T]) succeed(value T, at time.Time) {
	s.Value = value
	s.Has = true
	s.Err = nil
	s.Status = StatusSucceeded
	s.UpdatedAt = at
}

func (s *Slot[T]) fail(err error, at time.Time) {
	s.Err = err
	s.Status = StatusFailed
	s.UpdatedAt = at
}

// State is everything the console displays. Panels read it; only the Controller writes it.
type State struct {
	Transaction   model.TransactionInput
	DatasetParams model.DatasetParams
	SelectedModel model.ModelName
	Models        Slot[[]model.ModelName]
	Prediction    Slot[model.Prediction]
	History       Slot[[]model.HistoryEntry]
	Datasets      Slot[[]model.DatasetSummary]
	Generation    Slot[model.MessageResponse]
	Training      Slot[model.MessageResponse]
	Selection     Slot[model.MessageResponse]
	Audit         Slot[model.AuditResult]
	ActiveTab     Tab
}

// ActiveDatasetVersion is the dataset version training and auditing target.
func (s State) ActiveDatasetVersion() string {
	return s.DatasetParams.Version
}

// Pending reports whether any request from the given tab's workflow is in flight.
func (s State) Pending(tab Tab) bool {
	switch tab {
	case TabPredict:
		return s.Prediction.Pending()
	case TabDataset:
		return s.Generation.Pending() || s.Datasets.Pending()
	case TabModel:
		return s.Training.Pending() || s.Selection.Pending() || s.Models.Pending()
	case TabHistory:
		return s.History.Pending()
	case TabAudit:
		return s.Audit.Pending()
	default:
		return false
	}
}
