package model

import (
	"encoding/json"
	"strings"
)

// Prediction is the label the backend assigns to a scored transaction.
type Prediction string

// PredictionFraud is the label for a transaction scored as fraudulent.
const PredictionFraud Prediction = "fraud"

// IsFraud reports whether the label is the fraud label.
func (p Prediction) IsFraud() bool {
	return p == PredictionFraud
}

// PredictResponse is the scoring call's response.
type PredictResponse struct {
	Prediction Prediction `json:"prediction"`
}

// HistoryEntry is one past prediction as logged by the backend.
type HistoryEntry struct {
	Transaction json.RawMessage `json:"transaction"`
	Prediction  Prediction      `json:"prediction"`
}

// TransactionText renders the logged transaction: strings unquoted, anything else compact.
func (h HistoryEntry) TransactionText() string {
	var s string
	if err := json.Unmarshal(h.Transaction, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(h.Transaction))
}

// AuditRequest is the body of an audit call.
type AuditRequest struct {
	DatasetVersion string `json:"dataset_version"`
}

// AuditResult carries the error rates measured against a dataset version.
// A rate the backend did not return stays nil.
type AuditResult struct {
	FalsePositiveRate *float64 `json:"false_positive_rate"`
	FalseNegativeRate *float64 `json:"false_negative_rate"`
}
