// Package components implements the console's workflow panels.
package components

import (
	"github.com/Veraticus/securebank-console/internal/console"
	"github.com/Veraticus/securebank-console/internal/model"
)

// Controller is the slice of console.Controller the panels drive. Panels read state
// through it and never hold state of their own beyond cursor and focus positions.
type Controller interface {
	State() console.State
	UpdateField(form console.Form, key, value string) error
	SetSelectedModel(name model.ModelName)
	SelectDataset(version string)
	SubmitPrediction() console.Call
	SubmitDatasetGeneration() console.Call
	SubmitTraining() console.Call
	SubmitModelSelection() console.Call
	SubmitAudit() console.Call
	RefreshHistory() console.Call
	RefreshDatasets() console.Call
	RefreshModels() console.Call
}

var _ Controller = (*console.Controller)(nil)
