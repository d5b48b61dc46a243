package console

import (
	"net/http"

	"github.com/Veraticus/securebank-console/internal/backend"
	"github.com/Veraticus/securebank-console/internal/model"
)

// Op identifies a backend operation. Each op owns exactly one state slot.
type Op int

// Backend operations.
const (
	OpPredict Op = iota
	OpGenerateDataset
	OpTrainModel
	OpSelectModel
	OpAudit
	OpRefreshHistory
	OpRefreshDatasets
	OpRefreshModels
)

type opSpec struct {
	name     string
	method   string
	path     string
	workflow model.Workflow
}

var opSpecs = map[Op]opSpec{
	OpPredict:         {name: "predict", method: http.MethodPost, path: backend.PathPredict, workflow: model.WorkflowPredict},
	OpGenerateDataset: {name: "generate_dataset", method: http.MethodPost, path: backend.PathGenerateDataset, workflow: model.WorkflowDataset},
	OpTrainModel:      {name: "train_model", method: http.MethodPost, path: backend.PathTrainModel, workflow: model.WorkflowModel},
	OpSelectModel:     {name: "select_model", method: http.MethodPost, path: backend.PathSelectModel, workflow: model.WorkflowModel},
	OpAudit:           {name: "audit_performance", method: http.MethodPost, path: backend.PathAuditPerformance, workflow: model.WorkflowAudit},
	OpRefreshHistory:  {name: "history", method: http.MethodGet, path: backend.PathHistory, workflow: model.WorkflowHistory},
	OpRefreshDatasets: {name: "datasets", method: http.MethodGet, path: backend.PathDatasets, workflow: model.WorkflowDatasets},
	OpRefreshModels:   {name: "models", method: http.MethodGet, path: backend.PathModels, workflow: model.WorkflowModels},
}

func (o Op) String() string {
	if spec, ok := opSpecs[o]; ok {
		return spec.name
	}
	return "unknown"
}

// Workflow returns the workflow the op belongs to.
func (o Op) Workflow() model.Workflow {
	return opSpecs[o].workflow
}

// Method returns the HTTP method the op uses.
func (o Op) Method() string {
	return opSpecs[o].method
}

// Path returns the backend path the op calls.
func (o Op) Path() string {
	return opSpecs[o].path
}
