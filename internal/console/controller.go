package console

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Veraticus/securebank-console/internal/backend"
	"github.com/Veraticus/securebank-console/internal/common"
	"github.com/Veraticus/securebank-console/internal/model"
	"github.com/Veraticus/securebank-console/internal/service"
)

const journalTimeout = 2 * time.Second

// Options configure a Controller.
type Options struct {
	// Context parents every request context. Defaults to context.Background.
	Context context.Context
	Journal service.Journal
	Now     func() time.Time
	Models  []model.ModelName
	// FetchModels adds a GET /models refresh to Mount.
	FetchModels bool
}

type flight struct {
	cancel     context.CancelFunc
	generation uint64
}

// Controller owns the console state and the backend client. It is not safe for
// concurrent use: every method, including Apply, must be called from the goroutine
// that owns the console. Only Call.Run may execute elsewhere.
//
// Each op has a single in-flight slot. Starting an op while a previous request for it
// is outstanding cancels that request, and its result is discarded when it arrives.
type Controller struct {
	base        context.Context
	backend     service.Backend
	journal     service.Journal
	now         func() time.Time
	flights     map[Op]flight
	state       State
	generation  uint64
	fetchModels bool
}

// NewController creates a controller with a fresh state.
func NewController(b service.Backend, opts Options) *Controller {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	models := opts.Models
	if len(models) == 0 {
		models = model.DefaultModels()
	}

	base := opts.Context
	if base == nil {
		base = context.Background()
	}

	c := &Controller{
		base:        base,
		backend:     b,
		journal:     opts.Journal,
		now:         now,
		flights:     make(map[Op]flight),
		fetchModels: opts.FetchModels,
	}
	c.state = State{
		ActiveTab:     TabPredict,
		DatasetParams: model.DefaultDatasetParams(),
	}
	c.state.Models.Value = append([]model.ModelName(nil), models...)
	c.state.Models.Has = true

	return c
}

// State returns a snapshot of the console state.
func (c *Controller) State() State {
	return c.state
}

// Mount starts the background loads a freshly opened console issues. The calls are
// independent and may complete in any order.
func (c *Controller) Mount() []Call {
	calls := []Call{c.RefreshHistory(), c.RefreshDatasets()}
	if c.fetchModels {
		calls = append(calls, c.RefreshModels())
	}
	return calls
}

// Shutdown cancels every outstanding request. Their results, if applied, are discarded.
func (c *Controller) Shutdown() {
	for op, f := range c.flights {
		f.cancel()
		delete(c.flights, op)
	}
}

// SetActiveTab switches the visible panel. No other state changes.
func (c *Controller) SetActiveTab(tab Tab) {
	c.state.ActiveTab = tab
}

// UpdateField writes value into a form field verbatim.
func (c *Controller) UpdateField(form Form, key, value string) error {
	switch form {
	case FormTransaction:
		return c.state.Transaction.Set(key, value)
	case FormDataset:
		return c.state.DatasetParams.Set(key, value)
	default:
		return fmt.Errorf("form %q: %w", form, common.ErrUnknownForm)
	}
}

// SetSelectedModel picks the model that training and activation act on.
func (c *Controller) SetSelectedModel(name model.ModelName) {
	c.state.SelectedModel = name
}

// SelectDataset makes version the active dataset version.
func (c *Controller) SelectDataset(version string) {
	c.state.DatasetParams.Version = version
}

// SubmitPrediction scores the current transaction form.
func (c *Controller) SubmitPrediction() Call {
	txn := c.state.Transaction
	return c.begin(OpPredict, txn, func(ctx context.Context) (any, error) {
		return c.backend.Predict(ctx, txn)
	})
}

// SubmitDatasetGeneration requests a dataset built from the current parameters.
func (c *Controller) SubmitDatasetGeneration() Call {
	params := c.state.DatasetParams
	return c.begin(OpGenerateDataset, params, func(ctx context.Context) (any, error) {
		return c.backend.GenerateDataset(ctx, params)
	})
}

// SubmitTraining trains the selected model on the active dataset version. An empty
// selection is sent as-is.
func (c *Controller) SubmitTraining() Call {
	req := model.TrainRequest{
		ModelName:      c.state.SelectedModel,
		DatasetVersion: c.state.ActiveDatasetVersion(),
	}
	return c.begin(OpTrainModel, req, func(ctx context.Context) (any, error) {
		return c.backend.TrainModel(ctx, req)
	})
}

// SubmitModelSelection activates the selected model.
func (c *Controller) SubmitModelSelection() Call {
	req := model.SelectRequest{ModelName: c.state.SelectedModel}
	return c.begin(OpSelectModel, req, func(ctx context.Context) (any, error) {
		return c.backend.SelectModel(ctx, req)
	})
}

// SubmitAudit audits the active model against the active dataset version.
func (c *Controller) SubmitAudit() Call {
	req := model.AuditRequest{DatasetVersion: c.state.ActiveDatasetVersion()}
	return c.begin(OpAudit, req, func(ctx context.Context) (any, error) {
		return c.backend.AuditPerformance(ctx, req)
	})
}

// RefreshHistory reloads the prediction log.
func (c *Controller) RefreshHistory() Call {
	return c.begin(OpRefreshHistory, nil, func(ctx context.Context) (any, error) {
		return c.backend.History(ctx)
	})
}

// RefreshDatasets reloads the dataset listing.
func (c *Controller) RefreshDatasets() Call {
	return c.begin(OpRefreshDatasets, nil, func(ctx context.Context) (any, error) {
		return c.backend.Datasets(ctx)
	})
}

// RefreshModels reloads the model enumeration from the backend.
func (c *Controller) RefreshModels() Call {
	return c.begin(OpRefreshModels, nil, func(ctx context.Context) (any, error) {
		return c.backend.Models(ctx)
	})
}

func (c *Controller) begin(op Op, body any, run func(ctx context.Context) (any, error)) Call {
	if prev, ok := c.flights[op]; ok {
		prev.cancel()
	}

	c.generation++
	requestID := backend.NewRequestID()
	ctx, cancel := context.WithCancel(backend.WithRequestID(c.base, requestID))
	c.flights[op] = flight{cancel: cancel, generation: c.generation}

	c.beginSlot(op, requestID)

	common.LogDebug("Backend call started", common.Fields{
		"op":         op.String(),
		"request_id": requestID,
		"path":       op.Path(),
	})

	return Call{
		ctx:        ctx,
		run:        run,
		body:       body,
		RequestID:  requestID,
		Op:         op,
		generation: c.generation,
	}
}

// Apply folds a completed call into the state and returns any follow-up calls it
// triggers. Results of superseded calls are dropped.
func (c *Controller) Apply(r Result) []Call {
	current, ok := c.flights[r.Op]
	if !ok || current.generation != r.generation {
		common.LogDebug("Discarding superseded backend result", common.Fields{
			"op":         r.Op.String(),
			"request_id": r.RequestID,
		})
		c.record(r, model.OutcomeSuperseded)
		return nil
	}
	current.cancel()
	delete(c.flights, r.Op)

	at := c.now()
	if r.Err != nil {
		common.LogWarn(r.Err, "Backend call failed", common.Fields{
			"op":         r.Op.String(),
			"request_id": r.RequestID,
			"path":       r.Op.Path(),
		})
		c.failSlot(r.Op, r.Err, at)
		c.record(r, model.OutcomeFailed)
		return nil
	}

	c.record(r, model.OutcomeSucceeded)
	return c.succeedSlot(r, at)
}

func (c *Controller) beginSlot(op Op, requestID string) {
	switch op {
	case OpPredict:
		c.state.Prediction.begin(requestID)
	case OpGenerateDataset:
		c.state.Generation.begin(requestID)
	case OpTrainModel:
		c.state.Training.begin(requestID)
	case OpSelectModel:
		c.state.Selection.begin(requestID)
	case OpAudit:
		c.state.Audit.begin(requestID)
	case OpRefreshHistory:
		c.state.History.begin(requestID)
	case OpRefreshDatasets:
		c.state.Datasets.begin(requestID)
	case OpRefreshModels:
		c.state.Models.begin(requestID)
	}
}

func (c *Controller) failSlot(op Op, err error, at time.Time) {
	switch op {
	case OpPredict:
		c.state.Prediction.fail(err, at)
	case OpGenerateDataset:
		c.state.Generation.fail(err, at)
	case OpTrainModel:
		c.state.Training.fail(err, at)
	case OpSelectModel:
		c.state.Selection.fail(err, at)
	case OpAudit:
		c.state.Audit.fail(err, at)
	case OpRefreshHistory:
		c.state.History.fail(err, at)
	case OpRefreshDatasets:
		c.state.Datasets.fail(err, at)
	case OpRefreshModels:
		c.state.Models.fail(err, at)
	}
}

func (c *Controller) succeedSlot(r Result, at time.Time) []Call {
	switch r.Op {
	case OpPredict:
		resp, _ := r.Value.(model.PredictResponse)
		c.state.Prediction.succeed(resp.Prediction, at)
		return []Call{c.RefreshHistory()}

	case OpGenerateDataset:
		resp, _ := r.Value.(model.MessageResponse)
		c.state.Generation.succeed(resp, at)
		return []Call{c.RefreshDatasets()}

	case OpTrainModel:
		resp, _ := r.Value.(model.MessageResponse)
		c.state.Training.succeed(resp, at)

	case OpSelectModel:
		resp, _ := r.Value.(model.MessageResponse)
		c.state.Selection.succeed(resp, at)

	case OpAudit:
		resp, _ := r.Value.(model.AuditResult)
		c.state.Audit.succeed(resp, at)

	case OpRefreshHistory:
		entries, _ := r.Value.([]model.HistoryEntry)
		c.state.History.succeed(entries, at)

	case OpRefreshDatasets:
		datasets, _ := r.Value.([]model.DatasetSummary)
		c.state.Datasets.succeed(datasets, at)

	case OpRefreshModels:
		names, _ := r.Value.([]model.ModelName)
		c.state.Models.succeed(names, at)
	}
	return nil
}

func (c *Controller) record(r Result, outcome model.Outcome) {
	if c.journal == nil {
		return
	}

	entry := model.JournalEntry{
		RecordedAt: c.now(),
		RequestID:  r.RequestID,
		Workflow:   r.Op.Workflow(),
		Method:     r.Op.Method(),
		Path:       r.Op.Path(),
		Outcome:    outcome,
		Duration:   r.Duration,
	}
	if r.body != nil {
		if body, err := json.Marshal(r.body); err == nil {
			entry.RequestBody = string(body)
		}
	}
	if r.Err != nil {
		entry.Error = r.Err.Error()
	}

	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()

	if err := c.journal.Record(ctx, entry); err != nil {
		common.LogWarn(err, "Failed to journal backend call", common.Fields{
			"op":         r.Op.String(),
			"request_id": r.RequestID,
		})
	}
}
