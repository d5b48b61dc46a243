package components

import (
	"context"
	"sync"
	"testing"

	"github.com/Veraticus/securebank-console/internal/console"
	"github.com/Veraticus/securebank-console/internal/model"
	tuitest "github.com/Veraticus/securebank-console/internal/tui/testing"
	tea "github.com/charmbracelet/bubbletea"
)

// stubBackend answers every call with canned values and records request bodies.
type stubBackend struct {
	err        error
	prediction model.Prediction
	history    []model.HistoryEntry
	datasets   []model.DatasetSummary
	models     []model.ModelName
	audit      model.AuditResult
	message    string

	mu       sync.Mutex
	predicts []model.TransactionInput
	params   []model.DatasetParams
	trains   []model.TrainRequest
	selects  []model.SelectRequest
	audits   []model.AuditRequest
}

func (s *stubBackend) History(context.Context) ([]model.HistoryEntry, error) {
	return s.history, s.err
}

func (s *stubBackend) Datasets(context.Context) ([]model.DatasetSummary, error) {
	return s.datasets, s.err
}

func (s *stubBackend) Models(context.Context) ([]model.ModelName, error) {
	return s.models, s.err
}

func (s *stubBackend) Predict(_ context.Context, txn model.TransactionInput) (model.PredictResponse, error) {
	s.mu.Lock()
	s.predicts = append(s.predicts, txn)
	s.mu.Unlock()
	return model.PredictResponse{Prediction: s.prediction}, s.err
}

func (s *stubBackend) GenerateDataset(_ context.Context, params model.DatasetParams) (model.MessageResponse, error) {
	s.mu.Lock()
	s.params = append(s.params, params)
	s.mu.Unlock()
	return model.MessageResponse{Message: s.message}, s.err
}

func (s *stubBackend) TrainModel(_ context.Context, req model.TrainRequest) (model.MessageResponse, error) {
	s.mu.Lock()
	s.trains = append(s.trains, req)
	s.mu.Unlock()
	return model.MessageResponse{Message: s.message}, s.err
}

func (s *stubBackend) SelectModel(_ context.Context, req model.SelectRequest) (model.MessageResponse, error) {
	s.mu.Lock()
	s.selects = append(s.selects, req)
	s.mu.Unlock()
	return model.MessageResponse{Message: s.message}, s.err
}

func (s *stubBackend) AuditPerformance(_ context.Context, req model.AuditRequest) (model.AuditResult, error) {
	s.mu.Lock()
	s.audits = append(s.audits, req)
	s.mu.Unlock()
	return s.audit, s.err
}

func newController(b *stubBackend) *console.Controller {
	return console.NewController(b, console.Options{})
}

// settle executes cmd, applies every result and follows up until nothing is left.
func settle(t *testing.T, ctl *console.Controller, cmd tea.Cmd) {
	t.Helper()

	queue := tuitest.Collect(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]

		result, ok := msg.(ResultMsg)
		if !ok {
			continue
		}
		queue = append(queue, tuitest.Collect(RunCalls(ctl.Apply(result.Result)...))...)
	}
}

var ctrlKeys = map[string]tea.KeyType{
	"ctrl+n": tea.KeyCtrlN,
	"ctrl+p": tea.KeyCtrlP,
	"ctrl+r": tea.KeyCtrlR,
	"ctrl+s": tea.KeyCtrlS,
}

func ctrlKey(name string) tea.KeyMsg {
	return tea.KeyMsg{Type: ctrlKeys[name]}
}

func typeInto[P interface {
	Update(tea.Msg) (P, tea.Cmd)
}](panel P, text string) P {
	for _, msg := range tuitest.Type(text) {
		panel, _ = panel.Update(msg)
	}
	return panel
}
