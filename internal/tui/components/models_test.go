package components

import (
	"errors"
	"testing"

	"github.com/Veraticus/securebank-console/internal/model"
	tuitest "github.com/Veraticus/securebank-console/internal/tui/testing"
	"github.com/Veraticus/securebank-console/internal/tui/themes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelPanel_SelectTrainActivate(t *testing.T) {
	b := &stubBackend{message: "Model rvm trained successfully on dataset v1"}
	ctl := newController(b)
	ctl.SelectDataset("v1")
	panel := NewModelPanel(ctl, themes.Default)

	panel, _ = panel.Update(tuitest.KeyDown())
	panel, _ = panel.Update(tuitest.KeyPress(" "))
	assert.Equal(t, model.ModelRVM, ctl.State().SelectedModel)

	_, cmd := panel.Update(tuitest.KeyPress("t"))
	settle(t, ctl, cmd)
	_, cmd = panel.Update(tuitest.KeyPress("a"))
	settle(t, ctl, cmd)

	require.Len(t, b.trains, 1)
	assert.Equal(t, model.TrainRequest{ModelName: model.ModelRVM, DatasetVersion: "v1"}, b.trains[0])
	require.Len(t, b.selects, 1)
	assert.Equal(t, model.SelectRequest{ModelName: model.ModelRVM}, b.selects[0])

	view := tuitest.PlainView(panel.View())
	assert.Contains(t, view, "Target dataset: v1")
	assert.Contains(t, view, "(•) rvm")
	assert.Contains(t, view, "trained successfully")
}

func TestModelPanel_EmptySelectionIsSent(t *testing.T) {
	b := &stubBackend{err: errors.New("Missing model name")}
	ctl := newController(b)
	panel := NewModelPanel(ctl, themes.Default)

	_, cmd := panel.Update(tuitest.KeyPress("a"))
	settle(t, ctl, cmd)

	require.Len(t, b.selects, 1)
	assert.Equal(t, model.SelectRequest{}, b.selects[0])
	assert.Contains(t, tuitest.PlainView(panel.View()), "Missing model name")
}

func TestModelPanel_CursorStaysInRange(t *testing.T) {
	ctl := newController(&stubBackend{})
	panel := NewModelPanel(ctl, themes.Default)

	for i := 0; i < 10; i++ {
		panel, _ = panel.Update(tuitest.KeyDown())
	}
	panel, _ = panel.Update(tuitest.KeyEnter())
	assert.Equal(t, model.ModelRandomForest, ctl.State().SelectedModel)

	for i := 0; i < 10; i++ {
		panel, _ = panel.Update(tuitest.KeyUp())
	}
	panel, _ = panel.Update(tuitest.KeyEnter())
	assert.Equal(t, model.ModelLogisticRegression, ctl.State().SelectedModel)
}

func TestModelPanel_RefreshReplacesEnumeration(t *testing.T) {
	b := &stubBackend{models: []model.ModelName{"xgboost"}}
	ctl := newController(b)
	panel := NewModelPanel(ctl, themes.Default)

	_, cmd := panel.Update(ctrlKey("ctrl+r"))
	settle(t, ctl, cmd)

	view := tuitest.PlainView(panel.View())
	assert.Contains(t, view, "xgboost")
	assert.NotContains(t, view, "random_forest")
}
