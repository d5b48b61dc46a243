package components

import (
	"testing"

	"github.com/Veraticus/securebank-console/internal/model"
	tuitest "github.com/Veraticus/securebank-console/internal/tui/testing"
	"github.com/Veraticus/securebank-console/internal/tui/themes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetPanel_GenerateSendsParamsAndRefreshes(t *testing.T) {
	b := &stubBackend{
		message:  "Dataset version v9 generated successfully",
		datasets: []model.DatasetSummary{model.DatasetSummary(`"v9"`)},
	}
	ctl := newController(b)
	panel := NewDatasetPanel(ctl, themes.Default)

	panel = typeInto(panel, "v9")
	panel, _ = panel.Update(tuitest.KeyDown())
	panel, _ = panel.Update(tuitest.KeyDown())
	panel, _ = panel.Update(tuitest.KeyDown())
	panel = typeInto(panel, "x")

	_, cmd := panel.Update(tuitest.KeyEnter())
	settle(t, ctl, cmd)

	require.Len(t, b.params, 1)
	assert.Equal(t, model.DatasetParams{
		Version:         "v9",
		NumCustomers:    "100",
		NumTransactions: "1000",
		FraudRatio:      "0.01x",
	}, b.params[0])

	view := tuitest.PlainView(panel.View())
	assert.Contains(t, view, "generated successfully")
	assert.Contains(t, view, "v9 (active)")
}

func TestDatasetPanel_SelectKnownDataset(t *testing.T) {
	b := &stubBackend{datasets: []model.DatasetSummary{
		model.DatasetSummary(`"v1.0"`),
		model.DatasetSummary(`{"version":"v2.0","rows":1000}`),
		model.DatasetSummary(`42`),
	}}
	ctl := newController(b)
	settle(t, ctl, RunCalls(ctl.RefreshDatasets()))

	panel := NewDatasetPanel(ctl, themes.Default)

	panel, _ = panel.Update(ctrlKey("ctrl+n"))
	panel, _ = panel.Update(ctrlKey("ctrl+s"))
	assert.Equal(t, "v2.0", ctl.State().ActiveDatasetVersion())

	panel, _ = panel.Update(ctrlKey("ctrl+n"))
	panel, _ = panel.Update(ctrlKey("ctrl+n"))
	panel, _ = panel.Update(ctrlKey("ctrl+s"))
	assert.Equal(t, "v2.0", ctl.State().ActiveDatasetVersion(), "unversioned summaries are not selectable")

	panel, _ = panel.Update(ctrlKey("ctrl+p"))
	panel, _ = panel.Update(ctrlKey("ctrl+p"))
	panel, _ = panel.Update(ctrlKey("ctrl+p"))
	panel, _ = panel.Update(ctrlKey("ctrl+s"))
	assert.Equal(t, "v1.0", ctl.State().ActiveDatasetVersion())

	// The version input follows the selection.
	assert.Contains(t, tuitest.StripANSI(panel.form.View()), "v1.0")
	panel = typeInto(panel, "-rc")
	assert.Equal(t, "v1.0-rc", ctl.State().DatasetParams.Version)
}

func TestDatasetPanel_EmptyListing(t *testing.T) {
	panel := NewDatasetPanel(newController(&stubBackend{}), themes.Default)
	panel, _ = panel.Update(ctrlKey("ctrl+s"))

	assert.Contains(t, tuitest.PlainView(panel.View()), "none yet")
}
