package components

import (
	"strings"

	"github.com/Veraticus/securebank-console/internal/console"
	"github.com/Veraticus/securebank-console/internal/model"
	"github.com/Veraticus/securebank-console/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var datasetFields = []Field{
	{Key: model.FieldVersion, Label: "Version"},
	{Key: model.FieldNumCustomers, Label: "Customers"},
	{Key: model.FieldNumTransactions, Label: "Transactions"},
	{Key: model.FieldFraudRatio, Label: "Fraud ratio"},
}

// DatasetPanel generates synthetic datasets and picks the active dataset version from
// the known datasets.
type DatasetPanel struct {
	ctl    Controller
	theme  themes.Theme
	form   FormEditor
	cursor int
}

// NewDatasetPanel creates the dataset panel.
func NewDatasetPanel(ctl Controller, theme themes.Theme) DatasetPanel {
	return DatasetPanel{
		ctl:   ctl,
		theme: theme,
		form:  NewFormEditor(ctl, console.FormDataset, datasetFields, theme),
	}
}

// Update handles messages.
func (p DatasetPanel) Update(msg tea.Msg) (DatasetPanel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	datasets := p.ctl.State().Datasets.Value
	p.cursor = clampCursor(p.cursor, len(datasets))

	switch keyMsg.String() {
	case "enter":
		return p, RunCalls(p.ctl.SubmitDatasetGeneration())
	case "ctrl+r":
		return p, RunCalls(p.ctl.RefreshDatasets())
	case "ctrl+n":
		p.cursor = clampCursor(p.cursor+1, len(datasets))
		return p, nil
	case "ctrl+p":
		p.cursor = clampCursor(p.cursor-1, len(datasets))
		return p, nil
	case "ctrl+s":
		if len(datasets) > 0 {
			if version, ok := datasets[p.cursor].Version(); ok {
				p.ctl.SelectDataset(version)
			}
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.form, cmd = p.form.Update(keyMsg)
	return p, cmd
}

// View renders the parameters form and the known datasets.
func (p DatasetPanel) View() string {
	state := p.ctl.State()

	var confirmation string
	if state.Generation.Has && state.Generation.Status == console.StatusSucceeded && state.Generation.Value.Message != "" {
		confirmation = p.theme.StatusSuccess.Render("✓ " + state.Generation.Value.Message)
	}

	sections := joinNonEmpty(
		p.theme.Title.Render("Generate a dataset"),
		p.form.View(),
		spacer,
		confirmation,
		renderStatus(p.theme, state.Generation, "generating dataset..."),
		spacer,
		p.theme.Bold.Render("Known datasets"),
		p.renderDatasets(state),
		renderStatus(p.theme, state.Datasets, "loading datasets..."),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (p DatasetPanel) renderDatasets(state console.State) string {
	datasets := state.Datasets.Value
	if len(datasets) == 0 {
		return p.theme.Label.Render("  none yet")
	}

	cursor := clampCursor(p.cursor, len(datasets))
	active := state.ActiveDatasetVersion()

	lines := make([]string, 0, len(datasets))
	for i, d := range datasets {
		marker := "  "
		if i == cursor {
			marker = "› "
		}

		line := d.String()
		if version, ok := d.Version(); ok && version == active && active != "" {
			line = p.theme.StatusSuccess.Render(line + "  (active)")
		}
		lines = append(lines, marker+line)
	}
	return strings.Join(lines, "\n")
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
