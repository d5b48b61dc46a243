package components

import (
	"strings"

	"github.com/Veraticus/securebank-console/internal/console"
	"github.com/Veraticus/securebank-console/internal/model"
	"github.com/Veraticus/securebank-console/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ModelPanel chooses a model, trains it on the active dataset and activates it.
type ModelPanel struct {
	ctl    Controller
	theme  themes.Theme
	cursor int
}

// NewModelPanel creates the model panel.
func NewModelPanel(ctl Controller, theme themes.Theme) ModelPanel {
	return ModelPanel{ctl: ctl, theme: theme}
}

// Update handles messages.
func (p ModelPanel) Update(msg tea.Msg) (ModelPanel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	models := p.ctl.State().Models.Value
	p.cursor = clampCursor(p.cursor, len(models))

	switch keyMsg.String() {
	case "up", "k":
		p.cursor = clampCursor(p.cursor-1, len(models))
	case "down", "j":
		p.cursor = clampCursor(p.cursor+1, len(models))
	case "enter", " ":
		if len(models) > 0 {
			p.ctl.SetSelectedModel(models[p.cursor])
		}
	case "t":
		return p, RunCalls(p.ctl.SubmitTraining())
	case "a":
		return p, RunCalls(p.ctl.SubmitModelSelection())
	case "ctrl+r":
		return p, RunCalls(p.ctl.RefreshModels())
	}
	return p, nil
}

// View renders the model selector and the latest train/activate outcomes.
func (p ModelPanel) View() string {
	state := p.ctl.State()

	sections := joinNonEmpty(
		p.theme.Title.Render("Train and activate models"),
		p.theme.Label.Render("Target dataset: ")+activeVersionLabel(state.ActiveDatasetVersion()),
		spacer,
		p.renderModels(state),
		renderStatus(p.theme, state.Models, "loading models..."),
		spacer,
		p.renderOutcome("Training", state.Training, "training..."),
		p.renderOutcome("Activation", state.Selection, "activating..."),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (p ModelPanel) renderModels(state console.State) string {
	models := state.Models.Value
	if len(models) == 0 {
		return p.theme.Label.Render("  no models available")
	}

	cursor := clampCursor(p.cursor, len(models))
	lines := make([]string, 0, len(models))
	for i, name := range models {
		marker := "  "
		if i == cursor {
			marker = "› "
		}

		radio := "( )"
		label := string(name)
		if name == state.SelectedModel {
			radio = "(•)"
			label = p.theme.Focused.Render(label)
		}
		lines = append(lines, marker+radio+" "+label)
	}
	return strings.Join(lines, "\n")
}

func (p ModelPanel) renderOutcome(label string, slot console.Slot[model.MessageResponse], pending string) string {
	if status := renderStatus(p.theme, slot, pending); status != "" {
		return p.theme.Label.Render(label+": ") + status
	}
	if slot.Has {
		msg := slot.Value.Message
		if msg == "" {
			msg = "done"
		}
		return p.theme.Label.Render(label+": ") + p.theme.StatusSuccess.Render("✓ "+msg)
	}
	return ""
}
