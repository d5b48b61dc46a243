package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/securebank-console/internal/console"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderTabs(),
		m.renderPanel(),
		m.renderStatusBar(),
	}
	if m.showHelp {
		sections = append(sections, m.help.View(m.keymap))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	state := m.ctl.State()

	tabs := make([]string, 0, len(console.Tabs()))
	for _, tab := range console.Tabs() {
		label := tab.String()
		if state.Pending(tab) {
			label += " " + m.spinner.View()
		}

		if tab == state.ActiveTab {
			tabs = append(tabs, m.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m Model) renderPanel() string {
	var body string
	switch m.ctl.State().ActiveTab {
	case console.TabPredict:
		body = m.predict.View()
	case console.TabDataset:
		body = m.dataset.View()
	case console.TabModel:
		body = m.models.View()
	case console.TabHistory:
		body = m.history.View()
	case console.TabAudit:
		body = m.audit.View()
	}

	return m.theme.RoundedBox.
		Width(max(m.width-2, 20)).
		Render(body)
}

// renderStatusBar shows the active dataset version and outstanding requests.
func (m Model) renderStatusBar() string {
	state := m.ctl.State()

	version := state.ActiveDatasetVersion()
	if version == "" {
		version = "(none)"
	}

	parts := []string{"Active dataset: " + version}
	if state.SelectedModel != "" {
		parts = append(parts, "Model: "+string(state.SelectedModel))
	}
	if m.config.BackendLabel != "" {
		parts = append(parts, "Backend: "+m.config.BackendLabel)
	}

	pending := 0
	for _, tab := range console.Tabs() {
		if state.Pending(tab) {
			pending++
		}
	}
	if pending > 0 {
		parts = append(parts, fmt.Sprintf("%s %d busy", m.spinner.View(), pending))
	}

	return m.theme.StatusBar.
		Width(max(m.width, 20)).
		Render(strings.Join(parts, "  │  "))
}
