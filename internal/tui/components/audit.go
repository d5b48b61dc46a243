package components

import (
	"github.com/Veraticus/securebank-console/internal/cli"
	"github.com/Veraticus/securebank-console/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AuditPanel audits the active model against the active dataset version.
type AuditPanel struct {
	ctl   Controller
	theme themes.Theme
}

// NewAuditPanel creates the audit panel.
func NewAuditPanel(ctl Controller, theme themes.Theme) AuditPanel {
	return AuditPanel{ctl: ctl, theme: theme}
}

// Update handles messages.
func (p AuditPanel) Update(msg tea.Msg) (AuditPanel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		return p, RunCalls(p.ctl.SubmitAudit())
	}
	return p, nil
}

// View renders the target version and the latest rates.
func (p AuditPanel) View() string {
	state := p.ctl.State()

	var rates string
	if state.Audit.Has {
		rates = cli.FormatKeyValues([][2]string{
			{"False positive rate", state.Audit.Value.FalsePositivePercent()},
			{"False negative rate", state.Audit.Value.FalseNegativePercent()},
		})
	} else {
		rates = p.theme.Label.Render("Press enter to run an audit.")
	}

	sections := joinNonEmpty(
		p.theme.Title.Render("Audit model performance"),
		p.theme.Label.Render("Target dataset: ")+activeVersionLabel(state.ActiveDatasetVersion()),
		spacer,
		rates,
		renderStatus(p.theme, state.Audit, "auditing..."),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
