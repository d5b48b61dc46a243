package components

import (
	"strconv"

	"github.com/Veraticus/securebank-console/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	historyIndexWidth      = 4
	historyPredictionWidth = 12
	minTransactionWidth    = 20
)

// HistoryPanel lists past predictions in the order the backend returned them.
type HistoryPanel struct {
	ctl   Controller
	theme themes.Theme
	table table.Model
}

// NewHistoryPanel creates the history panel.
func NewHistoryPanel(ctl Controller, theme themes.Theme) HistoryPanel {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	styles.Selected = theme.Selected

	t := table.New(
		table.WithColumns(historyColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(styles),
	)

	p := HistoryPanel{ctl: ctl, theme: theme, table: t}
	p.syncRows()
	return p
}

func historyColumns(width int) []table.Column {
	txnWidth := max(width-historyIndexWidth-historyPredictionWidth-6, minTransactionWidth)
	return []table.Column{
		{Title: "#", Width: historyIndexWidth},
		{Title: "Transaction", Width: txnWidth},
		{Title: "Prediction", Width: historyPredictionWidth},
	}
}

// Resize fits the table into the given area.
func (p *HistoryPanel) Resize(width, height int) {
	p.table.SetColumns(historyColumns(width))
	p.table.SetHeight(max(height-4, 3))
}

// Update handles messages.
func (p HistoryPanel) Update(msg tea.Msg) (HistoryPanel, tea.Cmd) {
	p.syncRows()

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+r" {
		return p, RunCalls(p.ctl.RefreshHistory())
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

func (p *HistoryPanel) syncRows() {
	entries := p.ctl.State().History.Value
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{strconv.Itoa(i + 1), e.TransactionText(), string(e.Prediction)})
	}
	p.table.SetRows(rows)
}

// View renders the history table.
func (p HistoryPanel) View() string {
	p.syncRows()
	state := p.ctl.State()

	body := p.table.View()
	if len(state.History.Value) == 0 {
		body = p.theme.Label.Render("No predictions recorded yet.")
	}

	sections := joinNonEmpty(
		p.theme.Title.Render("Prediction history"),
		body,
		renderStatus(p.theme, state.History, "loading history..."),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Rows exposes the rendered rows.
func (p HistoryPanel) Rows() []table.Row {
	p.syncRows()
	return p.table.Rows()
}
