package components

import (
	"github.com/Veraticus/securebank-console/internal/console"
	"github.com/Veraticus/securebank-console/internal/model"
	"github.com/Veraticus/securebank-console/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var transactionFields = []Field{
	{Key: model.FieldTransDateTransTime, Label: "Date/time"},
	{Key: model.FieldCCNum, Label: "Card number"},
	{Key: model.FieldUnixTime, Label: "Unix time"},
	{Key: model.FieldMerchant, Label: "Merchant"},
	{Key: model.FieldCategory, Label: "Category"},
	{Key: model.FieldAmount, Label: "Amount"},
	{Key: model.FieldMerchLat, Label: "Merchant lat"},
	{Key: model.FieldMerchLong, Label: "Merchant long"},
}

// PredictPanel scores a transaction typed into its form.
type PredictPanel struct {
	ctl   Controller
	theme themes.Theme
	form  FormEditor
}

// NewPredictPanel creates the prediction panel.
func NewPredictPanel(ctl Controller, theme themes.Theme) PredictPanel {
	return PredictPanel{
		ctl:   ctl,
		theme: theme,
		form:  NewFormEditor(ctl, console.FormTransaction, transactionFields, theme),
	}
}

// Update handles messages.
func (p PredictPanel) Update(msg tea.Msg) (PredictPanel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if keyMsg.String() == "enter" {
		return p, RunCalls(p.ctl.SubmitPrediction())
	}

	var cmd tea.Cmd
	p.form, cmd = p.form.Update(keyMsg)
	return p, cmd
}

// View renders the form and the latest verdict.
func (p PredictPanel) View() string {
	state := p.ctl.State()

	sections := joinNonEmpty(
		p.theme.Title.Render("Score a transaction"),
		p.form.View(),
		spacer,
		renderVerdict(p.theme, state.Prediction),
		renderStatus(p.theme, state.Prediction, "scoring..."),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderVerdict shows a warning for fraud, a confirmation for any other label, and
// nothing before the first result.
func renderVerdict(theme themes.Theme, slot console.Slot[model.Prediction]) string {
	if !slot.Has || slot.Value == "" {
		return ""
	}
	if slot.Value.IsFraud() {
		return theme.FraudBanner.Render("⚠ FRAUD: this transaction was flagged as fraudulent")
	}
	return theme.LegitBanner.Render("✓ Confirmed: " + string(slot.Value))
}
