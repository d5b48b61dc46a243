// Package tui hosts the console controller in a full-screen bubbletea program.
package tui

import (
	"github.com/Veraticus/securebank-console/internal/console"
	"github.com/Veraticus/securebank-console/internal/tui/components"
	"github.com/Veraticus/securebank-console/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeHeight is the rows taken by the tab bar, status bar and help footer.
const chromeHeight = 7

// Model holds the TUI's presentation state. All console state lives in the controller.
type Model struct {
	ctl      *console.Controller
	theme    themes.Theme
	config   Config
	keymap   KeyMap
	help     help.Model
	spinner  spinner.Model
	predict  components.PredictPanel
	dataset  components.DatasetPanel
	models   components.ModelPanel
	history  components.HistoryPanel
	audit    components.AuditPanel
	width    int
	height   int
	showHelp bool
	quitting bool
}

// NewModel wraps ctl in a bubbletea model.
func NewModel(ctl *console.Controller, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cfg.Theme.StatusPending

	m := Model{
		ctl:      ctl,
		theme:    cfg.Theme,
		config:   cfg,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		spinner:  sp,
		predict:  components.NewPredictPanel(ctl, cfg.Theme),
		dataset:  components.NewDatasetPanel(ctl, cfg.Theme),
		models:   components.NewModelPanel(ctl, cfg.Theme),
		history:  components.NewHistoryPanel(ctl, cfg.Theme),
		audit:    components.NewAuditPanel(ctl, cfg.Theme),
		width:    cfg.Width,
		height:   cfg.Height,
		showHelp: cfg.ShowHelp,
	}
	m.handleResize()
	return m
}

// Init issues the console's mount-time loads.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		components.RunCalls(m.ctl.Mount()...),
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case components.ResultMsg:
		followUps := m.ctl.Apply(msg.Result)
		return m, components.RunCalls(followUps...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateActive(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.NextTab):
		m.ctl.SetActiveTab(m.ctl.State().ActiveTab.Next())
		return m, nil
	case key.Matches(msg, m.keymap.PrevTab):
		m.ctl.SetActiveTab(m.ctl.State().ActiveTab.Prev())
		return m, nil
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m.updateActive(msg)
}

// updateActive routes a message to the visible panel only.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.ctl.State().ActiveTab {
	case console.TabPredict:
		m.predict, cmd = m.predict.Update(msg)
	case console.TabDataset:
		m.dataset, cmd = m.dataset.Update(msg)
	case console.TabModel:
		m.models, cmd = m.models.Update(msg)
	case console.TabHistory:
		m.history, cmd = m.history.Update(msg)
	case console.TabAudit:
		m.audit, cmd = m.audit.Update(msg)
	}

	return m, cmd
}

func (m *Model) handleResize() {
	m.help.Width = m.width
	m.history.Resize(m.width-4, m.height-chromeHeight)
}
