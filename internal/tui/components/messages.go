package components

import (
	"github.com/Veraticus/securebank-console/internal/console"
	tea "github.com/charmbracelet/bubbletea"
)

// ResultMsg carries a completed backend call back to the program loop.
type ResultMsg struct {
	Result console.Result
}

// RunCalls turns started calls into commands that execute them off the program loop.
func RunCalls(calls ...console.Call) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(calls))
	for _, call := range calls {
		cmds = append(cmds, func() tea.Msg {
			return ResultMsg{Result: call.Run()}
		})
	}
	return tea.Batch(cmds...)
}
