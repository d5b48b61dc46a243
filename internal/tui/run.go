package tui

import (
	"context"
	"fmt"

	"github.com/Veraticus/securebank-console/internal/console"
	tea "github.com/charmbracelet/bubbletea"
)

// Run drives the console until the operator quits or ctx is canceled.
func Run(ctx context.Context, ctl *console.Controller, opts ...Option) error {
	if ctl == nil {
		return fmt.Errorf("console controller is required")
	}

	program := tea.NewProgram(
		NewModel(ctl, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := program.Run()
	ctl.Shutdown()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("console error: %w", err)
	}
	return nil
}
