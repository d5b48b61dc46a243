package main

import (
	"fmt"

	"github.com/Veraticus/securebank-console/internal/common"
	"github.com/Veraticus/securebank-console/internal/tui"
	"github.com/Veraticus/securebank-console/internal/tui/themes"
	"github.com/spf13/cobra"
)

func consoleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Open the interactive operator console",
		Long: `Open the full-screen console with one tab per workflow: Predict, Dataset,
Model, History and Audit.

Logs go to logging.file while the console owns the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConsole(cmd, opts)
		},
	}
}

func runConsole(cmd *cobra.Command, opts *rootOptions) error {
	level, err := common.ParseLevel(opts.cfg.Logging.Level)
	if err != nil {
		return err
	}
	restore, err := common.RedirectLogger(opts.cfg.Logging.File, level, opts.cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to redirect logs: %w", err)
	}
	defer restore()

	s, err := opts.newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	common.LogInfo("Console starting", common.Fields{
		"backend": s.client.BaseURL(),
		"journal": opts.cfg.Journal.Enabled,
	})

	return tui.Run(cmd.Context(), s.ctl,
		tui.WithTheme(themes.GetTheme(opts.cfg.Console.Theme)),
		tui.WithBackendLabel(s.client.BaseURL()),
	)
}
