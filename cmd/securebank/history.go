package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/securebank-console/internal/cli"
	"github.com/spf13/cobra"
)

func historyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the backend's prediction log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.run("Loading history", s.ctl.RefreshHistory()); err != nil {
				return err
			}

			entries := s.ctl.State().History.Value
			return s.emit(entries, func(out io.Writer) error {
				if len(entries) == 0 {
					_, err := fmt.Fprintln(out, cli.FormatInfo("No predictions recorded yet."))
					return err
				}

				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				defer func() {
					if flushErr := w.Flush(); flushErr != nil {
						slog.Error("failed to flush table writer", "error", flushErr)
					}
				}()

				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n",
					cli.TableHeaderStyle.Render("#"),
					cli.TableHeaderStyle.Render("Transaction"),
					cli.TableHeaderStyle.Render("Prediction")); err != nil {
					return fmt.Errorf("failed to write header: %w", err)
				}
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n",
					strings.Repeat("─", 3),
					strings.Repeat("─", 40),
					strings.Repeat("─", 12)); err != nil {
					return fmt.Errorf("failed to write separator: %w", err)
				}

				for i, entry := range entries {
					if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, entry.TransactionText(), entry.Prediction); err != nil {
						return fmt.Errorf("failed to write history row: %w", err)
					}
				}
				return nil
			})
		},
	}
}
