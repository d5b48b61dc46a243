package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Veraticus/securebank-console/internal/cli"
	"github.com/Veraticus/securebank-console/internal/common"
	"github.com/Veraticus/securebank-console/internal/model"
	"github.com/Veraticus/securebank-console/internal/service"
	"github.com/Veraticus/securebank-console/internal/storage"
	"github.com/spf13/cobra"
)

// journalRecord is the --json shape of a journal entry.
type journalRecord struct {
	RecordedAt  time.Time `json:"recorded_at"`
	ID          string    `json:"id"`
	RequestID   string    `json:"request_id"`
	Workflow    string    `json:"workflow"`
	Method      string    `json:"method"`
	Path        string    `json:"path"`
	RequestBody string    `json:"request_body,omitempty"`
	Outcome     string    `json:"outcome"`
	Error       string    `json:"error,omitempty"`
	DurationMS  int64     `json:"duration_ms"`
}

func toJournalRecords(entries []model.JournalEntry) []journalRecord {
	out := make([]journalRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, journalRecord{
			RecordedAt:  e.RecordedAt,
			ID:          e.ID,
			RequestID:   e.RequestID,
			Workflow:    string(e.Workflow),
			Method:      e.Method,
			Path:        e.Path,
			RequestBody: e.RequestBody,
			Outcome:     string(e.Outcome),
			Error:       e.Error,
			DurationMS:  e.Duration.Milliseconds(),
		})
	}
	return out
}

func journalCmd(opts *rootOptions) *cobra.Command {
	var (
		workflow   string
		failedOnly bool
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Review recorded backend calls",
		Long: `List the backend calls this console has made, newest first.

Every completed call is recorded with its request body, outcome and timing,
including calls whose results were discarded because a newer request replaced them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.cfg.Journal.Enabled {
				return common.NewUserError("the journal is disabled", fmt.Errorf("set journal.enabled: %w", common.ErrMissingConfig))
			}

			store, err := storage.Open(cmd.Context(), opts.cfg.Journal.Path)
			if err != nil {
				return fmt.Errorf("failed to open journal: %w", err)
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("failed to close journal", "error", closeErr)
				}
			}()

			entries, err := store.List(cmd.Context(), service.JournalFilter{
				Workflow:   model.Workflow(workflow),
				FailedOnly: failedOnly,
				Limit:      limit,
			})
			if err != nil {
				return fmt.Errorf("failed to list journal: %w", err)
			}

			return printJournal(cmd.OutOrStdout(), entries, opts.jsonOutput)
		},
	}

	cmd.Flags().StringVar(&workflow, "workflow", "", "only show calls from this workflow (predict, dataset, model, history, audit, datasets, models)")
	cmd.Flags().BoolVar(&failedOnly, "failed", false, "only show failed calls")
	cmd.Flags().IntVar(&limit, "limit", storage.DefaultListLimit, "maximum number of entries")

	return cmd
}

func printJournal(out io.Writer, entries []model.JournalEntry, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(toJournalRecords(entries))
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(out, cli.FormatInfo("No journal entries found."))
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil {
			slog.Error("failed to flush table writer", "error", flushErr)
		}
	}()

	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("Time"),
		cli.TableHeaderStyle.Render("Workflow"),
		cli.TableHeaderStyle.Render("Call"),
		cli.TableHeaderStyle.Render("Outcome"),
		cli.TableHeaderStyle.Render("Duration"),
		cli.TableHeaderStyle.Render("Error")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("─", 19),
		strings.Repeat("─", 8),
		strings.Repeat("─", 24),
		strings.Repeat("─", 10),
		strings.Repeat("─", 8),
		strings.Repeat("─", 20)); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.RecordedAt.Local().Format("2006-01-02 15:04:05"),
			e.Workflow,
			e.Method+" "+e.Path,
			formatOutcome(e.Outcome),
			e.Duration.Round(time.Millisecond),
			e.Error); err != nil {
			return fmt.Errorf("failed to write journal row: %w", err)
		}
	}
	return nil
}

func formatOutcome(o model.Outcome) string {
	switch o {
	case model.OutcomeSucceeded:
		return cli.SuccessStyle.Render(string(o))
	case model.OutcomeFailed:
		return cli.ErrorStyle.Render(string(o))
	default:
		return cli.SubtleStyle.Render(string(o))
	}
}
