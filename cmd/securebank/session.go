package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/securebank-console/internal/backend"
	"github.com/Veraticus/securebank-console/internal/cli"
	"github.com/Veraticus/securebank-console/internal/console"
	"github.com/Veraticus/securebank-console/internal/model"
	"github.com/Veraticus/securebank-console/internal/service"
	"github.com/Veraticus/securebank-console/internal/storage"
	"github.com/spf13/cobra"
)

// session is one command's controller plus the resources it holds open.
type session struct {
	ctl     *console.Controller
	client  *backend.Client
	journal service.Journal
	out     io.Writer
	spin    io.Writer
	json    bool
}

func (o *rootOptions) newSession(cmd *cobra.Command) (*session, error) {
	ctx := cmd.Context()

	journal, err := o.openJournal(ctx)
	if err != nil {
		return nil, err
	}

	client := backend.NewClient(backend.Options{
		BaseURL:   o.cfg.Backend.BaseURL,
		UserAgent: o.cfg.Backend.UserAgent,
		Timeout:   o.cfg.Backend.Timeout,
	})

	ctlOpts := console.Options{
		Context:     ctx,
		Models:      model.ModelNames(o.cfg.Console.Models),
		FetchModels: o.cfg.Console.FetchModels,
	}
	// A nil *SQLiteStorage in the interface would not compare equal to nil.
	if journal != nil {
		ctlOpts.Journal = journal
	}

	s := &session{
		ctl:    console.NewController(client, ctlOpts),
		client: client,
		out:    cmd.OutOrStdout(),
		json:   o.jsonOutput,
	}
	if journal != nil {
		s.journal = journal
	}
	if !o.jsonOutput {
		s.spin = cmd.ErrOrStderr()
	}

	return s, nil
}

// openJournal returns nil when journaling is disabled.
func (o *rootOptions) openJournal(ctx context.Context) (*storage.SQLiteStorage, error) {
	if !o.cfg.Journal.Enabled {
		return nil, nil
	}

	store, err := storage.Open(ctx, o.cfg.Journal.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return store, nil
}

func (s *session) Close() {
	s.ctl.Shutdown()
	if s.journal == nil {
		return
	}
	if err := s.journal.Close(); err != nil {
		slog.Error("failed to close journal", "error", err)
	}
}

// run executes call, folds its result into the controller and returns the call's error.
// Follow-up refreshes only matter to an open console and are not run.
func (s *session) run(description string, call console.Call) error {
	result, _ := cli.Await(s.spin, description, func() (console.Result, error) {
		return call.Run(), nil
	})
	s.ctl.Apply(result)

	if result.Err != nil {
		return fmt.Errorf("%s %s failed: %w", call.Op.Method(), call.Op.Path(), result.Err)
	}
	return nil
}

// emit prints v as indented JSON when --json is set, otherwise calls render.
func (s *session) emit(v any, render func(w io.Writer) error) error {
	if !s.json {
		return render(s.out)
	}

	enc := json.NewEncoder(s.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
