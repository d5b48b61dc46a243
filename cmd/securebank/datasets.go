package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/securebank-console/internal/cli"
	"github.com/Veraticus/securebank-console/internal/console"
	"github.com/Veraticus/securebank-console/internal/model"
	"github.com/spf13/cobra"
)

func datasetsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "Generate and list synthetic datasets",
	}

	cmd.AddCommand(datasetsGenerateCmd(opts))
	cmd.AddCommand(datasetsListCmd(opts))

	return cmd
}

func datasetsGenerateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic dataset",
		Long: `Ask the backend to generate a synthetic dataset.

Numeric parameters are sent as JSON numbers when they parse as numbers and as
strings otherwise; the backend decides what it accepts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDatasetsGenerate(cmd, opts)
		},
	}

	defaults := model.DefaultDatasetParams()
	for _, key := range model.DatasetFields {
		value, _ := defaults.Get(key)
		cmd.Flags().String(flagName(key), value, fmt.Sprintf("dataset %s", key))
	}

	return cmd
}

func runDatasetsGenerate(cmd *cobra.Command, opts *rootOptions) error {
	s, err := opts.newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := applyFormFlags(s.ctl, console.FormDataset, model.DatasetFields, cmd.Flags()); err != nil {
		return err
	}

	if err := s.run("Generating dataset", s.ctl.SubmitDatasetGeneration()); err != nil {
		return err
	}

	return s.emitMessage(s.ctl.State().Generation.Value, "Dataset generation requested")
}

func datasetsListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the datasets the backend knows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.run("Loading datasets", s.ctl.RefreshDatasets()); err != nil {
				return err
			}

			datasets := s.ctl.State().Datasets.Value
			return s.emit(datasets, func(w io.Writer) error {
				if len(datasets) == 0 {
					_, err := fmt.Fprintln(w, cli.FormatInfo("No datasets yet. Use 'securebank datasets generate' to create one."))
					return err
				}
				for _, d := range datasets {
					if _, err := fmt.Fprintln(w, d.String()); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

// emitMessage prints a backend acknowledgement, falling back to fallback when the
// backend sent no message.
func (s *session) emitMessage(resp model.MessageResponse, fallback string) error {
	return s.emit(resp, func(w io.Writer) error {
		text := resp.Message
		if text == "" {
			text = fallback
		}
		_, err := fmt.Fprintln(w, cli.FormatSuccess(text))
		return err
	})
}
