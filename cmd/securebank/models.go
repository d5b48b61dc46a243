package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/securebank-console/internal/model"
	"github.com/spf13/cobra"
)

func modelsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List, train and activate classification models",
	}

	cmd.AddCommand(modelsListCmd(opts))
	cmd.AddCommand(modelsTrainCmd(opts))
	cmd.AddCommand(modelsSelectCmd(opts))

	return cmd
}

func modelsListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the models the console can train",
		Long: `List the model enumeration. With console.fetch_models enabled the list comes
from the backend; otherwise the configured console.models are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if opts.cfg.Console.FetchModels {
				if err := s.run("Loading models", s.ctl.RefreshModels()); err != nil {
					return err
				}
			}

			names := s.ctl.State().Models.Value
			return s.emit(names, func(w io.Writer) error {
				for _, name := range names {
					if _, err := fmt.Fprintln(w, string(name)); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func modelsTrainCmd(opts *rootOptions) *cobra.Command {
	var (
		name    string
		version string
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a model on a dataset version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			s.ctl.SetSelectedModel(model.ModelName(name))
			s.ctl.SelectDataset(version)

			if err := s.run("Training "+name, s.ctl.SubmitTraining()); err != nil {
				return err
			}
			return s.emitMessage(s.ctl.State().Training.Value, "Training requested")
		},
	}

	cmd.Flags().StringVar(&name, "model", "", "model to train")
	cmd.Flags().StringVar(&version, "dataset-version", "", "dataset version to train on")

	return cmd
}

func modelsSelectCmd(opts *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Activate a trained model for scoring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			s.ctl.SetSelectedModel(model.ModelName(name))

			if err := s.run("Activating "+name, s.ctl.SubmitModelSelection()); err != nil {
				return err
			}
			return s.emitMessage(s.ctl.State().Selection.Value, "Model activated")
		},
	}

	cmd.Flags().StringVar(&name, "model", "", "model to activate")

	return cmd
}
