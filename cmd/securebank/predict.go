package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/securebank-console/internal/cli"
	"github.com/Veraticus/securebank-console/internal/console"
	"github.com/Veraticus/securebank-console/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagName maps a wire field key to its flag, e.g. merch_lat to merch-lat.
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// applyFormFlags copies every flag named after a form field into the controller, verbatim.
func applyFormFlags(ctl *console.Controller, form console.Form, keys []string, flags *pflag.FlagSet) error {
	for _, key := range keys {
		value, err := flags.GetString(flagName(key))
		if err != nil {
			return err
		}
		if err := ctl.UpdateField(form, key, value); err != nil {
			return err
		}
	}
	return nil
}

func predictCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Score a transaction for fraud",
		Long: `Send a transaction to the fraud-detection service and print its verdict.

Every field is sent exactly as given; omitted fields are sent empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPredict(cmd, opts)
		},
	}

	for _, key := range model.TransactionFields {
		cmd.Flags().String(flagName(key), "", fmt.Sprintf("transaction %s", key))
	}

	return cmd
}

func runPredict(cmd *cobra.Command, opts *rootOptions) error {
	s, err := opts.newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := applyFormFlags(s.ctl, console.FormTransaction, model.TransactionFields, cmd.Flags()); err != nil {
		return err
	}

	if err := s.run("Scoring transaction", s.ctl.SubmitPrediction()); err != nil {
		return err
	}

	prediction := s.ctl.State().Prediction.Value
	return s.emit(model.PredictResponse{Prediction: prediction}, func(w io.Writer) error {
		if prediction.IsFraud() {
			_, err := fmt.Fprintln(w, cli.FormatFraudAlert())
			return err
		}
		_, err := fmt.Fprintln(w, cli.FormatSuccess("Confirmed: "+string(prediction)))
		return err
	})
}
