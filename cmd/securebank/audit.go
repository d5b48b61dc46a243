package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/securebank-console/internal/cli"
	"github.com/spf13/cobra"
)

func auditCmd(opts *rootOptions) *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit the active model against a dataset version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			s.ctl.SelectDataset(version)

			if err := s.run("Auditing model", s.ctl.SubmitAudit()); err != nil {
				return err
			}

			result := s.ctl.State().Audit.Value
			return s.emit(result, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, cli.RenderBox("Audit: "+version, cli.FormatKeyValues([][2]string{
					{"False positive rate", result.FalsePositivePercent()},
					{"False negative rate", result.FalseNegativePercent()},
				})))
				return err
			})
		},
	}

	cmd.Flags().StringVar(&version, "dataset-version", "", "dataset version to audit against")

	return cmd
}
