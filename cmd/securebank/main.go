package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Veraticus/securebank-console/internal/cli"
	"github.com/Veraticus/securebank-console/internal/common"
	"github.com/Veraticus/securebank-console/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootOptions are the persistent flags and the configuration they produce.
type rootOptions struct {
	cfg        *config.Config
	v          *viper.Viper
	cfgFile    string
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "securebank",
		Short: "🏦 SecureBank fraud-detection operator console",
		Long: `securebank drives the SecureBank fraud-detection service.

Run 'securebank console' for the interactive console, or use the subcommands
to score transactions, generate datasets, train and activate models, and
audit performance from scripts.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $HOME/.config/securebank/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print backend responses as JSON")
	rootCmd.PersistentFlags().String("backend-url", "", "fraud-detection service base URL")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (console, json)")

	// Bind flags to viper
	_ = opts.v.BindPFlag("backend.base_url", rootCmd.PersistentFlags().Lookup("backend-url"))
	_ = opts.v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = opts.v.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add commands
	rootCmd.AddCommand(consoleCmd(opts))
	rootCmd.AddCommand(predictCmd(opts))
	rootCmd.AddCommand(datasetsCmd(opts))
	rootCmd.AddCommand(modelsCmd(opts))
	rootCmd.AddCommand(historyCmd(opts))
	rootCmd.AddCommand(auditCmd(opts))
	rootCmd.AddCommand(journalCmd(opts))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	interrupts := cli.NewInterruptHandler(os.Stderr)
	ctx := interrupts.HandleInterrupts(context.Background())

	err := newRootCmd().ExecuteContext(ctx)
	interrupts.Stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err.Error()))
		os.Exit(1)
	}
}

func (o *rootOptions) initConfig() error {
	cfg, err := config.LoadWith(o.v, o.cfgFile)
	if err != nil {
		return common.NewUserError("failed to load configuration", err)
	}
	o.cfg = cfg

	level, err := common.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	if err := common.SetupLogger(level, cfg.Logging.Format); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "securebank version %s\n", config.Version)
		},
	}
}
