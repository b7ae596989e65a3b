package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"news-digest/internal/config"
	"news-digest/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts config.Options

	cmd := &cobra.Command{
		Use:           "news-digest",
		Short:         "Fetch the latest news and rewrite a Markdown digest",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, cleanup, err := di.InitializeApp(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer cleanup()

			if err := application.Run(cmd.Context()); err != nil {
				return fmt.Errorf("application runtime error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.ConfigFile, "config", "", "config file (default ./digest.yaml if present)")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", "", "dotenv file (default ./.env if present)")
	cmd.Flags().BoolVar(&opts.Once, "once", false, "run a single digest even when schedule.cron is set")
	return cmd
}
