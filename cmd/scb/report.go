package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Fetch the table once and print the per-year report",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newApp(os.Stdout, format)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			_, err = a.pipeline.Run(ctx)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format: text, json or yaml (default from OUTPUT_FORMAT)")
	return cmd
}
