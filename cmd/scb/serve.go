package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/scb-unemployment/internal/adapter/httpadapter"
)

func newServeCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the report once, then serve it with health and metrics endpoints",
		RunE: func(_ *cobra.Command, _ []string) error {
			var out io.Writer = os.Stdout
			if quiet {
				out = io.Discard
			}
			a, err := newApp(out, "")
			if err != nil {
				return err
			}
			defer a.close()

			srv := httpadapter.NewServer(a.cfg.HTTPAddr, a.pipeline, a.logger)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			serverErr := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			if _, err := a.pipeline.Run(ctx); err != nil {
				a.shutdown(srv)
				return err
			}

			select {
			case <-ctx.Done():
			case err := <-serverErr:
				a.logger.Error("http server error", "error", err)
				return err
			}

			a.logger.Info("shutting down")
			a.shutdown(srv)
			a.logger.Info("shutdown complete")
			return nil
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "do not print the report to stdout")
	return cmd
}

func (a *app) shutdown(srv *httpadapter.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		a.logger.Error("http server shutdown error", "error", err)
	}
}
