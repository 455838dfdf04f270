package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aretw0/algotrace/internal/cli"
	"github.com/aretw0/algotrace/internal/presentation/tui"
	httpAdapter "github.com/aretw0/algotrace/pkg/adapters/http"
	"github.com/aretw0/algotrace/pkg/catalog"
	"github.com/aretw0/algotrace/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

// shutdownTimeout bounds the wait for outstanding requests.
const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Exposes trace generation, the catalog and Prometheus metrics as a JSON API.
Every request carries its own input; the server keeps no session state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}
		port, _ := cmd.Flags().GetString("port")
		quiet, _ := cmd.Flags().GetBool("quiet")

		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics := observability.NewMetrics(reg)
		engine := cli.CreateEngine(logger, metrics.Hooks(), observability.LogHooks(logger))

		srv := &http.Server{
			Addr: ":" + port,
			Handler: httpAdapter.NewHandler(engine, cat,
				httpAdapter.WithLogger(logger),
				httpAdapter.WithMetricsHandler(observability.Handler(reg)),
			),
			ReadHeaderTimeout: 10 * time.Second,
		}

		out := cmd.OutOrStdout()
		if !quiet {
			tui.PrintBanner(out)
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			cli.PrintSystemMessage(out, "Serving on %s (metrics at /metrics)", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		select {
		case err := <-serverErrors:
			return err

		case <-sigCtx.Done():
			logger.Info("shutdown started", "signal", sigCtx.Signal())

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
				if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			}
			cli.PrintSystemMessage(out, "Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
}
