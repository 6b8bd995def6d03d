package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/minerva/internal/cli"
	"github.com/aretw0/minerva/internal/metrics"
	httpAdapter "github.com/aretw0/minerva/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Serves POST /chatbot together with the health, info, graph and OpenAPI endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := cfg.Logger()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		hooks := cli.DebugHooks(logger)
		serverOpts := []httpAdapter.Option{
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMaxInputSize(cfg.MaxInputSize),
		}
		if cfg.Metrics {
			collector := metrics.New()
			hooks = hooks.Merge(collector.Hooks())
			serverOpts = append(serverOpts, httpAdapter.WithMetrics(collector))
		}

		bot, closeStore, err := cli.NewBot(ctx, cfg, logger, hooks)
		if err != nil {
			return err
		}
		defer closeStore()

		handler, err := httpAdapter.NewServer(bot, serverOpts...).Handler()
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("minerva server listening", "addr", srv.Addr, "graph", graphSource(cfg.GraphFile), "metrics", cfg.Metrics)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			logger.Info("shutdown signal received", "timeout", cfg.ShutdownTimeout)

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				srv.Close()
				return fmt.Errorf("graceful shutdown did not complete in %v: %w", cfg.ShutdownTimeout, err)
			}
			logger.Info("minerva server stopped gracefully")
			return nil
		}
	},
}

func graphSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for sessions; memory when empty")
	serveCmd.Flags().Bool("metrics", true, "Expose Prometheus metrics on /metrics")
}
