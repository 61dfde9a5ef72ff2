package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	api "github.com/fyrsmithlabs/routefsm/internal/http"
	"github.com/fyrsmithlabs/routefsm/internal/logging"
	"github.com/fyrsmithlabs/routefsm/internal/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the parse/summary HTTP API",
	Long: `Serve starts an HTTP server exposing the extraction engine:

  POST /api/v1/parse     parse posted content into route records
  POST /api/v1/summary   deduplicated per-protocol counts
  GET  /health           liveness check
  GET  /metrics          Prometheus metrics

Configure the listen address via config file or ROUTEFSM_SERVER_HOST /
ROUTEFSM_SERVER_PORT.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(logger) }()

	tmpl, err := routes.LoadTemplate(cfg.Template.Path)
	if err != nil {
		return err
	}

	server, err := api.NewServer(tmpl, logger, &api.Config{
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	})
	if err != nil {
		return err
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down", zap.String("reason", "signal"))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
