package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/rfalmeida/b3rank/internal/api"
	"github.com/rfalmeida/b3rank/internal/api/handlers"
	"github.com/rfalmeida/b3rank/internal/external/eodhd"
	"github.com/rfalmeida/b3rank/internal/external/yahoo"
	"github.com/rfalmeida/b3rank/internal/pipeline"
	"github.com/rfalmeida/b3rank/internal/universe"
	"github.com/rfalmeida/b3rank/pkg/config"
	"github.com/rfalmeida/b3rank/pkg/httputil"
	"github.com/rfalmeida/b3rank/pkg/logger"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the ranking API server",
	Long: `Starts the REST API server exposing the ranking pipeline.

Endpoints:
  GET    /health               - Health check
  POST   /api/run              - Trigger a pipeline run
  GET    /api/ranking          - Latest ranked table (?lang=en|pt)
  GET    /api/summary          - Run summary and status
  GET    /api/diagnostics      - Per-ticker diagnostics
  DELETE /api/diagnostics/{id} - Dismiss one diagnostic

Set REFRESH_CRON (e.g. "0 7 * * 1-5") to refresh the ranking on a
schedule in addition to the manual trigger.

Example:
  go run ./cmd/b3rank api
  go run ./cmd/b3rank api --port 8090`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if apiPort != "" {
		cfg.Port = apiPort
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	PrintHeader("b3rank API Server")
	PrintKeyValue("Port", cfg.Port, 12)
	PrintKeyValue("Env", cfg.Env, 12)
	PrintKeyValue("Universe", fmt.Sprintf("%d tickers", universe.Size()), 12)

	httpClient := httputil.New(cfg, log)
	dataClient := eodhd.NewClient(cfg, httpClient, log)
	fxClient := yahoo.NewClient(cfg, httpClient, log)

	runner := pipeline.New(dataClient, dataClient, fxClient, pipeline.Params{
		Universe:          universe.Tickers(),
		WindowStart:       cfg.Pipeline.WindowStart,
		RequestDelay:      cfg.Pipeline.RequestDelay,
		PriceLookbackDays: cfg.Pipeline.PriceLookbackDays,
		Weights:           pipeline.DefaultWeightConfig(),
	}, log)

	rankingHandler := handlers.NewRankingHandler(runner, log)
	router := api.NewRouter(rankingHandler, log)
	server := api.New(cfg, log, router)

	// Optional scheduled refresh
	var scheduler *cron.Cron
	if cfg.RefreshCron != "" {
		scheduler = cron.New()
		if _, err := scheduler.AddFunc(cfg.RefreshCron, func() {
			if err := rankingHandler.StartRun(); err != nil {
				log.WithError(err).Warn("Scheduled refresh skipped")
			}
		}); err != nil {
			return fmt.Errorf("invalid REFRESH_CRON: %w", err)
		}
		scheduler.Start()
		PrintKeyValue("Refresh", cfg.RefreshCron, 12)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Infof("Received signal %s, shutting down", sig)
	}

	if scheduler != nil {
		scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	PrintSuccess("Server stopped")
	return nil
}
