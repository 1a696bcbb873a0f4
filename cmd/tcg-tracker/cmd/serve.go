package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/tcg-collection-tracker/internal/api"
	"github.com/donaldgifford/tcg-collection-tracker/internal/justtcg"
	"github.com/donaldgifford/tcg-collection-tracker/internal/resolver"
	"github.com/donaldgifford/tcg-collection-tracker/internal/store"
	"github.com/donaldgifford/tcg-collection-tracker/internal/telemetry"
	"github.com/donaldgifford/tcg-collection-tracker/pkg/logger"
)

var skipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply migrations at startup")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: Version,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SampleRatio:    cfg.Telemetry.SampleRatio,
		MetricInterval: cfg.Telemetry.MetricInterval,
	})
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(sctx); err != nil {
			log.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if !skipMigrate {
		if err := st.Migrate(ctx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	upstream := justtcg.NewHTTPClient(cfg.JustTCG.APIKey,
		justtcg.WithBaseURL(cfg.JustTCG.BaseURL),
		justtcg.WithGame(cfg.JustTCG.Game),
		justtcg.WithQueryScheme(justtcg.QueryScheme(cfg.JustTCG.QueryScheme)),
		justtcg.WithHTTPClient(&http.Client{
			Timeout:   cfg.JustTCG.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}),
	)
	if err := upstream.CheckCredentials(); err != nil {
		log.Warn("price lookups disabled until an API key is configured", "error", err)
	}

	prices := resolver.New(upstream,
		resolver.WithLogger(logger.Component(log, "resolver")),
		resolver.WithPageSize(cfg.JustTCG.PageSize),
	)

	e, _ := api.NewRouter(api.Deps{
		Store:       st,
		Resolver:    prices,
		Logger:      logger.Component(log, "http"),
		Version:     Version,
		SearchLimit: cfg.Search.ResultLimit,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := cfg.Server.Addr()
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", addr, "version", Version)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	log.Info("shutting down server")

	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
