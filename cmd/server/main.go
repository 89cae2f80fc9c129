package main

import (
	"carbon-logistics-service/internal/api"
	"carbon-logistics-service/internal/app"
	"carbon-logistics-service/internal/config"
	"carbon-logistics-service/internal/platform/logging"
	"carbon-logistics-service/internal/platform/tracing"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var version = "dev"

// main is the application composition root.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Development: cfg.Environment == "development",
	})
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.OTLPEndpoint, version, cfg.Environment)
	if err != nil {
		return err
	}
	defer shutdownTracing(context.Background())

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	// Initialize schema and seed catalogue data on startup for local runs.
	if cfg.SeedOnStart {
		if err := a.InitAndSeed(logger, cfg.SeedPath); err != nil {
			return err
		}
	}

	router := api.NewRouter(api.Deps{
		Parts:          a.Parts,
		Calculator:     a.Calculator,
		DB:             a.DB,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	// Write timeout covers four geocode lookups plus one routing call.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      4*cfg.GeocodeTimeout + cfg.RoutingTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("db_driver", cfg.DBDriver),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
