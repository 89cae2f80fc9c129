// Package app wires concrete adapters behind ports. It is shared by the
// HTTP server and the carbonctl command.
package app

import (
	"carbon-logistics-service/internal/adapters/osm"
	"carbon-logistics-service/internal/adapters/repositories"
	"carbon-logistics-service/internal/config"
	"carbon-logistics-service/internal/platform/db"
	"carbon-logistics-service/internal/services"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

type App struct {
	Config     *config.Config
	DB         *sql.DB
	Dialect    repositories.Dialect
	Parts      *repositories.SQLPartRepository
	Calculator *services.Calculator
}

// New opens the database and builds the calculator. Call Close when done.
func New(cfg *config.Config) (*App, error) {
	conn, err := db.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	geocoder, err := osm.NewNominatimGeocoder(osm.NominatimConfig{
		BaseURL:   cfg.NominatimURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.GeocodeTimeout,
		RPS:       cfg.NominatimRPS,
		Burst:     cfg.NominatimBurst,
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("app: %w", err)
	}

	router := osm.NewOSRMRouteProvider(osm.OSRMConfig{
		BaseURL:   cfg.OSRMURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.RoutingTimeout,
	})

	dialect := repositories.DialectFor(cfg.DBDriver)
	parts := repositories.NewSQLPartRepository(conn, dialect)

	return &App{
		Config:     cfg,
		DB:         conn,
		Dialect:    dialect,
		Parts:      parts,
		Calculator: services.NewCalculator(parts, geocoder, router),
	}, nil
}

// InitAndSeed creates the schema and upserts the seed file.
func (a *App) InitAndSeed(logger *zap.Logger, seedPath string) error {
	if err := repositories.InitSchema(a.DB); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	n, err := repositories.SeedFromJSON(a.DB, a.Dialect, seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	logger.Info("catalogue seeded", zap.String("path", seedPath), zap.Int("rows", n))
	return nil
}

func (a *App) Close() error {
	return a.DB.Close()
}
