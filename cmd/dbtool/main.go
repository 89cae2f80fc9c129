package main

import (
	"carbon-logistics-service/internal/adapters/repositories"
	"carbon-logistics-service/internal/config"
	"carbon-logistics-service/internal/platform/db"
	"carbon-logistics-service/internal/platform/logging"
	"flag"

	"go.uber.org/zap"
)

// dbtool prepares a database for the server: it creates the catalogue
// schema and upserts the seed file. Intended for one-shot deploy jobs
// where the server runs with SEED_ON_START=false.
func main() {
	schemaOnly := flag.Bool("schema-only", false, "create the schema without seeding")
	flag.Parse()

	cfg, err := config.Load()
	logger := logging.New(logging.Config{Level: "info", Format: "console"})
	defer func() { _ = logger.Sync() }()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	conn, err := db.Open(cfg)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	logger.Info("initializing database schema", zap.String("driver", cfg.DBDriver))
	if err := repositories.InitSchema(conn); err != nil {
		logger.Fatal("schema initialization failed", zap.Error(err))
	}
	logger.Info("schema ready")

	if *schemaOnly {
		return
	}

	logger.Info("seeding database", zap.String("path", cfg.SeedPath))
	n, err := repositories.SeedFromJSON(conn, repositories.DialectFor(cfg.DBDriver), cfg.SeedPath)
	if err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("seeding complete", zap.Int("rows", n))
}
