package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Bast8313/soundora/app/config"
	"github.com/Bast8313/soundora/app/driver/postgres"
	"github.com/Bast8313/soundora/app/utils/logger"
)

func main() {
	var (
		file    = flag.String("file", "seed.yaml", "Catalog fixture file")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}

	appLogger, err := logger.New(logLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	fixture, err := LoadFixture(*file)
	if err != nil {
		appLogger.Error("Failed to load fixture", "file", *file, "error", err)
		os.Exit(1)
	}

	db, err := postgres.NewConnection(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := seedCatalog(context.Background(), db, fixture, appLogger); err != nil {
		appLogger.Error("Seeding failed", "error", err)
		os.Exit(1)
	}

	appLogger.Info("Catalog seeded",
		"categories", len(fixture.Categories),
		"brands", len(fixture.Brands),
		"products", len(fixture.Products))
}
