package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/orbitwatch/debris-tracker/internal/adapter"
	"github.com/orbitwatch/debris-tracker/internal/catalog"
	"github.com/orbitwatch/debris-tracker/internal/config"
	"github.com/orbitwatch/debris-tracker/internal/identity"
	"github.com/orbitwatch/debris-tracker/internal/ledger"
	"github.com/orbitwatch/debris-tracker/internal/lifecycle"
	"github.com/orbitwatch/debris-tracker/internal/logger"
	"github.com/orbitwatch/debris-tracker/internal/messaging"
	"github.com/orbitwatch/debris-tracker/internal/seed"
	"github.com/orbitwatch/debris-tracker/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSeedConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx := context.Background()

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "seed",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting database seeding")

	// Connect to database, retrying while it comes up
	db, err := store.Open(ctx, cfg.Database.DSN())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Run schema migrations
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to run migrations", zap.Error(err))
	}

	// Wire services; seeding never publishes events
	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	publisher := messaging.NewNoopPublisher()

	seeder := seed.NewSeeder(
		identity.NewService(dataStore, clock),
		catalog.NewService(dataStore, clock),
		lifecycle.NewManager(dataStore, clock, publisher),
		ledger.NewMirror(dataStore, clock, publisher),
	)

	if err := seeder.Run(ctx); err != nil {
		logger.FatalCtx(ctx, "Seeding failed", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Database seeded")
}
