package cli

import (
	"fmt"
	"time"

	"domain-auction/internal/activity"
	auction "domain-auction/internal/auctionService"
	"domain-auction/internal/config"
	"domain-auction/internal/credentials"
	"domain-auction/internal/metrics"
	"domain-auction/internal/notification"
	"domain-auction/internal/repository"
	"domain-auction/internal/seed"
	"domain-auction/utils"

	"github.com/prometheus/client_golang/prometheus"
)

// app is the wired auction core shared by the commands
type app struct {
	cfg       config.Config
	ledger    *auction.Ledger
	registry  *prometheus.Registry
	collector *metrics.Collector
}

// loadConfig reads the env file and applies the global flag overrides
func loadConfig(opts *RootOptions) (config.Config, error) {
	cfg, err := config.LoadEnvConfig(opts.EnvFile)
	if err != nil {
		return config.Config{}, err
	}
	if opts.SeedFile != "" {
		cfg.SeedFile = opts.SeedFile
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	utils.SetLevel(cfg.LogLevel)
	return cfg, nil
}

// newApp seeds an in-memory store and builds the ledger over it
func newApp(cfg config.Config) (*app, error) {
	fixture, err := loadFixture(cfg.SeedFile)
	if err != nil {
		return nil, err
	}

	repo := repository.NewMemoryRepo()
	hasher := credentials.NewBcryptHasher(cfg.BcryptCost)
	summary, err := seed.Load(repo, hasher, time.Now(), fixture)
	if err != nil {
		return nil, fmt.Errorf("cli: seed store: %w", err)
	}
	utils.Info("store seeded", map[string]any{
		"domains": summary.Domains,
		"users":   summary.Users,
		"bids":    summary.Bids,
		"source":  seedSource(cfg.SeedFile),
	})

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	ledger := auction.NewLedger(repo, activity.NewLog(), notification.NewCenter(cfg.NotificationTTL),
		auction.WithHasher(hasher),
		auction.WithMetrics(collector),
	)

	return &app{cfg: cfg, ledger: ledger, registry: registry, collector: collector}, nil
}

func loadFixture(path string) (seed.Fixture, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.ReadFile(path)
}

func seedSource(path string) string {
	if path == "" {
		return "default"
	}
	return path
}
