package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	corecfg "github.com/storepulse/store-monitor/internal/core/config"
	"github.com/storepulse/store-monitor/internal/core/storage/postgres"
	"github.com/storepulse/store-monitor/internal/migrations"
	"github.com/storepulse/store-monitor/internal/seed"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	dir := flag.String("dir", "", "Dataset directory (defaults to seed.dir)")
	batchSize := flag.Int("batch-size", 0, "Rows per insert transaction")
	dryRun := flag.Bool("dry-run", false, "Parse the dataset and report counts without writing")
	quiet := flag.Bool("quiet", false, "Hide progress bars")
	flag.Parse()

	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))

	dataDir := cfg.Seed.Dir
	if *dir != "" {
		dataDir = *dir
	}

	if *dryRun {
		ds, err := seed.Dataset(dataDir)
		if err != nil {
			slog.Error("Failed to parse dataset", "dir", dataDir, "error", err)
			os.Exit(1)
		}
		slog.Info("Dataset parsed",
			"dir", dataDir,
			"observations", len(ds.Observations),
			"business_hours", len(ds.BusinessHours),
			"timezones", len(ds.Timezones),
		)
		return
	}

	if cfg.Database.Type != "postgres" {
		slog.Error("Seeding needs a persistent database", "database_type", cfg.Database.Type)
		os.Exit(1)
	}

	db, err := postgres.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := migrations.RunMigrations(db, cfg.Database.AutoMigrate); err != nil {
		db.Close()
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	adapter, err := postgres.NewAdapter(db)
	if err != nil {
		db.Close()
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer adapter.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	summary, err := seed.NewLoader(adapter, seed.Options{BatchSize: *batchSize, Quiet: *quiet}).Run(ctx, dataDir)
	if err != nil {
		slog.Error("Seeding failed", "dir", dataDir, "error", err)
		adapter.Close()
		os.Exit(1)
	}

	for _, table := range summary.Tables {
		slog.Info("Seeded",
			"file", table.File,
			"parsed", table.Parsed,
			"skipped", table.Skipped,
			"inserted", table.Inserted,
		)
	}
}
