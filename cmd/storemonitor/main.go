package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	corecfg "github.com/storepulse/store-monitor/internal/core/config"
	"github.com/storepulse/store-monitor/internal/core/storage"
	"github.com/storepulse/store-monitor/internal/core/storage/memory"
	"github.com/storepulse/store-monitor/internal/core/storage/postgres"
	"github.com/storepulse/store-monitor/internal/migrations"
	"github.com/storepulse/store-monitor/internal/report"
	"github.com/storepulse/store-monitor/internal/seed"
	"github.com/storepulse/store-monitor/internal/server"
	"golang.org/x/sync/errgroup"
)

// backend bundles the storage roles one database type provides.
type backend struct {
	source storage.ObservationSource
	jobs   storage.JobStore
	seeder storage.Seeder
	health server.HealthChecker
	close  func() error
}

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	flag.Parse()

	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	// 0. Initialize Logger
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))
	slog.Info("Loaded config",
		"database", cfg.Database.Type,
		"workers", cfg.Reports.WorkerCount,
		"queue_size", cfg.Reports.QueueSize,
		"default_timezone", cfg.Reports.DefaultTimezone,
	)

	// 2. Initialize Storage
	be, err := openBackend(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer be.close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 3. Optional dataset seeding on startup
	if cfg.Seed.Enabled {
		loader := seed.NewLoader(be.seeder, seed.Options{})
		if _, err := loader.Run(ctx, cfg.Seed.Dir); err != nil {
			slog.Error("Failed to seed dataset", "dir", cfg.Seed.Dir, "error", err)
			os.Exit(1)
		}
	}

	// 4. Initialize Reports
	engine := report.NewEngine(be.source, be.jobs, cfg.Reports.DefaultTimezone)
	dispatcher := report.NewDispatcher(be.jobs, engine, report.DispatcherOptions{
		WorkerCount:    cfg.Reports.WorkerCount,
		QueueSize:      cfg.Reports.QueueSize,
		RecoverOnStart: cfg.Reports.RecoverOnStart,
	})
	handler := report.NewHandler(dispatcher, be.jobs)

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), be.health, cfg.Server.Mode, cfg.Server.CORSAllowedOrigins)
	handler.RegisterRoutes(srv.Engine)

	// 6. Start Services; both stop when ctx is cancelled by a signal.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return dispatcher.Start(gctx)
	})
	g.Go(func() error {
		return srv.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func openBackend(cfg corecfg.DatabaseConfig) (*backend, error) {
	if cfg.Type == "memory" {
		slog.Warn("Using in-memory storage; data is lost on exit")
		store := memory.NewStore()
		return &backend{
			source: store,
			jobs:   store,
			seeder: store,
			close:  func() error { return nil },
		}, nil
	}

	db, err := postgres.Open(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, err
	}

	if err := migrations.RunMigrations(db, cfg.AutoMigrate); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	adapter, err := postgres.NewAdapter(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &backend{
		source: adapter,
		jobs:   adapter,
		seeder: adapter,
		health: adapter,
		close:  adapter.Close,
	}, nil
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
