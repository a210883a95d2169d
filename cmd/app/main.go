package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmkorzh/farmbox/internal/config"
	"github.com/dmkorzh/farmbox/internal/crafting"
	"github.com/dmkorzh/farmbox/internal/database"
	"github.com/dmkorzh/farmbox/internal/database/memory"
	"github.com/dmkorzh/farmbox/internal/database/postgres"
	"github.com/dmkorzh/farmbox/internal/dump"
	"github.com/dmkorzh/farmbox/internal/economy"
	"github.com/dmkorzh/farmbox/internal/farm"
	"github.com/dmkorzh/farmbox/internal/handler"
	"github.com/dmkorzh/farmbox/internal/job"
	"github.com/dmkorzh/farmbox/internal/player"
	"github.com/dmkorzh/farmbox/internal/repository"
	"github.com/dmkorzh/farmbox/internal/reward"
	"github.com/dmkorzh/farmbox/internal/scheduler"
	"github.com/dmkorzh/farmbox/internal/server"
	"github.com/dmkorzh/farmbox/internal/worker"
)

const (
	workerCount    = 4
	workerQueueLen = 64

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	// Pick the storage backend. The in-memory store is for local development
	// and tests; postgres is the production path.
	var (
		repo   repository.Farm
		dbPool database.Pool
	)
	switch cfg.Storage {
	case config.StoragePostgres:
		connString := cfg.GetDBConnString()

		if err := database.Migrate(context.Background(), connString); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		pool, err := database.NewPool(connString, cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		repo = postgres.NewFarmRepository(pool)
		dbPool = pool
	case config.StorageMemory:
		slog.Warn("Using in-memory storage, state will not survive restarts")
		repo = memory.NewFarmRepository()
	}

	handler.InitValidator()

	// Business services share one repository and one reward resolver
	resolver := reward.NewResolver(nil)
	playerService := player.NewService(repo)
	farmService := farm.NewService(repo, resolver)
	economyService := economy.NewService(repo)
	craftingService := crafting.NewService(repo)
	dumpService := dump.NewService(repo, resolver)
	jobService := job.NewService(repo)

	// Background sweeps keep growth and water clocks moving for idle players
	pool := worker.NewPool(workerCount, workerQueueLen)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.GrowthSweepInterval, worker.NewGrowthSweep(repo, farmService))
	sched.Schedule(cfg.WaterSweepInterval, worker.NewWaterSweep(repo, farmService))

	srv := server.NewServer(
		cfg.Port,
		cfg.APIKey,
		cfg.TrustedProxies,
		dbPool,
		playerService,
		farmService,
		economyService,
		craftingService,
		dumpService,
		jobService,
	)

	// Run the server and wait for a shutdown signal
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server failed: %v", err)
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	sched.Stop()
	pool.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
