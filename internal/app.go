// Package internal wires configuration, storage, services, jobs, and the
// HTTP server into a runnable application.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"huntly/internal/analytics"
	"huntly/internal/config"
	"huntly/internal/database"
	"huntly/internal/httpapi"
	"huntly/internal/jobs"
	"huntly/internal/logging"
	"huntly/internal/lottery"
)

// App owns every long-lived component of the service.
type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	dbManager *database.DBManager
	scheduler *jobs.Scheduler
	fiberApp  *fiber.App
}

// NewApp constructs the application from the environment configuration.
func NewApp() *App {
	cfg := config.GetConfig()
	logger := logging.NewLogger(cfg)
	return &App{
		cfg:       cfg,
		logger:    logger,
		dbManager: database.NewDBManager(cfg, logger),
		scheduler: jobs.NewScheduler(logger),
	}
}

// Initialize opens the database, migrates the schema, and assembles the
// services, routes, and background jobs.
func (a *App) Initialize() error {
	if err := a.dbManager.Init(); err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if err := a.dbManager.MigrateDatabase(); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}

	db := a.dbManager.GetConnection()
	stats := analytics.NewService(db, a.logger, a.cfg)
	history := lottery.NewHistoryStore(db)
	selector := lottery.NewSelector(db, history, a.logger, a.cfg)

	server := httpapi.NewServer(a.cfg, a.logger, db, stats, selector, history)
	a.fiberApp = server.BuildApp()

	a.scheduler.Register(jobs.NewRecalculateJob(stats,
		time.Duration(a.cfg.JobIntervalSeconds)*time.Second))

	return nil
}

// Run starts the background jobs and serves HTTP until interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.scheduler.Start(ctx)
	defer a.scheduler.Stop()

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + a.cfg.AppPort
		a.logger.Info("Starting HTTP server",
			slog.String("addr", addr),
			slog.String("environment", a.cfg.Environment))
		errCh <- a.fiberApp.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		a.logger.Info("Shutting down")
		return a.fiberApp.ShutdownWithTimeout(10 * time.Second)
	}
}
