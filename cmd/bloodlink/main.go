// Command bloodlink runs the blood donation coordination API server and
// the daily eligibility reset scheduler.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/bloodlink-my/bloodlink/internal/adapters/scheduler"
	"github.com/bloodlink-my/bloodlink/internal/bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := bootstrap.InitLogger(false)
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	// Re-init with the configured mode now that config is loaded.
	logger = bootstrap.InitLogger(cfg.IsDev)
	logger.InfoContext(ctx, "starting bloodlink",
		"dev", cfg.IsDev,
		"addr", cfg.HTTP.Addr,
		"scheduler", cfg.Scheduler.Enabled,
	)

	db, err := bootstrap.ConnectDB(cfg.Postgres, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close database failed", "error", cerr)
		}
	}()

	if err = bootstrap.MigrateDB(ctx, db, cfg.Postgres, logger); err != nil {
		return err
	}

	services, err := bootstrap.BuildServices(db, &cfg, logger)
	if err != nil {
		return err
	}

	server := bootstrap.NewHTTPServer(bootstrap.HTTPServerOptions{
		Config:   &cfg,
		Services: services,
		DB:       db,
		Logger:   logger,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return bootstrap.RunHTTPServer(gctx, server, logger)
	})

	if cfg.Scheduler.Enabled {
		runner, runnerErr := scheduler.NewRunner(scheduler.RunnerOptions{
			Eligibility: services.Eligibility,
			ResetHour:   cfg.Scheduler.ResetHourUTC,
			Logger:      logger,
		})
		if runnerErr != nil {
			return runnerErr
		}
		g.Go(func() error {
			return runner.Run(gctx)
		})
	}

	return g.Wait()
}
