package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ps2mcs/ps2mcs/internal/config"
	"github.com/ps2mcs/ps2mcs/internal/ftpx"
	"github.com/ps2mcs/ps2mcs/internal/logging"
	"github.com/ps2mcs/ps2mcs/internal/mapping"
	"github.com/ps2mcs/ps2mcs/internal/progress"
	"github.com/ps2mcs/ps2mcs/internal/syncer"
)

var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to sync: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.NewLogger(cfg.Environment)
	logger.Info("ps2mcs starting",
		slog.String("version", Version),
		slog.String("host", cfg.Host),
		slog.String("sync_dir", cfg.SyncDir),
		slog.String("mapping", cfg.Mapping),
	)

	names, err := config.LoadTargets(cfg.TargetsFile)
	if err != nil {
		return fmt.Errorf("loading targets: %w", err)
	}

	if len(names) == 0 {
		return fmt.Errorf("no targets listed in %s", cfg.TargetsFile)
	}

	strategy, err := mapping.ForName(cfg.Mapping)
	if err != nil {
		return err
	}

	// Targets are resolved and validated up front; a malformed name
	// aborts here, before any network connection is opened.
	targets, err := syncer.NewTargets(names, cfg.SyncDir, strategy)
	if err != nil {
		return fmt.Errorf("building sync targets: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session, err := ftpx.Dial(ctx, cfg.Host, cfg.User, cfg.Password)
	if err != nil {
		return err
	}
	defer session.Quit()

	var reporter syncer.Reporter = progress.NewBar(os.Stdout)
	if cfg.BasicOutput {
		reporter = progress.NewBasic(os.Stdout)
	}

	s := syncer.New(session, targets, syncer.Options{
		Reporter:    reporter,
		BasicOutput: cfg.BasicOutput,
	}, logger)

	start := time.Now()

	res, err := s.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println()
			logger.Info("sync cancelled")

			return nil
		}

		return err
	}

	logger.Info("sync finished",
		slog.Int("downloaded", res.Downloaded),
		slog.Int("uploaded", res.Uploaded),
		slog.Int("in_sync", res.InSync),
		slog.Int("failed", res.Failed),
	)
	fmt.Printf("Finished in %.3fs\n", time.Since(start).Seconds())

	return nil
}
