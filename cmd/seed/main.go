// seed loads a YAML catalog of users, categories, tools, comparisons and
// blog posts into the configured store. Records go through the same
// services as admin writes, so invalid records are reported and skipped.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/elhoucineqara/saascompare/internal/config"
	"github.com/elhoucineqara/saascompare/internal/logger"
	"github.com/elhoucineqara/saascompare/internal/repository"
	"github.com/elhoucineqara/saascompare/internal/service"
	"github.com/elhoucineqara/saascompare/internal/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var filePath string
	var reset bool
	var timeout time.Duration

	flagSet := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flagSet.StringVarP(&filePath, "file", "f", "seeds/catalog.yaml", "path to the YAML seed catalog")
	flagSet.BoolVar(&reset, "reset", false, "wipe every collection before seeding")
	flagSet.DurationVar(&timeout, "timeout", 2*time.Minute, "overall deadline for the run")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger.SetLevel(cfg.LogLevel)

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	catalog, err := service.LoadSeedCatalog(f)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	store, err := repository.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.StoreDriver, err)
	}
	defer store.Close()

	v := validator.NewValidator()
	seeder := service.NewSeedService(
		store.Store,
		service.NewAuthService(store.Users, store.Sessions, v, cfg.SessionTTL, cfg.BcryptCost),
		service.NewCategoryService(store.Categories, store.Tools, v),
		service.NewToolService(store.Tools, store.Categories, store.Comparisons, v),
		service.NewComparisonService(store.Comparisons, store.Tools, v),
		service.NewBlogService(store.BlogPosts, store.Users, v),
	)

	logger.Info("Seeding store",
		slog.String("driver", store.Driver),
		slog.String("file", filePath),
		slog.Bool("reset", reset))

	report, err := seeder.Seed(ctx, catalog, reset)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d records failed to load", report.Failed)
	}
	return nil
}
