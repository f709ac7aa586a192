package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"nexttoyou/config"
	"nexttoyou/internal/infra/catalog"
	logs "nexttoyou/internal/infra/log"
	"nexttoyou/internal/infra/persistence/postgres"
	"nexttoyou/internal/usecase"
	"nexttoyou/internal/usecase/impl"
	"nexttoyou/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogload replaces the store catalog with a seed document read from blob
// storage. With -dry-run the seed is only read and decoded.

type loadFlags struct {
	bucketURL string
	key       string
	dryRun    bool
}

type runParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	CatalogUC usecase.CatalogUsecase
	Flags     loadFlags
}

func main() {
	var flags loadFlags
	flag.StringVar(&flags.bucketURL, "bucket", "", "Bucket URL overriding catalog.bucketUrl (file:///dir or gs://bucket)")
	flag.StringVar(&flags.key, "key", "", "Seed object key overriding catalog.seedKey")
	flag.BoolVar(&flags.dryRun, "dry-run", false, "Read and decode the seed without writing it")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	app := fx.New(
		fx.NopLogger,
		fx.Supply(flags),
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			impl.NewCatalogService,
		),
		fx.Invoke(run),
	)

	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(lc fx.Lifecycle, params runParams) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			return load(startCtx, params)
		},
	})
}

func load(ctx context.Context, params runParams) error {
	start := time.Now()

	cfg := *params.Config
	catalogCfg := config.CatalogConfig{}
	if cfg.Catalog != nil {
		catalogCfg = *cfg.Catalog
	}
	if params.Flags.bucketURL != "" {
		catalogCfg.BucketURL = params.Flags.bucketURL
	}
	if params.Flags.key != "" {
		catalogCfg.SeedKey = params.Flags.key
	}
	cfg.Catalog = &catalogCfg

	source, err := catalog.OpenBlobSource(ctx, &cfg, params.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := source.Close(); closeErr != nil {
			params.Logger.Warn("Failed to close catalog bucket", slog.Any("error", closeErr))
		}
	}()

	seed, err := source.LoadSeed(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load catalog seed")
	}

	if params.Flags.dryRun {
		params.Logger.Info("Dry run, catalog left unchanged",
			slog.Int("stores", len(seed.Stores)),
			slog.String("elapsed", util.FormatDuration(time.Since(start))),
		)

		return nil
	}

	count, err := params.CatalogUC.ReplaceCatalog(ctx, seed)
	if err != nil {
		return err
	}

	params.Logger.Info("Catalog loaded",
		slog.Int("stores", count),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return nil
}
