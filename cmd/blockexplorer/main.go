package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/blockexplorer/internal/blockscan"
	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/handlers/cli"
	"github.com/gabapcia/blockexplorer/internal/infra/storage/redis"
	"github.com/gabapcia/blockexplorer/internal/pkg/logger"
	"github.com/gabapcia/blockexplorer/internal/pkg/resilience/retry"
	"github.com/gabapcia/blockexplorer/internal/pkg/telemetry"
	"github.com/gabapcia/blockexplorer/internal/registry"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := registry.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	table, err := registry.LoadTable(cfg.ProvidersFile)
	if err != nil {
		return err
	}

	reg, err := registry.Build(ctx, cfg, table)
	if err != nil {
		return err
	}

	scanOpts := []blockscan.Option{
		blockscan.WithInterval(cfg.Scan.Interval),
		blockscan.WithMaxRange(cfg.Scan.MaxRange),
		blockscan.WithRetry(retry.New(
			retry.WithRetryIf(func(err error) bool {
				return errors.Is(err, explorer.ErrProvidersExhausted)
			}),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Warn(ctx, "block fetch failed, retrying", "attempt", attempt+1, "error", err)
			}),
		)),
	}

	if cfg.Redis.Addr != "" {
		store, err := redis.NewClient(ctx, cfg.Redis.Addr,
			redis.WithCredentials(cfg.Redis.Username, cfg.Redis.Password),
			redis.WithDB(cfg.Redis.DB),
			redis.WithPrefix(cfg.Redis.Prefix),
		)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer store.Close()

		scanOpts = append(scanOpts, blockscan.WithCheckpointStorage(store))
	}

	explorers := reg.Explorers()
	chains := make([]blockscan.Chain, len(explorers))
	for i, exp := range explorers {
		chains[i] = exp
	}

	lookup := func(chain string) (cli.Explorer, error) {
		exp, err := reg.Explorer(chain)
		if err != nil {
			return nil, err
		}
		return exp, nil
	}

	return cli.Run(ctx, lookup, blockscan.New(chains, scanOpts...))
}
