package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ticket-monarch/internal/infra/db"
	"ticket-monarch/internal/infra/kvstore"
	"ticket-monarch/internal/infra/uow"
	"ticket-monarch/internal/pkg/clock"
	"ticket-monarch/internal/pkg/config"
	"ticket-monarch/internal/usecase/handoff"
	"ticket-monarch/migrations"

	"go.uber.org/fx"
)

const purgeInterval = time.Hour

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore opens the hand-off store selected by STORE_BACKEND.
func NewStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (handoff.KV, error) {
	switch cfg.Store.Backend {
	case "memory":
		return newMemoryStore(lc, cfg, clk, logger), nil
	case "redis":
		return newRedisStore(lc, cfg, logger)
	case "postgres":
		return newPostgresStore(lc, cfg, clk, logger)
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q", cfg.Store.Backend)
	}
}

func newMemoryStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) handoff.KV {
	store := kvstore.NewMemoryStore(clk, cfg.Store.TTL)
	if cfg.Store.TTL > 0 {
		appendPurgeHook(lc, store, logger, nil)
	}

	logger.Info("using in-memory funnel store")
	return store
}

func newRedisStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (handoff.KV, error) {
	client, cleanup, err := kvstore.ConnectRedis(context.Background(), cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	logger.Info("using redis funnel store", "addr", cfg.Redis.Addr)
	return kvstore.NewRedisStore(client, cfg.Store.TTL, logger), nil
}

func newPostgresStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (handoff.KV, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := migrations.Apply(ctx, pool); err != nil {
		cleanup()
		return nil, err
	}

	store := kvstore.NewPostgresStore(pool, clk, cfg.Store.TTL, logger).
		WithTransactions(uow.NewPostgresUoW(pool, logger))
	appendPurgeHook(lc, store, logger, cleanup)

	logger.Info("using postgres funnel store", "host", cfg.DB.Host, "db", cfg.DB.DBName)
	return store, nil
}

// expiredPurger is implemented by stores that do not evict on their own.
type expiredPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// appendPurgeHook runs purgeLoop for the app lifetime and calls cleanup,
// when set, after the loop stops.
func appendPurgeHook(lc fx.Lifecycle, store expiredPurger, logger *slog.Logger, cleanup func()) {
	purgeCtx, stopPurge := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go purgeLoop(purgeCtx, store, purgeInterval, logger)
			return nil
		},
		OnStop: func(_ context.Context) error {
			stopPurge()
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})
}

func purgeLoop(ctx context.Context, store expiredPurger, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.PurgeExpired(ctx)
			if err != nil {
				logger.Warn("failed to purge expired funnel state", "error", err.Error())
				continue
			}
			if n > 0 {
				logger.Info("purged expired funnel state", "rows", n)
			}
		}
	}
}
