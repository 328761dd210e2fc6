package kvstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ticket-monarch/internal/infra"
	"ticket-monarch/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// ConnectRedis pings the server before handing out the client.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := NewRedisClient(cfg)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
	return client, cleanup, nil
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapStoreErr(s.logger, infra.KindNotFound, "key not found", nil)
		}
		return nil, infra.WrapStoreErr(s.logger, infra.KindCacheFailure, "redis get failed", err)
	}
	return raw, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindCacheFailure, "redis set failed", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindCacheFailure, "redis del failed", err)
	}
	return nil
}

// Batch sends the writes and deletes in one MULTI/EXEC block.
func (s *RedisStore) Batch(ctx context.Context, set map[string][]byte, del []string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, value := range set {
			pipe.Set(ctx, key, value, s.ttl)
		}
		if len(del) > 0 {
			pipe.Del(ctx, del...)
		}
		return nil
	})
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindCacheFailure, "redis batch failed", err)
	}
	return nil
}
