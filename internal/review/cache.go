package review

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"bookshelf/internal/config"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "reviews:"

// NewRedisClient connects to the review cache. It returns nil when no address
// is configured or the server does not answer, leaving the cache disabled.
func NewRedisClient(ctx context.Context, cfg config.Redis) *redis.Client {
	if cfg.Addr == "" {
		slog.Info("review cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		slog.Warn("review cache unavailable", slog.String("addr", cfg.Addr), slog.String("err", err.Error()))
		_ = rdb.Close()
		return nil
	}
	slog.Info("Redis connected", slog.String("pong", pong))
	return rdb
}

type RedisCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{redis: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, title string) ([]byte, bool, error) {
	payload, err := c.redis.Get(ctx, cacheKey(title)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (c *RedisCache) Set(ctx context.Context, title string, payload []byte) error {
	return c.redis.Set(ctx, cacheKey(title), payload, c.ttl).Err()
}

// cacheKey folds case and surrounding space so equivalent titles share an
// entry.
func cacheKey(title string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(title))
}
