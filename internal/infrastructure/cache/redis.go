package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Gagana-kumar/quick-mom/pkg/config"
)

const redisKeyPrefix = "view:"

// RedisCache backs the view cache with Redis so invalidation reaches every
// replica. Cache problems are logged and treated as misses.
type RedisCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(cfg *config.Config, logger *zap.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{client: client, logger: logger}, nil
}

// Set stores a payload for path with an expiry.
func (rc *RedisCache) Set(ctx context.Context, path string, payload string, expiration time.Duration) {
	if err := rc.client.Set(ctx, redisKeyPrefix+path, payload, expiration).Err(); err != nil {
		rc.logger.Warn("failed to cache view", zap.String("path", path), zap.Error(err))
	}
}

// Get retrieves a cached payload by path.
func (rc *RedisCache) Get(ctx context.Context, path string) (string, bool) {
	payload, err := rc.client.Get(ctx, redisKeyPrefix+path).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		rc.logger.Warn("failed to read cached view", zap.String("path", path), zap.Error(err))
		return "", false
	}
	return payload, true
}

// Invalidate drops the given paths.
func (rc *RedisCache) Invalidate(ctx context.Context, paths ...string) {
	if len(paths) == 0 {
		return
	}
	keys := make([]string, 0, len(paths))
	for _, path := range paths {
		keys = append(keys, redisKeyPrefix+path)
	}
	if err := rc.client.Del(ctx, keys...).Err(); err != nil {
		rc.logger.Warn("failed to invalidate cached views", zap.Strings("paths", paths), zap.Error(err))
	}
}

// Close releases the Redis connection.
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}
