package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"limited-drop-api/internal/pkg/config"
	"limited-drop-api/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const keyPrefix = "settings:"

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.Wrap(err, "failed to connect to redis")
	}
	return rdb, nil
}

// SettingsCache coalesces concurrent misses per key and treats redis as
// optional: any cache failure falls back to the loader.
type SettingsCache struct {
	client redis.Cmdable
	ttl    time.Duration
	group  singleflight.Group
}

func NewSettingsCache(client redis.Cmdable, ttl time.Duration) *SettingsCache {
	return &SettingsCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *SettingsCache) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (string, error)) (string, error) {
	cacheKey := keyPrefix + key

	val, err := c.client.Get(ctx, cacheKey).Result()
	if err == nil {
		return val, nil
	}
	if !errors.Is(err, redis.Nil) {
		slog.Warn("settings cache read failed", "key", key, "error", err.Error())
	}

	v, err, _ := c.group.Do(cacheKey, func() (any, error) {
		loaded, lerr := load(ctx)
		if lerr != nil {
			return "", lerr
		}
		if serr := c.client.Set(ctx, cacheKey, loaded, c.ttl).Err(); serr != nil {
			slog.Warn("settings cache write failed", "key", key, "error", serr.Error())
		}
		return loaded, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *SettingsCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate settings cache")
	}
	return nil
}
