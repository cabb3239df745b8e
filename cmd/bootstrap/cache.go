package bootstrap

import (
	"context"

	"limited-drop-api/internal/infra/cache"
	"limited-drop-api/internal/pkg/config"
	"limited-drop-api/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		fx.Annotate(
			NewSettingsCache,
			fx.As(new(shared.SettingsCache)),
		),
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func NewSettingsCache(client *redis.Client, cfg config.Config) *cache.SettingsCache {
	return cache.NewSettingsCache(client, cfg.Redis.SettingsTTL)
}
