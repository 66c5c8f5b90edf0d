package bootstrap

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	redisinfra "wallet-console/internal/infra/redis"
	"wallet-console/internal/pkg/config"
	"wallet-console/internal/usecase/commands"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		fx.Annotate(
			redisinfra.NewTokenStore,
			fx.As(new(commands.TokenStore)),
		),
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*goredis.Client, error) {
	client, cleanup, err := redisinfra.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}
