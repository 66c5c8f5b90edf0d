package bootstrap

import (
	"go.uber.org/fx"

	"wallet-console/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.SessionModule,
	components.HandlerModule,
)
