package bootstrap

import (
	"stay-picker/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the whole service. The e2e suite assembles the same
// components around containers instead of PostgresModule and RedisModule.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	PostgresModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	components.CacheModule,
	components.UseCaseModule,
	components.HandlerModule,
)
