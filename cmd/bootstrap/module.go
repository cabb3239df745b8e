package bootstrap

import (
	"limited-drop-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// InfraModule is everything below the usecases; the cron binary runs on it
// without the HTTP layer.
var InfraModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	MessagingModule,
	MetricsModule,
	PaymentModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	InfraModule,
	JWTModule,
	components.HandlerModule,
)
