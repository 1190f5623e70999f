package bootstrap

import (
	"event-registration/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MetricsModule,
	NotificationModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
