package bootstrap

import (
	"rental-market/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CredentialsModule,
	MessagingModule,
	SchedulerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
