package bootstrap

import (
	"ticket-monarch/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.ClockModule,
	JWTModule,
	StoreModule,
	components.BackendModule,
	components.EventsModule,
	components.UseCaseModule,
	components.HandlerModule,
)
