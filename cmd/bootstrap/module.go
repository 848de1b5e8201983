package bootstrap

import (
	"shareit/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the whole service: infrastructure first, then persistence,
// use cases and the HTTP layer.
var Module = fx.Options(
	FxLogger,
	ConfigModule,
	LoggerModule,
	DBModule,
	MetricsModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
