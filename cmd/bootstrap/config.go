package bootstrap

import (
	"log/slog"

	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		clock.NewRealClock,
	),
	fx.Invoke(logEffectiveConfig),
)

// logEffectiveConfig records the non-secret settings the process booted with.
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"db_max_conns", cfg.DB.MaxConns,
		"page_default_size", cfg.Page.DefaultSize,
		"metrics_namespace", cfg.Metrics.Namespace)
}
