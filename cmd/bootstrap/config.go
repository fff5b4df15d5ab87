package bootstrap

import (
	"hotel-management/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.ReportConfig { return cfg.Report },
	),
)
