package bootstrap

import (
	"rental-market/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	SectionProviders,
)

// SectionProviders splits Config into the sections individual components take.
var SectionProviders = fx.Provide(
	func(cfg config.Config) config.BookingConfig { return cfg.Booking },
	func(cfg config.Config) config.KafkaConfig { return cfg.Kafka },
	func(cfg config.Config) config.SchedulerConfig { return cfg.Scheduler },
)
