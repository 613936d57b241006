package bootstrap

import (
	"context"
	"log/slog"

	"rental-market/internal/infra/scheduler"
	"rental-market/internal/pkg/config"
	"rental-market/internal/usecase/shared"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewDeadlineScheduler,
		scheduler.NewHandlers,
	),
	fx.Invoke(startWorker),
)

func NewDeadlineScheduler(lc fx.Lifecycle, cfg config.SchedulerConfig) shared.DeadlineScheduler {
	if !cfg.Enabled {
		slog.Info("scheduler disabled, deadline announcements are off")
		return scheduler.NopScheduler{}
	}
	client := asynq.NewClient(scheduler.RedisOpt(cfg))
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return scheduler.NewAsynqScheduler(client)
}

func startWorker(lc fx.Lifecycle, cfg config.SchedulerConfig, handlers *scheduler.Handlers) {
	if !cfg.Enabled {
		return
	}
	worker := scheduler.NewWorker(cfg, handlers)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return worker.Start()
		},
		OnStop: func(_ context.Context) error {
			worker.Stop()
			return nil
		},
	})
}
