package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"rental-market/internal/infra/messaging"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
		NewRelay,
	),
	fx.Invoke(startRelay),
)

func NewPublisher(lc fx.Lifecycle, cfg config.KafkaConfig) (messaging.Publisher, error) {
	if !cfg.Enabled {
		slog.Info("kafka disabled, outbox events are logged and dropped")
		return messaging.LogPublisher{}, nil
	}
	producer, err := messaging.NewKafkaProducer(cfg.Brokers, nil)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return producer.Close()
		},
	})
	return producer, nil
}

func NewRelay(pool *pgxpool.Pool, q *pgq.Queries, publisher messaging.Publisher, clk clock.Clock, cfg config.KafkaConfig) *messaging.Relay {
	return messaging.NewRelay(pool, q, publisher, clk, cfg)
}

func startRelay(lc fx.Lifecycle, relay *messaging.Relay) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := relay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					slog.Error("notification relay stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
