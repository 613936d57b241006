package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"rental-market/internal/infra/db"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/infra/repository"
	"rental-market/internal/infra/uow"
	"rental-market/internal/pkg/config"
	"rental-market/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
	StoreProviders,
)

// StoreProviders builds everything that sits on top of the pool.
var StoreProviders = fx.Provide(
	pgq.New,
	func(pool *pgxpool.Pool) pgq.DBTX { return pool },
	uow.NewPostgresUoW,
	NewMessageCapability,
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// NewMessageCapability probes the messages type constraint once at startup.
func NewMessageCapability(q *pgq.Queries, dbtx pgq.DBTX) (shared.MessageCapability, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	capability, err := repository.ProbeMessageCapability(ctx, q, dbtx)
	if err != nil {
		return nil, err
	}
	slog.Info("message capability probed", "typed_answers", capability.TypedAnswersSupported())
	return capability, nil
}
