package components

import (
	"rental-market/internal/infra/pgq"
	"rental-market/internal/infra/readstore"
	"rental-market/internal/usecase/queries"

	"go.uber.org/fx"
)

// Write-side repositories are opened per transaction by the unit of work;
// only the pool-backed read stores are wired here.
var PersistenceModule = fx.Module("persistence",
	readstoreModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			asQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Conversation
		fx.Annotate(
			asQueries,
			fx.As(new(readstore.ConversationReadQueries)),
		),
		fx.Annotate(
			readstore.NewConversationReadStore,
			fx.As(new(queries.ConversationReadStore)),
		),
		// Reservation
		fx.Annotate(
			asQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

func asQueries(q *pgq.Queries) *pgq.Queries {
	return q
}
