package components

import (
	"rental-market/internal/domain/pricing"
	"rental-market/internal/domain/reservation"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/config"
	"rental-market/internal/usecase"
	"rental-market/internal/usecase/commands"
	"rental-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(cfg config.BookingConfig) *pricing.DefaultCalculator {
			return pricing.NewDefaultCalculator(cfg.ServiceFeePerUnit)
		},
		fx.As(new(pricing.Calculator)),
	),
	func(clk clock.Clock, cfg config.BookingConfig) *reservation.Factory {
		return reservation.NewFactory(clk, reservation.NewRandomCodeGenerator(), cfg.CodePrefix)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAccountCommands,
		commands.NewConversationCommands,
		commands.NewBookingCommands,
		commands.NewReservationCommands,
		commands.NewTransactionCommands,
		commands.NewDeadlineCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewListingQueries,
		queries.NewConversationQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
