package components

import (
	"rental-market/internal/handler"
	"rental-market/internal/handler/api"
	"rental-market/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAccountHandler,
		api.NewListingHandler,
		api.NewConversationHandler,
		api.NewReservationHandler,
		api.NewTransactionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
