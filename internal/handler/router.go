package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"rental-market/internal/domain/user"
	"rental-market/internal/handler/api"
	"rental-market/internal/handler/middleware"
	"rental-market/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth         *api.AuthHandler
	Account      *api.AccountHandler
	Listing      *api.ListingHandler
	Conversation *api.ConversationHandler
	Reservation  *api.ReservationHandler
	Transaction  *api.TransactionHandler
	AuthMw       *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := h.AuthMw.RequireAuth()
	operatorOnly := h.AuthMw.RequireRoleAtLeast(user.RoleOperator)
	adminOnly := h.AuthMw.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, adminOnly)
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/users", Handler: h.Account.Create},
			})
		}

		listings := apiGroup.Group("/listings/:id")
		{
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: h.Listing.Availability},
				{Method: http.MethodPost, Path: "/quote", Handler: h.Listing.Quote, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/calendar/select", Handler: h.Listing.SelectDay},
			})
		}

		conversations := apiGroup.Group("/conversations")
		conversations.Use(requireAuth)
		{
			addRoutes(conversations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Conversation.Ensure},
				{Method: http.MethodGet, Path: "", Handler: h.Conversation.List},
				{Method: http.MethodGet, Path: "/:id/messages", Handler: h.Conversation.Messages},
				{Method: http.MethodPost, Path: "/:id/messages", Handler: h.Conversation.SendText},
				{Method: http.MethodGet, Path: "/:id/negotiation", Handler: h.Conversation.Negotiation},
				{Method: http.MethodPost, Path: "/:id/offers", Handler: h.Conversation.ProposeOffer},
				{Method: http.MethodPost, Path: "/:id/offers/:messageId/accept", Handler: h.Conversation.AcceptOffer},
				{Method: http.MethodPost, Path: "/:id/offers/:messageId/reject", Handler: h.Conversation.RejectOffer},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Checkout},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(requireAuth)
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Reservation.Confirm},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPost, Path: "/:id/cash-confirmation", Handler: h.Reservation.MarkCashConfirmed},
				{Method: http.MethodPost, Path: "/:id/arrival-confirmation", Handler: h.Reservation.ConfirmArrival},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Reservation.Complete},
			})
		}

		owners := apiGroup.Group("/owners/me")
		owners.Use(requireAuth)
		{
			addRoutes(owners, []route{
				{Method: http.MethodGet, Path: "/revenue", Handler: h.Reservation.Revenue},
			})
		}

		transactions := apiGroup.Group("/transactions")
		transactions.Use(requireAuth)
		{
			addRoutes(transactions, []route{
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Transaction.UpdateStatus, Mw: []gin.HandlerFunc{operatorOnly}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
