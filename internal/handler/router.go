package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-calendar-sync/internal/handler/api"
	"booking-calendar-sync/internal/handler/middleware"
	"booking-calendar-sync/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Booking      *api.BookingHandler
	AdminBooking *api.AdminBookingHandler
	Availability *api.AvailabilityHandler
	Admin        *api.AdminHandler
	Auth         *api.AuthHandler
	Webhook      *api.WebhookHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(engine.Group("/webhooks"), []route{
		{Method: http.MethodPost, Path: "/calendar", Handler: h.Webhook.Calendar},
	})

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/services", Handler: h.Availability.ListServices},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.GetAvailability},
			{Method: http.MethodGet, Path: "/availability/monthly", Handler: h.Availability.GetMonthlyAvailability},
		})

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{limiter.Middleware()}},
				{Method: http.MethodGet, Path: "/:token", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:token/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/:token/reschedule", Handler: h.Booking.RequestReschedule},
				{Method: http.MethodPost, Path: "/:token/proposal", Handler: h.Booking.RespondToProposal},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{limiter.Middleware()}},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				// authorised by the per-booking admin token
				{Method: http.MethodPost, Path: "/bookings/:id/action", Handler: h.AdminBooking.HandleAction},
				{Method: http.MethodPost, Path: "/bookings/:id/reschedule/accept", Handler: h.AdminBooking.AcceptReschedule},
				{Method: http.MethodPost, Path: "/bookings/:id/proposal", Handler: h.AdminBooking.ProposeNewTime},
				{Method: http.MethodDelete, Path: "/bookings/:id/proposal", Handler: h.AdminBooking.RevokeProposal},
			})

			session := admin.Group("")
			session.Use(authMiddleware.RequireAdmin())
			addRoutes(session, []route{
				{Method: http.MethodGet, Path: "/settings", Handler: h.Admin.GetSettings},
				{Method: http.MethodPut, Path: "/settings", Handler: h.Admin.UpdateSettings},
				{Method: http.MethodPost, Path: "/sync", Handler: h.Admin.Sync},
				{Method: http.MethodPost, Path: "/availability/recalculate", Handler: h.Admin.Recalculate},
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
