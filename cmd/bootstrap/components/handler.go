package components

import (
	"booking-calendar-sync/internal/handler"
	"booking-calendar-sync/internal/handler/api"
	"booking-calendar-sync/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAdminBookingHandler,
		api.NewAvailabilityHandler,
		api.NewAdminHandler,
		api.NewAuthHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
		middleware.NewRateLimiter,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Booking      *api.BookingHandler
	AdminBooking *api.AdminBookingHandler
	Availability *api.AvailabilityHandler
	Admin        *api.AdminHandler
	Auth         *api.AuthHandler
	Webhook      *api.WebhookHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Booking:      p.Booking,
		AdminBooking: p.AdminBooking,
		Availability: p.Availability,
		Admin:        p.Admin,
		Auth:         p.Auth,
		Webhook:      p.Webhook,
	}
}
