package components

import (
	"restaurant-booking/internal/handler"
	"restaurant-booking/internal/handler/api"
	"restaurant-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAdminHandler,
		api.NewAuthHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(
		middleware.RegisterValidators,
		handler.NewRouter,
	),
)

func newHandlers(booking *api.BookingHandler, admin *api.AdminHandler, auth *api.AuthHandler) handler.Handlers {
	return handler.Handlers{
		Booking: booking,
		Admin:   admin,
		Auth:    auth,
	}
}
