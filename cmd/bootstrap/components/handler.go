package components

import (
	"restro-api/internal/handler"
	"restro-api/internal/handler/api"
	"restro-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewOfferHandler,
		api.NewMenuHandler,
		api.NewSettingsHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	checkout *api.CheckoutHandler,
	order *api.OrderHandler,
	offer *api.OfferHandler,
	menu *api.MenuHandler,
	settings *api.SettingsHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Checkout: checkout,
		Order:    order,
		Offer:    offer,
		Menu:     menu,
		Settings: settings,
	}
}
