package components

import (
	"event-registration/internal/handler"
	"event-registration/internal/handler/api"
	"event-registration/internal/handler/middleware"
	"event-registration/internal/pkg/config"
	"event-registration/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRegistrationHandler,
		api.NewCapacityHandler,
		api.NewAdminHandler,
		NewAuthHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(authCommands, cfg.Cookie)
}

func NewHandlers(
	registration *api.RegistrationHandler,
	capacity *api.CapacityHandler,
	admin *api.AdminHandler,
	auth *api.AuthHandler,
) handler.Handlers {
	return handler.Handlers{
		Registration: registration,
		Capacity:     capacity,
		Admin:        admin,
		Auth:         auth,
	}
}
