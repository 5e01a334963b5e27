package bootstrap

import (
	"log/slog"

	"restro-api/internal/handler/middleware"
	"restro-api/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger builds the application-wide slog logger from the request
// logging middleware so handlers and fx components share one sink.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
