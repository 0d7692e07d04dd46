package bootstrap

import (
	"log/slog"

	"booking-calendar-sync/internal/handler/middleware"
	"booking-calendar-sync/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
