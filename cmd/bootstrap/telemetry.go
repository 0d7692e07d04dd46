package bootstrap

import (
	"context"

	"booking-calendar-sync/internal/infra/telemetry"
	"booking-calendar-sync/internal/pkg/config"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(RegisterTracer),
)

func RegisterTracer(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := telemetry.InitTracer(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
