package components

import (
	"context"
	"log/slog"
	"time"

	"booking-calendar-sync/internal/infra/calendar"
	"booking-calendar-sync/internal/infra/notify"
	"booking-calendar-sync/internal/pkg/config"
	"booking-calendar-sync/internal/usecase/shared"

	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integration",
	fx.Provide(
		fx.Annotate(
			NewCalendarClient,
			fx.As(new(shared.CalendarAPI)),
		),
		notify.NewRenderer,
		NewNotifier,
	),
)

func NewCalendarClient(cfg config.Config, loc *time.Location) *calendar.Client {
	return calendar.NewClient(cfg.Calendar, loc)
}

// NewNotifier publishes to the broker when one is configured and logs otherwise.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, renderer *notify.Renderer) (shared.Notifier, error) {
	if cfg.AMQP.URL == "" {
		slog.Info("AMQP_URL not set, notifications are logged only")
		return notify.NewLogNotifier(renderer), nil
	}

	n, err := notify.NewAMQPNotifier(cfg.AMQP.URL, cfg.AMQP.Exchange, renderer)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return n.Close()
		},
	})
	return n, nil
}
