package bootstrap

import (
	"fmt"
	"time"

	"booking-calendar-sync/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	ConfigSections,
)

// ConfigSections derives the pieces of config.Config that constructors take directly.
// Tests that supply their own config.Config reuse it.
var ConfigSections = fx.Provide(
	NewLocation,
	func(cfg config.Config) config.AdminConfig { return cfg.Admin },
	func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
	func(cfg config.Config) config.JWTConfig { return cfg.JWT },
	func(cfg config.Config) config.WebhookConfig { return cfg.Webhook },
	func(cfg config.Config) config.RateLimitConfig { return cfg.RateLimit },
)

// NewLocation is the business time zone every date and clock time is read in.
func NewLocation(cfg config.Config) (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.Business.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid BUSINESS_TIMEZONE %q: %w", cfg.Business.TimeZone, err)
	}
	return loc, nil
}
