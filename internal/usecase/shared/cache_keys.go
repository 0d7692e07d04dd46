package shared

import (
	"context"
	"log/slog"
	"time"

	"booking-calendar-sync/internal/pkg/dates"

	"github.com/google/uuid"
)

const (
	EventsDayTTL       = time.Hour
	AvailabilityTTL    = 3 * time.Minute
	RangeSummaryPrefix = "availability:range:"
	eventsDayPrefix    = "calendar:events:"
)

// DayIn is the calendar day of t in the business zone. Times read back from storage
// carry the process zone, so keys must never be derived from them directly.
func DayIn(t time.Time, loc *time.Location) time.Time {
	return dates.DateOnly(t.In(loc))
}

func EventsDayKey(day time.Time) string {
	return eventsDayPrefix + dates.FormatDay(day)
}

func RangeSummaryKey(serviceID uuid.UUID, from, to time.Time) string {
	return RangeSummaryPrefix + serviceID.String() + ":" + dates.FormatDay(from) + ":" + dates.FormatDay(to)
}

// InvalidateDays drops the per-day event caches of the given days and every range
// summary. Failures are logged; a stale entry expires with its TTL.
func InvalidateDays(ctx context.Context, cache Cache, days ...time.Time) {
	if len(days) > 0 {
		keys := make([]string, 0, len(days))
		for _, d := range days {
			keys = append(keys, EventsDayKey(d))
		}
		if err := cache.Delete(ctx, keys...); err != nil {
			slog.WarnContext(ctx, "failed to invalidate day caches", "error", err.Error())
		}
	}
	if err := cache.DeletePrefix(ctx, RangeSummaryPrefix); err != nil {
		slog.WarnContext(ctx, "failed to invalidate range summaries", "error", err.Error())
	}
}
