package shared

import (
	"context"
	"time"

	"booking-calendar-sync/internal/domain/calendar"
)

// CalendarAPI is the external calendar. Implementations bound every call with a
// timeout and a small retry budget.
type CalendarAPI interface {
	// ListEvents returns events of all given calendars overlapping [from, to).
	ListEvents(ctx context.Context, calendarIDs []string, from, to time.Time) ([]calendar.Event, error)
	// ListChangedEvents returns events updated since updatedMin, deleted ones included.
	ListChangedEvents(ctx context.Context, calendarID string, updatedMin time.Time) ([]calendar.Event, error)
	CreateEvent(ctx context.Context, calendarID string, draft calendar.Draft) (string, error)
	UpdateEvent(ctx context.Context, calendarID, eventID string, draft calendar.Draft) error
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
	Watch(ctx context.Context, calendarID, address, channelToken string, ttl time.Duration) (calendar.Channel, error)
	StopChannel(ctx context.Context, ch calendar.Channel) error
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Cache stores JSON values. Get reports false on a miss.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// Locker hands out short-lived exclusive guards. ok is false when the key is held.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
}
