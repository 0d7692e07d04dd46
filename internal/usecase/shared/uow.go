package shared

import (
	"context"
	"time"

	"booking-calendar-sync/internal/domain/availability"
	"booking-calendar-sync/internal/domain/booking"
	"booking-calendar-sync/internal/domain/calendar"
	"booking-calendar-sync/internal/domain/service"
	"booking-calendar-sync/internal/domain/settings"
	"booking-calendar-sync/internal/domain/slot"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: Repositories bound to the pool for single statements outside transactions
	Reads() Tx
}

type Tx interface {
	Bookings() BookingRepository
	Services() ServiceRepository
	Availability() AvailabilityRepository
	Watermarks() WatermarkRepository
	Settings() SettingsRepository
}

type BookingRepository interface {
	// LockForCreate takes the table lock that serialises overlap check and insert.
	LockForCreate(ctx context.Context) error
	// FindOverlapping returns blocking bookings whose interval overlaps [start, end), excluding one id.
	FindOverlapping(ctx context.Context, interval slot.Interval, exclude uuid.UUID) ([]*booking.Booking, error)
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByClientToken(ctx context.Context, token string) (*booking.Booking, error)
	FindByExternalEventID(ctx context.Context, eventID string) (*booking.Booking, error)
	// ListBlocking returns non-terminal bookings whose interval or proposed interval overlaps [from, to).
	ListBlocking(ctx context.Context, from, to time.Time) ([]*booking.Booking, error)
	// ListUnmirrored returns bookings whose revision is ahead of the calendar copy.
	ListUnmirrored(ctx context.Context, limit int) ([]*booking.Booking, error)
	// MarkMirrored records the external event for a revision unless a newer one was already recorded.
	MarkMirrored(ctx context.Context, id uuid.UUID, eventID string, revision int64) error
	ListReminderCandidates(ctx context.Context, from, to time.Time) ([]*booking.Booking, error)
	// MarkReminderSent reports false when another run already marked the booking.
	MarkReminderSent(ctx context.Context, id uuid.UUID) (bool, error)
}

type ServiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error)
	ListActive(ctx context.Context) ([]*service.Service, error)
}

type AvailabilityRepository interface {
	Upsert(ctx context.Context, entries []availability.Entry) error
	FindMonth(ctx context.Context, serviceID uuid.UUID, month time.Time) ([]availability.Entry, error)
}

type WatermarkRepository interface {
	Get(ctx context.Context, name string) (time.Time, bool, error)
	Set(ctx context.Context, name string, watermark time.Time) error
}

type SettingsRepository interface {
	Load(ctx context.Context) (settings.Document, bool, error)
	Save(ctx context.Context, doc settings.Document) error
	LoadWatchChannel(ctx context.Context) (calendar.Channel, bool, error)
	SaveWatchChannel(ctx context.Context, ch calendar.Channel) error
}
