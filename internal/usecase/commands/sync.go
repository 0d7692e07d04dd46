package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"booking-calendar-sync/internal/domain/booking"
	"booking-calendar-sync/internal/domain/calendar"
	"booking-calendar-sync/internal/domain/settings"
	"booking-calendar-sync/internal/infra"
	"booking-calendar-sync/internal/pkg/clock"
	"booking-calendar-sync/internal/pkg/config"
	"booking-calendar-sync/internal/pkg/dates"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/internal/pkg/token"
	"booking-calendar-sync/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// WatermarkCalendarEvents names the incremental-fetch watermark of the write calendar.
	WatermarkCalendarEvents = "calendar_events"

	syncOverlap        = 2 * time.Minute
	initialLookback    = 24 * time.Hour
	channelRenewBefore = 24 * time.Hour
	remirrorBatch      = 100
)

var (
	ErrUnknownChannel     = errs.Class("unknown webhook channel", errs.ErrForbidden)
	ErrInvalidChannelAuth = errs.Class("invalid webhook channel token", errs.ErrForbidden)
	ErrSyncFetchFailed    = errs.Class("failed to fetch changed calendar events", errs.ErrExternalService)
)

// Push notification resource states.
const (
	ResourceStateSync   = "sync"
	ResourceStateExists = "exists"
)

type WebhookNotification struct {
	ChannelID     string
	ResourceID    string
	ResourceState string
	ChannelToken  string
}

type SyncResult struct {
	Skipped    bool // another run held the guard, or no calendar is connected
	Fetched    int
	Applied    int
	Ignored    int
	Stale      int
	Failed     int
	Remirrored int
	// TouchedDays are the days whose busy time changed.
	TouchedDays []time.Time
}

type SyncCommands interface {
	RunSync(ctx context.Context) (*SyncResult, error)
	HandleWebhook(ctx context.Context, n WebhookNotification) error
	Tick(ctx context.Context) error
	RenewWatchChannel(ctx context.Context) error
}

type syncCommandsImpl struct {
	uow          shared.UnitOfWork
	settings     *shared.SettingsSource
	api          shared.CalendarAPI
	mirror       *Mirror
	availability AvailabilityCommands
	notifier     shared.Notifier
	cache        shared.Cache
	locker       shared.Locker
	clock        clock.Clock
	webhook      config.WebhookConfig
	guardTTL     time.Duration
}

func NewSyncCommands(
	uow shared.UnitOfWork,
	settings *shared.SettingsSource,
	api shared.CalendarAPI,
	mirror *Mirror,
	availability AvailabilityCommands,
	notifier shared.Notifier,
	cache shared.Cache,
	locker shared.Locker,
	clock clock.Clock,
	webhook config.WebhookConfig,
) SyncCommands {
	return &syncCommandsImpl{
		uow:          uow,
		settings:     settings,
		api:          api,
		mirror:       mirror,
		availability: availability,
		notifier:     notifier,
		cache:        cache,
		locker:       locker,
		clock:        clock,
		webhook:      webhook,
		guardTTL:     5 * time.Minute,
	}
}

// RunSync pulls events of the write calendar changed since the watermark and
// reconciles the bookings they mirror. Foreign events are ignored. An event whose
// revision is behind the booking describes a state the ledger already moved past;
// the local state is written back instead.
func (s *syncCommandsImpl) RunSync(ctx context.Context) (*SyncResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "sync.RunSync", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	result := &SyncResult{}
	cfg, err := s.settings.Load(ctx)
	if err != nil {
		return nil, err
	}
	calendarID, err := cfg.WriteCalendar()
	if err != nil {
		slog.InfoContext(ctx, "calendar sync skipped", "reason", err.Error())
		result.Skipped = true
		return result, nil
	}

	release, ok, err := s.locker.TryLock(ctx, "job:sync", s.guardTTL)
	if err != nil {
		return nil, errs.Wrap(err, "acquire sync guard")
	}
	if !ok {
		slog.InfoContext(ctx, "calendar sync already running")
		result.Skipped = true
		return result, nil
	}
	defer releaseGuard(ctx, release)

	runStart := s.clock.Now()
	since, err := s.fetchSince(ctx, runStart)
	if err != nil {
		return nil, err
	}

	events, err := s.api.ListChangedEvents(ctx, calendarID, since)
	if err != nil {
		// the watermark stays put so the next run fetches the same window again
		return nil, errs.Mark(errs.Wrapf(err, "since %s", since.Format(time.RFC3339)), ErrSyncFetchFailed)
	}
	result.Fetched = len(events)

	touched := map[time.Time]struct{}{}
	for _, e := range events {
		s.processEvent(ctx, e, cfg, result, touched)
	}
	s.remirror(ctx, cfg, result, touched)

	if err := s.uow.Reads().Watermarks().Set(ctx, WatermarkCalendarEvents, runStart); err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}

	for day := range touched {
		result.TouchedDays = append(result.TouchedDays, day)
	}
	if len(result.TouchedDays) > 0 {
		shared.InvalidateDays(ctx, s.cache, result.TouchedDays...)
	}

	span.SetAttributes(
		attribute.Int("fetched", result.Fetched),
		attribute.Int("applied", result.Applied),
		attribute.Int("failed", result.Failed),
	)
	slog.InfoContext(ctx, "calendar sync finished",
		"since", since,
		"fetched", result.Fetched,
		"applied", result.Applied,
		"ignored", result.Ignored,
		"stale", result.Stale,
		"failed", result.Failed,
		"remirrored", result.Remirrored)
	return result, nil
}

func (s *syncCommandsImpl) fetchSince(ctx context.Context, now time.Time) (time.Time, error) {
	watermark, found, err := s.uow.Reads().Watermarks().Get(ctx, WatermarkCalendarEvents)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrDatabaseFailure)
	}
	if !found {
		return now.Add(-initialLookback), nil
	}
	return watermark.Add(-syncOverlap), nil
}

// processEvent isolates one event: any failure, panics included, is logged and counted.
func (s *syncCommandsImpl) processEvent(ctx context.Context, e calendar.Event, cfg settings.Settings, result *SyncResult, touched map[time.Time]struct{}) {
	defer func() {
		if r := recover(); r != nil {
			result.Failed++
			slog.ErrorContext(ctx, "panic while syncing event", "event_id", e.ID, "panic", fmt.Sprint(r))
		}
	}()

	outcome, b, oldStart, err := s.applyEvent(ctx, e)
	if err != nil {
		result.Failed++
		slog.WarnContext(ctx, "failed to sync event", "event_id", e.ID, "error", err.Error())
		return
	}

	switch outcome {
	case outcomeIgnored:
		result.Ignored++
	case outcomeStale:
		result.Stale++
	case outcomeCancelled:
		result.Applied++
		touched[shared.DayIn(b.Start(), cfg.Location)] = struct{}{}
		s.notifyAll(ctx, b, shared.NotifyCancelledBySync)
	case outcomeMoved:
		result.Applied++
		touched[shared.DayIn(oldStart, cfg.Location)] = struct{}{}
		touched[shared.DayIn(b.Start(), cfg.Location)] = struct{}{}
		s.notifyAll(ctx, b, shared.NotifyRescheduledBySync)
	}
}

type syncOutcome int

const (
	outcomeIgnored syncOutcome = iota
	outcomeStale
	outcomeCancelled
	outcomeMoved
)

func (s *syncCommandsImpl) applyEvent(ctx context.Context, e calendar.Event) (syncOutcome, *booking.Booking, time.Time, error) {
	outcome := outcomeIgnored
	var (
		out      *booking.Booking
		oldStart time.Time
	)

	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outcome, out = outcomeIgnored, nil
		b, err := s.findMirrored(ctx, tx.Bookings(), e)
		if err != nil || b == nil {
			return err
		}
		if e.Revision > 0 && e.Revision < b.Revision() {
			outcome = outcomeStale
			return nil
		}

		now := s.clock.Now()
		oldStart = b.Start()
		switch {
		case e.IsCancelled():
			if !b.ApplyExternalCancellation(now) {
				return nil
			}
			outcome = outcomeCancelled
		case e.AllDay:
			return nil
		default:
			if !b.ApplyExternalTimes(e.Start, e.End, now) {
				return nil
			}
			outcome = outcomeMoved
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			outcome = outcomeIgnored
			return errs.Mark(err, ErrDatabaseFailure)
		}
		out = b
		return nil
	})
	return outcome, out, oldStart, err
}

// findMirrored resolves the booking an event mirrors. It returns nil for foreign events.
func (s *syncCommandsImpl) findMirrored(ctx context.Context, repo shared.BookingRepository, e calendar.Event) (*booking.Booking, error) {
	var (
		b   *booking.Booking
		err error
	)
	if id, parseErr := uuid.Parse(e.BookingID); parseErr == nil {
		b, err = repo.FindByID(ctx, id)
	} else {
		b, err = repo.FindByExternalEventID(ctx, e.ID)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if b.HasExternalEvent() && b.ExternalEventID() != e.ID {
		return nil, nil
	}
	return b, nil
}

// remirror retries calendar writes that failed earlier or were superseded.
func (s *syncCommandsImpl) remirror(ctx context.Context, cfg settings.Settings, result *SyncResult, touched map[time.Time]struct{}) {
	pending, err := s.uow.Reads().Bookings().ListUnmirrored(ctx, remirrorBatch)
	if err != nil {
		slog.WarnContext(ctx, "failed to list unmirrored bookings", "error", err.Error())
		return
	}
	for _, b := range pending {
		if err := s.mirror.Sync(ctx, b, cfg); err != nil {
			slog.WarnContext(ctx, "re-mirror failed", "booking_id", b.ID().String(), "error", err.Error())
			continue
		}
		result.Remirrored++
		touched[shared.DayIn(b.Start(), cfg.Location)] = struct{}{}
	}
}

func (s *syncCommandsImpl) notifyAll(ctx context.Context, b *booking.Booking, kind shared.NotificationKind) {
	for _, a := range []shared.Audience{shared.AudienceClient, shared.AudienceAdmin} {
		if err := s.notifier.Notify(ctx, shared.NewNotification(kind, a, b)); err != nil {
			slog.WarnContext(ctx, "notification failed", "booking_id", b.ID().String(), "kind", string(kind), "error", err.Error())
		}
	}
}

func (s *syncCommandsImpl) HandleWebhook(ctx context.Context, n WebhookNotification) error {
	ch, found, err := s.uow.Reads().Settings().LoadWatchChannel(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseFailure)
	}
	if !found || !token.Equal(ch.ID, n.ChannelID) {
		return ErrUnknownChannel
	}
	if s.webhook.ChannelToken != "" && !token.Equal(s.webhook.ChannelToken, n.ChannelToken) {
		return ErrInvalidChannelAuth
	}

	switch n.ResourceState {
	case ResourceStateSync:
		slog.InfoContext(ctx, "webhook channel handshake", "channel_id", n.ChannelID)
		return nil
	case ResourceStateExists:
		return s.syncAndRecalculate(ctx)
	default:
		slog.InfoContext(ctx, "webhook ignored", "resource_state", n.ResourceState)
		return nil
	}
}

// Tick is the periodic job: sync, then rebuild the current and next month plus any
// month the sync touched.
func (s *syncCommandsImpl) Tick(ctx context.Context) error {
	return s.syncAndRecalculate(ctx)
}

func (s *syncCommandsImpl) syncAndRecalculate(ctx context.Context) error {
	result, err := s.RunSync(ctx)
	if err != nil {
		slog.WarnContext(ctx, "calendar sync failed", "error", err.Error())
		result = &SyncResult{}
	}

	months := monthsFrom(s.clock.Now().In(s.settings.Location()))
	for _, day := range result.TouchedDays {
		months = appendMonth(months, dates.FirstDayOfMonth(day))
	}

	var firstErr error
	for _, m := range months {
		if _, recalcErr := s.availability.RecalculateMonth(ctx, m); recalcErr != nil {
			slog.WarnContext(ctx, "availability recalculation failed", "month", dates.FormatMonth(m), "error", recalcErr.Error())
			if firstErr == nil {
				firstErr = recalcErr
			}
		}
	}
	if err != nil {
		return err
	}
	return firstErr
}

// monthsFrom returns the first days of the current and the next month.
func monthsFrom(now time.Time) []time.Time {
	return []time.Time{dates.FirstDayOfMonth(now), dates.FirstDayOfNextMonth(now)}
}

func appendMonth(months []time.Time, m time.Time) []time.Time {
	for _, existing := range months {
		if existing.Equal(m) {
			return months
		}
	}
	return append(months, m)
}

// RenewWatchChannel keeps one push channel registered on the write calendar.
func (s *syncCommandsImpl) RenewWatchChannel(ctx context.Context) error {
	if s.webhook.Address == "" {
		return nil
	}
	cfg, err := s.settings.Load(ctx)
	if err != nil {
		return err
	}
	calendarID, err := cfg.WriteCalendar()
	if err != nil {
		slog.InfoContext(ctx, "watch channel renewal skipped", "reason", err.Error())
		return nil
	}

	repo := s.uow.Reads().Settings()
	current, found, err := repo.LoadWatchChannel(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseFailure)
	}
	now := s.clock.Now()
	if found && current.CalendarID == calendarID && !current.ExpiresWithin(now, channelRenewBefore) {
		return nil
	}

	ch, err := s.api.Watch(ctx, calendarID, s.webhook.Address, s.webhook.ChannelToken, s.webhook.ChannelTTL)
	if err != nil {
		return errs.Mark(err, errs.ErrExternalService)
	}
	if err := repo.SaveWatchChannel(ctx, ch); err != nil {
		return errs.Mark(err, ErrDatabaseFailure)
	}
	slog.InfoContext(ctx, "watch channel registered", "channel_id", ch.ID, "expires", ch.Expiration)

	if found && current.ID != "" {
		if err := s.api.StopChannel(ctx, current); err != nil {
			slog.WarnContext(ctx, "failed to stop previous channel", "channel_id", current.ID, "error", err.Error())
		}
	}
	return nil
}
