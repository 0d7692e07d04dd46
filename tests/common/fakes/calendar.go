//go:build unit || e2e

package fakes

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"booking-calendar-sync/internal/domain/calendar"
	"booking-calendar-sync/internal/usecase/shared"
)

// Calendar is an in-memory external calendar. Writes land in the event store;
// ListChangedEvents returns whatever the test queued with QueueChanges.
type Calendar struct {
	mu       sync.Mutex
	seq      int
	events   map[string]calendar.Event // by event id
	changed  []calendar.Event
	channels []calendar.Channel
	stopped  []string

	// WriteErr fails every create, update and delete while set.
	WriteErr error
	// ListErr fails ListEvents and ListChangedEvents while set.
	ListErr error

	// Now anchors channel expirations; time.Now when nil.
	Now func() time.Time

	ListCalls   int
	WriteCalls  int
	ChangedFrom []time.Time
}

var _ shared.CalendarAPI = (*Calendar)(nil)

func NewCalendar() *Calendar {
	return &Calendar{events: map[string]calendar.Event{}}
}

// AddEvent stores a foreign or hand-made event.
func (c *Calendar) AddEvent(e calendar.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e.ID == "" {
		c.seq++
		e.ID = fmt.Sprintf("foreign-%d", c.seq)
	}
	if e.Status == "" {
		e.Status = calendar.EventConfirmed
	}
	c.events[e.ID] = e
}

func (c *Calendar) Event(id string) (calendar.Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.events[id]
	return e, ok
}

func (c *Calendar) EventCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

// RemoveEvent simulates a hand deletion without a change notification.
func (c *Calendar) RemoveEvent(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.events, id)
}

func (c *Calendar) QueueChanges(events ...calendar.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.changed = append(c.changed, events...)
}

func (c *Calendar) Channels() []calendar.Channel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.channels)
}

func (c *Calendar) Stopped() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.stopped)
}

func (c *Calendar) ListEvents(_ context.Context, calendarIDs []string, from, to time.Time) ([]calendar.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ListCalls++
	if c.ListErr != nil {
		return nil, c.ListErr
	}
	var out []calendar.Event
	for _, e := range c.events {
		if !slices.Contains(calendarIDs, e.CalendarID) || e.IsCancelled() {
			continue
		}
		if e.Start.Before(to) && e.End.After(from) {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b calendar.Event) int { return a.Start.Compare(b.Start) })
	return out, nil
}

func (c *Calendar) ListChangedEvents(_ context.Context, _ string, updatedMin time.Time) ([]calendar.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ChangedFrom = append(c.ChangedFrom, updatedMin)
	if c.ListErr != nil {
		return nil, c.ListErr
	}
	out := c.changed
	c.changed = nil
	return out, nil
}

func (c *Calendar) CreateEvent(_ context.Context, calendarID string, draft calendar.Draft) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WriteCalls++
	if c.WriteErr != nil {
		return "", c.WriteErr
	}
	c.seq++
	id := fmt.Sprintf("evt-%d", c.seq)
	c.events[id] = fromDraft(id, calendarID, draft)
	return id, nil
}

func (c *Calendar) UpdateEvent(_ context.Context, calendarID, eventID string, draft calendar.Draft) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WriteCalls++
	if c.WriteErr != nil {
		return c.WriteErr
	}
	if _, ok := c.events[eventID]; !ok {
		return calendar.ErrEventGone
	}
	c.events[eventID] = fromDraft(eventID, calendarID, draft)
	return nil
}

func (c *Calendar) DeleteEvent(_ context.Context, _, eventID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WriteCalls++
	if c.WriteErr != nil {
		return c.WriteErr
	}
	delete(c.events, eventID)
	return nil
}

func (c *Calendar) Watch(_ context.Context, calendarID, _, _ string, ttl time.Duration) (calendar.Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	c.seq++
	ch := calendar.Channel{
		ID:         fmt.Sprintf("channel-%d", c.seq),
		ResourceID: "resource-" + calendarID,
		CalendarID: calendarID,
		Expiration: now().Add(ttl),
	}
	c.channels = append(c.channels, ch)
	return ch, nil
}

func (c *Calendar) StopChannel(_ context.Context, ch calendar.Channel) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = append(c.stopped, ch.ID)
	return nil
}

func fromDraft(id, calendarID string, d calendar.Draft) calendar.Event {
	return calendar.Event{
		ID:         id,
		CalendarID: calendarID,
		Summary:    d.Summary,
		Start:      d.Start,
		End:        d.End,
		Status:     calendar.EventConfirmed,
		BookingID:  d.BookingID,
		Revision:   d.Revision,
	}
}
