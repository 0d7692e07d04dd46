// Package calendar talks to the Google Calendar v3 REST API.
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"booking-calendar-sync/internal/domain/calendar"
	"booking-calendar-sync/internal/pkg/config"
	"booking-calendar-sync/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

const (
	// a full page of events with descriptions stays well below maxBodySize
	pageSize    = 250
	maxPages    = 200
	maxBodySize = 4 << 20
)

var (
	ErrRequestFailed = errs.Class("calendar request failed", errs.ErrExternalService)
	ErrUnauthorized  = errs.Class("calendar rejected credentials", errs.ErrExternalService)
)

type Client struct {
	http       *http.Client
	baseURL    string
	token      string
	maxRetries uint64
	loc        *time.Location
}

// NewClient builds a client; loc places all-day events when the calendar does not
// report its own time zone.
func NewClient(cfg config.CalendarConfig, loc *time.Location) *Client {
	return &Client{
		http:       &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		token:      cfg.AccessToken,
		maxRetries: cfg.MaxRetries,
		loc:        loc,
	}
}

func (c *Client) ListEvents(ctx context.Context, calendarIDs []string, from, to time.Time) ([]calendar.Event, error) {
	var out []calendar.Event
	for _, id := range calendarIDs {
		q := url.Values{}
		q.Set("timeMin", from.UTC().Format(time.RFC3339))
		q.Set("timeMax", to.UTC().Format(time.RFC3339))
		q.Set("singleEvents", "true")
		q.Set("orderBy", "startTime")
		events, err := c.listPages(ctx, id, q)
		if err != nil {
			return nil, err
		}
		out = append(out, events...)
	}
	return out, nil
}

func (c *Client) ListChangedEvents(ctx context.Context, calendarID string, updatedMin time.Time) ([]calendar.Event, error) {
	q := url.Values{}
	q.Set("updatedMin", updatedMin.UTC().Format(time.RFC3339))
	q.Set("showDeleted", "true")
	q.Set("singleEvents", "true")
	return c.listPages(ctx, calendarID, q)
}

func (c *Client) CreateEvent(ctx context.Context, calendarID string, draft calendar.Draft) (string, error) {
	var created eventResource
	if err := c.do(ctx, http.MethodPost, eventsPath(calendarID), nil, fromDraft(draft), &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (c *Client) UpdateEvent(ctx context.Context, calendarID, eventID string, draft calendar.Draft) error {
	return c.do(ctx, http.MethodPatch, eventsPath(calendarID)+"/"+url.PathEscape(eventID), nil, fromDraft(draft), nil)
}

// DeleteEvent treats an already deleted event as success.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	err := c.do(ctx, http.MethodDelete, eventsPath(calendarID)+"/"+url.PathEscape(eventID), nil, nil, nil)
	if errs.Is(err, calendar.ErrEventGone) {
		return nil
	}
	return err
}

func (c *Client) Watch(ctx context.Context, calendarID, address, channelToken string, ttl time.Duration) (calendar.Channel, error) {
	req := channelRequest{
		ID:      uuid.NewString(),
		Type:    "web_hook",
		Address: address,
		Token:   channelToken,
		Params:  map[string]string{"ttl": strconv.FormatInt(int64(ttl/time.Second), 10)},
	}
	var res channelResource
	if err := c.do(ctx, http.MethodPost, eventsPath(calendarID)+"/watch", nil, req, &res); err != nil {
		return calendar.Channel{}, err
	}
	return toDomainChannel(res, calendarID), nil
}

func (c *Client) StopChannel(ctx context.Context, ch calendar.Channel) error {
	err := c.do(ctx, http.MethodPost, "/channels/stop", nil, channelResource{ID: ch.ID, ResourceID: ch.ResourceID}, nil)
	if errs.Is(err, calendar.ErrEventGone) {
		return nil
	}
	return err
}

func (c *Client) listPages(ctx context.Context, calendarID string, q url.Values) ([]calendar.Event, error) {
	q.Set("maxResults", strconv.Itoa(pageSize))

	var out []calendar.Event
	for page := 0; page < maxPages; page++ {
		var list eventList
		if err := c.do(ctx, http.MethodGet, eventsPath(calendarID), q, nil, &list); err != nil {
			return nil, err
		}
		loc := c.loc
		if list.TimeZone != "" {
			if l, err := time.LoadLocation(list.TimeZone); err == nil {
				loc = l
			}
		}
		for _, item := range list.Items {
			e, ok := toDomainEvent(item, calendarID, loc)
			if !ok {
				slog.WarnContext(ctx, "skipping malformed calendar event", "calendar_id", calendarID, "event_id", item.ID)
				continue
			}
			out = append(out, e)
		}
		if list.NextPageToken == "" {
			return out, nil
		}
		q.Set("pageToken", list.NextPageToken)
	}
	slog.WarnContext(ctx, "calendar listing truncated", "calendar_id", calendarID, "pages", maxPages)
	return out, nil
}

// do sends one request with the retry budget: network errors, 429 and 5xx are
// retried with exponential backoff, every other failure is returned at once.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dest any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return errs.Wrap(err, "encode calendar request")
		}
	}
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(errs.Wrap(err, "build calendar request"))
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return errs.Mark(errs.Wrapf(err, "%s %s", method, path), ErrRequestFailed)
		}
		defer resp.Body.Close()
		raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
		if err != nil {
			return errs.Mark(errs.Wrap(err, "read calendar response"), ErrRequestFailed)
		}
		if len(raw) > maxBodySize {
			return backoff.Permanent(errs.Mark(errs.Wrapf(errs.New("calendar response too large"), "%s %s: over %d bytes", method, path, maxBodySize), ErrRequestFailed))
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if dest == nil || len(raw) == 0 {
				return nil
			}
			if err := json.Unmarshal(raw, dest); err != nil {
				return backoff.Permanent(errs.Mark(errs.Wrap(err, "decode calendar response"), ErrRequestFailed))
			}
			return nil
		}

		statusErr := errs.Wrapf(errs.New(apiMessage(raw)), "%s %s: status %d", method, path, resp.StatusCode)
		switch {
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return errs.Mark(statusErr, ErrRequestFailed)
		case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
			return backoff.Permanent(errs.Mark(statusErr, calendar.ErrEventGone))
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return backoff.Permanent(errs.Mark(statusErr, ErrUnauthorized))
		default:
			return backoff.Permanent(errs.Mark(statusErr, ErrRequestFailed))
		}
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(newBackOff(), c.maxRetries), ctx)
	return backoff.RetryNotify(attempt, policy, func(err error, wait time.Duration) {
		slog.WarnContext(ctx, "retrying calendar request", "method", method, "path", path, "wait_ms", wait.Milliseconds(), "error", err.Error())
	})
}

func newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	return b
}

func eventsPath(calendarID string) string {
	return fmt.Sprintf("/calendars/%s/events", url.PathEscape(calendarID))
}

func apiMessage(raw []byte) string {
	var e apiError
	if err := json.Unmarshal(raw, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	if len(raw) > 200 {
		raw = raw[:200]
	}
	if len(raw) == 0 {
		return "empty response"
	}
	return string(raw)
}
