package calendar

import (
	"strconv"
	"time"

	"booking-calendar-sync/internal/domain/calendar"
)

const (
	propBookingID = "booking_id"
	propRevision  = "revision"
	dateLayout    = "2006-01-02"
)

type eventTime struct {
	Date     string `json:"date,omitempty"`
	DateTime string `json:"dateTime,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

type extendedProperties struct {
	Private map[string]string `json:"private,omitempty"`
}

type eventResource struct {
	ID                 string              `json:"id,omitempty"`
	Status             string              `json:"status,omitempty"`
	Summary            string              `json:"summary,omitempty"`
	Description        string              `json:"description,omitempty"`
	Start              *eventTime          `json:"start,omitempty"`
	End                *eventTime          `json:"end,omitempty"`
	Transparency       string              `json:"transparency,omitempty"`
	Updated            string              `json:"updated,omitempty"`
	ExtendedProperties *extendedProperties `json:"extendedProperties,omitempty"`
}

type eventList struct {
	Items         []eventResource `json:"items"`
	NextPageToken string          `json:"nextPageToken"`
	TimeZone      string          `json:"timeZone"`
}

type channelRequest struct {
	ID      string            `json:"id"`
	Type    string            `json:"type"`
	Address string            `json:"address"`
	Token   string            `json:"token,omitempty"`
	Params  map[string]string `json:"params,omitempty"`
}

type channelResource struct {
	ID         string `json:"id"`
	ResourceID string `json:"resourceId"`
	Expiration string `json:"expiration,omitempty"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func toDomainEvent(r eventResource, calendarID string, loc *time.Location) (calendar.Event, bool) {
	e := calendar.Event{
		ID:          r.ID,
		CalendarID:  calendarID,
		Summary:     r.Summary,
		Status:      calendar.EventStatus(r.Status),
		Transparent: r.Transparency == "transparent",
	}
	if e.Status == "" {
		e.Status = calendar.EventConfirmed
	}
	if t, err := time.Parse(time.RFC3339, r.Updated); err == nil {
		e.Updated = t
	}
	if r.ExtendedProperties != nil {
		e.BookingID = r.ExtendedProperties.Private[propBookingID]
		if rev, err := strconv.ParseInt(r.ExtendedProperties.Private[propRevision], 10, 64); err == nil {
			e.Revision = rev
		}
	}

	// cancelled instances come back without times
	if r.Start == nil || r.End == nil {
		return e, e.IsCancelled()
	}
	start, allDay, ok := parseEventTime(*r.Start, loc)
	if !ok {
		return e, false
	}
	end, _, ok := parseEventTime(*r.End, loc)
	if !ok {
		return e, false
	}
	e.Start, e.End, e.AllDay = start, end, allDay
	return e, true
}

func parseEventTime(t eventTime, loc *time.Location) (time.Time, bool, bool) {
	if t.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, t.DateTime)
		return parsed, false, err == nil
	}
	if t.Date != "" {
		parsed, err := time.ParseInLocation(dateLayout, t.Date, loc)
		return parsed, true, err == nil
	}
	return time.Time{}, false, false
}

func fromDraft(d calendar.Draft) eventResource {
	return eventResource{
		Summary:     d.Summary,
		Description: d.Description,
		Start:       &eventTime{DateTime: d.Start.UTC().Format(time.RFC3339)},
		End:         &eventTime{DateTime: d.End.UTC().Format(time.RFC3339)},
		ExtendedProperties: &extendedProperties{Private: map[string]string{
			propBookingID: d.BookingID,
			propRevision:  strconv.FormatInt(d.Revision, 10),
		}},
	}
}

func toDomainChannel(r channelResource, calendarID string) calendar.Channel {
	ch := calendar.Channel{ID: r.ID, ResourceID: r.ResourceID, CalendarID: calendarID}
	if ms, err := strconv.ParseInt(r.Expiration, 10, 64); err == nil {
		ch.Expiration = time.UnixMilli(ms).UTC()
	}
	return ch
}
