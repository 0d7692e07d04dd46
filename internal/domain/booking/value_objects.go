package booking

import (
	"net/mail"
	"strings"
	"time"

	"booking-calendar-sync/internal/domain/slot"
)

const (
	MaxNameLength = 200
	MaxNoteLength = 2000
)

type Client struct {
	Name  string
	Email string
	Phone string
	Note  string
}

func NewClient(name, email, phone, note string) (Client, error) {
	c := Client{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
		Note:  strings.TrimSpace(note),
	}
	if c.Name == "" || len(c.Name) > MaxNameLength {
		return Client{}, ErrInvalidClientName
	}
	if _, err := mail.ParseAddress(c.Email); err != nil || !strings.Contains(c.Email, "@") {
		return Client{}, ErrInvalidClientEmail
	}
	if len(c.Note) > MaxNoteLength {
		return Client{}, ErrNoteTooLong
	}
	return c, nil
}

// Tokens are the two single-purpose secrets handed out at creation.
type Tokens struct {
	Client string
	Admin  string
}

func (t Tokens) validate() error {
	if t.Client == "" || t.Admin == "" || t.Client == t.Admin {
		return ErrInvalidTokens
	}
	return nil
}

// NewInterval builds the interval a booking occupies: start plus duration and preparation.
func NewInterval(start time.Time, span time.Duration) (slot.Interval, error) {
	if span <= 0 {
		return slot.Interval{}, ErrInvalidDuration
	}
	return slot.Interval{Start: start, End: start.Add(span)}, nil
}
