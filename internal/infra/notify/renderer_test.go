//go:build unit

package notify_test

import (
	"testing"
	"time"

	"booking-calendar-sync/internal/infra/notify"
	"booking-calendar-sync/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer(t *testing.T) {
	r, err := notify.NewRenderer(time.UTC)
	require.NoError(t, err)

	start := time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC)
	proposed := start.Add(2 * time.Hour)

	tests := []struct {
		name         string
		n            shared.Notification
		wantSubject  string
		bodyContains []string
	}{
		{
			name:         "client confirmation in english",
			n:            shared.Notification{Kind: shared.NotifyBookingCreated, Audience: shared.AudienceClient, Language: "en", ClientName: "Ada", Start: start, ClientToken: "tok-c"},
			wantSubject:  "We received your booking request",
			bodyContains: []string{"Ada", "Tue 20 Oct 2026 10:00", "tok-c"},
		},
		{
			name:         "admin variant",
			n:            shared.Notification{Kind: shared.NotifyBookingCreated, Audience: shared.AudienceAdmin, Language: "en", ClientName: "Ada", ClientEmail: "ada@example.com", Start: start, AdminToken: "tok-a"},
			wantSubject:  "New booking request from Ada",
			bodyContains: []string{"ada@example.com", "tok-a"},
		},
		{
			name:         "german",
			n:            shared.Notification{Kind: shared.NotifyReminderDue, Language: "DE", ClientName: "Max", Start: start},
			wantSubject:  "Erinnerung an Ihren Termin",
			bodyContains: []string{"Max"},
		},
		{
			name:         "unknown language falls back to english",
			n:            shared.Notification{Kind: shared.NotifyProposalSent, Language: "fr", ClientName: "Ada", Start: start, ProposedStart: &proposed},
			wantSubject:  "A new time was proposed for your booking",
			bodyContains: []string{"Tue 20 Oct 2026 12:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := r.Render(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubject, msg.Subject)
			for _, s := range tt.bodyContains {
				assert.Contains(t, msg.Body, s)
			}
			assert.Equal(t, tt.n.Kind, msg.Kind)
		})
	}
}

func TestRenderer_UnknownKind(t *testing.T) {
	r, err := notify.NewRenderer(time.UTC)
	require.NoError(t, err)

	_, err = r.Render(shared.Notification{Kind: "nope"})
	assert.Error(t, err)
}

func TestRenderer_EveryKindHasTemplate(t *testing.T) {
	r, err := notify.NewRenderer(time.UTC)
	require.NoError(t, err)

	kinds := []shared.NotificationKind{
		shared.NotifyBookingCreated, shared.NotifyBookingAccepted, shared.NotifyBookingRejected,
		shared.NotifyRescheduleRequested, shared.NotifyRescheduleAccepted, shared.NotifyProposalSent,
		shared.NotifyProposalAccepted, shared.NotifyProposalDeclined, shared.NotifyProposalRevoked,
		shared.NotifyCancelledByClient, shared.NotifyCancelledBySync, shared.NotifyRescheduledBySync,
		shared.NotifyReminderDue,
	}
	for _, k := range kinds {
		_, err := r.Render(shared.Notification{Kind: k, Language: "en", Start: time.Now()})
		assert.NoError(t, err, k)
	}
}
