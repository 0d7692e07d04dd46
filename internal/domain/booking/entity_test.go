//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booking-calendar-sync/internal/domain/booking"
	"booking-calendar-sync/internal/domain/slot"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, time.Hour, actual.Interval().Duration(), "interval covers duration plus preparation")
		assert.Equal(t, int64(1), actual.Revision())
		assert.True(t, actual.NeedsMirror())
		assert.False(t, actual.HasExternalEvent())
		_, hasProposal := actual.Proposed()
		assert.False(t, hasProposal)
	})

	runCases(t, []testCase{
		{name: "zero duration", mutate: func(b *builder.BookingBuilder) { b.Duration = 0 }, errIs: booking.ErrInvalidDuration},
		{name: "start in the past", mutate: func(b *builder.BookingBuilder) { b.Start = b.Now.Add(-time.Minute) }, errIs: booking.ErrStartInPast},
		{name: "missing name", mutate: func(b *builder.BookingBuilder) { b.Name = " " }, errIs: booking.ErrInvalidClientName},
		{name: "bad email", mutate: func(b *builder.BookingBuilder) { b.Email = "not-an-email" }, errIs: booking.ErrInvalidClientEmail},
		{name: "identical tokens", mutate: func(b *builder.BookingBuilder) { b.AdminToken = b.ClientToken }, errIs: booking.ErrInvalidTokens},
		{name: "starting right now is allowed", mutate: func(b *builder.BookingBuilder) { b.Start = b.Now }},
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewBookingBuilder().With(tc.mutate).BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTransitions(t *testing.T) {
	now := builder.DefaultNow
	later := slot.Interval{
		Start: time.Date(2026, time.October, 21, 15, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.October, 21, 16, 0, 0, 0, time.UTC),
	}

	type transition struct {
		name string
		run  func(b *booking.Booking) error
	}
	transitions := map[string]transition{
		"accept":             {"accept", func(b *booking.Booking) error { return b.Accept(now) }},
		"reject":             {"reject", func(b *booking.Booking) error { return b.Reject(now) }},
		"request_reschedule": {"request_reschedule", func(b *booking.Booking) error { return b.RequestReschedule(later, now) }},
		"accept_reschedule":  {"accept_reschedule", func(b *booking.Booking) error { return b.AcceptReschedule(now) }},
		"propose":            {"propose", func(b *booking.Booking) error { return b.ProposeTime(later, now) }},
		"revoke":             {"revoke", func(b *booking.Booking) error { return b.RevokeProposal(now) }},
		"accept_proposal":    {"accept_proposal", func(b *booking.Booking) error { return b.AcceptProposal(now) }},
		"decline_proposal":   {"decline_proposal", func(b *booking.Booking) error { return b.DeclineProposal(now) }},
		"cancel":             {"cancel", func(b *booking.Booking) error { return b.Cancel(now) }},
	}

	// from status -> transition -> resulting status; absent entries must fail.
	allowed := map[booking.Status]map[string]booking.Status{
		booking.StatusPending: {
			"accept":             booking.StatusConfirmed,
			"reject":             booking.StatusRejected,
			"request_reschedule": booking.StatusRescheduleRequested,
			"decline_proposal":   booking.StatusPending,
			"cancel":             booking.StatusCancelled,
		},
		booking.StatusConfirmed: {
			"request_reschedule": booking.StatusRescheduleRequested,
			"propose":            booking.StatusAdminProposal,
			"decline_proposal":   booking.StatusPending,
			"cancel":             booking.StatusCancelled,
		},
		booking.StatusRescheduleRequested: {
			"request_reschedule": booking.StatusRescheduleRequested,
			"accept_reschedule":  booking.StatusConfirmed,
			"decline_proposal":   booking.StatusPending,
			"cancel":             booking.StatusCancelled,
		},
		booking.StatusAdminProposal: {
			"propose":          booking.StatusAdminProposal,
			"revoke":           booking.StatusConfirmed,
			"accept_proposal":  booking.StatusConfirmed,
			"decline_proposal": booking.StatusPending,
			"cancel":           booking.StatusCancelled,
		},
		booking.StatusCancelled: {},
		booking.StatusRejected:  {},
	}

	for from, outcomes := range allowed {
		for key, tr := range transitions {
			t.Run(string(from)+"/"+tr.name, func(t *testing.T) {
				b := builder.NewBookingBuilder().BuildInStatus(from)
				err := tr.run(b)

				want, ok := outcomes[key]
				if !ok {
					require.Error(t, err)
					assert.ErrorIs(t, err, booking.ErrInvalidTransition)
					assert.Equal(t, from, b.Status(), "status must not change on a rejected transition")
					return
				}
				require.NoError(t, err)
				assert.Equal(t, want, b.Status())
			})
		}
	}
}

func TestSwapMovesProposalIntoInterval(t *testing.T) {
	b := builder.NewBookingBuilder().BuildInStatus(booking.StatusAdminProposal)
	proposed, ok := b.Proposed()
	require.True(t, ok)
	rev := b.Revision()

	require.NoError(t, b.AcceptProposal(builder.DefaultNow))

	assert.Equal(t, proposed, b.Interval())
	_, still := b.Proposed()
	assert.False(t, still)
	assert.Equal(t, rev+1, b.Revision(), "locally originated time change bumps the revision")
}

func TestDeclineAlwaysClearsProposal(t *testing.T) {
	for _, from := range []booking.Status{booking.StatusAdminProposal, booking.StatusRescheduleRequested, booking.StatusConfirmed, booking.StatusPending} {
		t.Run(string(from), func(t *testing.T) {
			b := builder.NewBookingBuilder().BuildInStatus(from)
			require.NoError(t, b.DeclineProposal(builder.DefaultNow))

			assert.Equal(t, booking.StatusPending, b.Status())
			_, ok := b.Proposed()
			assert.False(t, ok)
			snap := b.Snapshot()
			assert.Nil(t, snap.ProposedStart)
			assert.Nil(t, snap.ProposedEnd)
		})
	}
}

func TestExternalChangesDoNotBumpRevision(t *testing.T) {
	b := builder.NewBookingBuilder().BuildInStatus(booking.StatusConfirmed)
	b.MarkMirrored("evt-1", b.Revision())
	rev := b.Revision()

	moved := b.Start().Add(time.Hour)
	assert.True(t, b.ApplyExternalTimes(moved, moved.Add(time.Hour), builder.DefaultNow))
	assert.False(t, b.ApplyExternalTimes(moved, moved.Add(time.Hour), builder.DefaultNow), "same times are not a change")
	assert.True(t, b.ApplyExternalCancellation(builder.DefaultNow))
	assert.False(t, b.ApplyExternalCancellation(builder.DefaultNow), "already cancelled")

	assert.Equal(t, rev, b.Revision())
	assert.False(t, b.NeedsMirror())
	assert.Equal(t, booking.StatusCancelled, b.Status())
}

func TestLocalCancelBumpsRevision(t *testing.T) {
	b := builder.NewBookingBuilder().BuildInStatus(booking.StatusConfirmed)
	b.MarkMirrored("evt-1", b.Revision())

	require.NoError(t, b.Cancel(builder.DefaultNow))

	assert.True(t, b.NeedsMirror())
	assert.False(t, b.IsActive())
}

func TestVerifyAdminToken(t *testing.T) {
	b := builder.NewBookingBuilder().MustBuild()

	assert.NoError(t, b.VerifyAdminToken(b.AdminToken()))
	err := b.VerifyAdminToken(b.ClientToken())
	assert.ErrorIs(t, err, booking.ErrAdminTokenMismatch)
	assert.True(t, errs.Is(err, errs.ErrForbidden))
}

func TestSnapshotRoundTrip(t *testing.T) {
	b := builder.NewBookingBuilder().BuildInStatus(booking.StatusAdminProposal)

	again := booking.Reconstruct(b.Snapshot())

	assert.Equal(t, b.Snapshot(), again.Snapshot())
}
