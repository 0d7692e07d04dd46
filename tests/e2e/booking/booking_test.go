//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"booking-calendar-sync/internal/handler/dto/request"
	"booking-calendar-sync/internal/handler/dto/response"
	"booking-calendar-sync/tests/common/dbtest"
	"booking-calendar-sync/tests/common/httptest"
	"booking-calendar-sync/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type bookingSuite struct {
	e2e.SharedSuite
	day string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.day = nextTuesday(time.Now().UTC().AddDate(0, 0, 7)).Format("2006-01-02")
}

func nextTuesday(from time.Time) time.Time {
	for from.Weekday() != time.Tuesday {
		from = from.AddDate(0, 0, 1)
	}
	return from
}

func (s *bookingSuite) createRequest(clock string) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		ServiceID: dbtest.DefaultServiceID,
		Date:      s.day,
		Time:      clock,
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Language:  "en",
	}
}

func (s *bookingSuite) create(t *testing.T, clock string) response.CreateBookingResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.createRequest(clock), "")
	var res response.CreateBookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

func (s *bookingSuite) TestLifecycle() {
	s.Run("create, read and cancel", func() {
		t := s.T()
		created := s.create(t, "10:00")
		assert.Equal(t, "pending", created.Status)
		assert.False(t, created.Mirrored, "no calendar is configured")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings/"+created.ClientToken, nil, "")
		var view response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		assert.Equal(t, "pending", view.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings/"+created.ClientToken+"/cancel", nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
		assert.Equal(t, "cancelled", dbtest.BookingStatus(t, s.DB, created.ClientToken))
	})

	s.Run("overlapping request is rejected, adjacent is accepted", func() {
		t := s.T()
		s.create(t, "10:00")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.createRequest("10:30"), "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "overlaps")

		s.create(t, "11:00")
	})

	s.Run("unknown token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/does-not-exist", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}

func (s *bookingSuite) TestConcurrentRequestsForOneSlot() {
	s.Run("exactly one wins", func() {
		t := s.T()
		const workers = 10

		var wg sync.WaitGroup
		codes := make(chan int, workers)
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := s.createRequest("14:00")
				req.Email = fmt.Sprintf("client%d@example.com", i)
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", req, "")
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		counts := map[int]int{}
		for c := range codes {
			counts[c]++
		}
		assert.Equal(t, 1, counts[http.StatusCreated])
		assert.Equal(t, workers-1, counts[http.StatusConflict])
		assert.Equal(t, 1, dbtest.CountActiveBookings(t, s.DB))
	})
}

func (s *bookingSuite) TestAvailability() {
	s.Run("a new booking invalidates the cached slots", func() {
		t := s.T()
		url := fmt.Sprintf("/api/availability?service_id=%s&date=%s", dbtest.DefaultServiceID, s.day)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		var before response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &before)
		require.Len(t, before.Days, 1)
		assert.Equal(t, []string{"09:00", "14:00"}, clockTimes(before.Days[0].Slots))

		s.create(t, "09:00")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		var after response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &after)
		assert.Equal(t, []string{"10:00", "14:00"}, clockTimes(after.Days[0].Slots))
	})
}

func clockTimes(slots []time.Time) []string {
	out := make([]string, 0, len(slots))
	for _, t := range slots {
		out = append(out, t.UTC().Format("15:04"))
	}
	return out
}
