//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"booking-calendar-sync/internal/domain/booking"
	"booking-calendar-sync/internal/handler/api"
	reqdto "booking-calendar-sync/internal/handler/dto/request"
	resdto "booking-calendar-sync/internal/handler/dto/response"
	"booking-calendar-sync/internal/usecase/commands"
	"booking-calendar-sync/internal/usecase/queries"
	"booking-calendar-sync/tests/common/httptest"
	"booking-calendar-sync/tests/common/testutil"
	commandsmock "booking-calendar-sync/tests/mock/commands"
	queriesmock "booking-calendar-sync/tests/mock/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/bookings", h.Create)
	s.router.GET("/api/bookings/:token", h.Get)
	s.router.POST("/api/bookings/:token/cancel", h.Cancel)
	s.router.POST("/api/bookings/:token/reschedule", h.RequestReschedule)
	s.router.POST("/api/bookings/:token/proposal", h.RespondToProposal)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func validCreateRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceID: uuid.New(),
		Date:      "2026-10-20",
		Time:      "10:00",
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Language:  "en",
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"
	reqBody := validCreateRequest()
	start := time.Date(2026, time.October, 20, 10, 0, 0, 0, time.UTC)
	result := &commands.CreateBookingResult{
		BookingID:   uuid.New(),
		ClientToken: "client-token",
		Status:      booking.StatusPending,
		Start:       start,
		End:         start.Add(time.Hour),
		Mirrored:    true,
	}

	s.Run("success: returns 201 with the client token", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToInput()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.BookingID.String(), response.BookingID)
		s.Equal("client-token", response.ClientToken)
		s.Equal("pending", response.Status)
		s.True(response.Mirrored)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing service_id", mutate: testutil.Field("service_id", nil)},
			{name: "malformed date", mutate: testutil.Field("date", "20/10/2026")},
			{name: "malformed time", mutate: testutil.Field("time", "10am")},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "name too long", mutate: testutil.Field("name", strings.Repeat("a", 201))},
			{name: "language not a two letter code", mutate: testutil.Field("language", "eng")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name         string
			err          error
			expectCode   int
			expectInBody string
		}{
			{name: "slot taken", err: commands.ErrSlotTaken, expectCode: http.StatusConflict, expectInBody: "overlaps"},
			{name: "unknown service", err: commands.ErrServiceNotFound, expectCode: http.StatusNotFound, expectInBody: "service not found"},
			{name: "start in the past", err: booking.ErrStartInPast, expectCode: http.StatusBadRequest},
			{name: "database failure", err: errors.New("connection reset"), expectCode: http.StatusInternalServerError, expectInBody: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := &queries.BookingView{
		ID:          uuid.New(),
		ServiceName: "Consultation",
		Status:      "confirmed",
		ClientName:  "Ada Lovelace",
	}

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetByClientToken(gomock.Any(), "tok-1").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/tok-1", nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
		s.Equal("Consultation", response.ServiceName)
	})

	s.Run("error: 404 for an unknown token", func() {
		s.mockQueries.EXPECT().GetByClientToken(gomock.Any(), "nope").Return(nil, queries.ErrBookingViewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), "tok-1").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/tok-1/cancel", nil, "")

		var response resdto.StatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 400 when the booking is already final", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), "tok-1").Return(booking.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/tok-1/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "transition not allowed")
	})
}

func (s *BookingHandlerTestSuite) TestRequestReschedule() {
	url := "/api/bookings/tok-1/reschedule"

	s.Run("success: passes the wished time through", func() {
		body := reqdto.TimeRequest{Date: "2026-10-21", Time: "14:00"}
		s.mockCommands.EXPECT().RequestReschedule(gomock.Any(), "tok-1", commands.TimeInput{Date: "2026-10-21", Time: "14:00"}).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.StatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("reschedule_requested", response.Status)
	})

	s.Run("error: 400 on a malformed time", func() {
		body := map[string]any{"date": "2026-10-21", "time": "25:00"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 when the wished time is taken", func() {
		body := reqdto.TimeRequest{Date: "2026-10-21", Time: "14:00"}
		s.mockCommands.EXPECT().RequestReschedule(gomock.Any(), "tok-1", gomock.Any()).Return(commands.ErrSlotTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "overlaps")
	})
}

func (s *BookingHandlerTestSuite) TestRespondToProposal() {
	url := "/api/bookings/tok-1/proposal"

	s.Run("success", func() {
		s.mockCommands.EXPECT().RespondToProposal(gomock.Any(), "tok-1", booking.DecisionAccept).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.DecisionRequest{Decision: "accept"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on an unknown decision", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "maybe"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
