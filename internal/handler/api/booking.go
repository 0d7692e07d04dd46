package api

import (
	"net/http"

	reqdto "booking-calendar-sync/internal/handler/dto/request"
	resdto "booking-calendar-sync/internal/handler/dto/response"
	"booking-calendar-sync/internal/handler/httperr"
	"booking-calendar-sync/internal/usecase/commands"
	"booking-calendar-sync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the client side of a booking, addressed by the client token.
type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Request a booking for a service at a local date and time
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param token path string true "Client token"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{token} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, err := h.q.GetByClientToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Param token path string true "Client token"
// @Success 200 {object} resdto.StatusResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{token}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.cmds.Cancel(c.Request.Context(), c.Param("token")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusResponse{Status: "cancelled"})
}

// @Summary Request reschedule
// @Description Ask the business to move the booking; the current time stays reserved until accepted
// @Tags bookings
// @Accept json
// @Produce json
// @Param token path string true "Client token"
// @Param request body reqdto.TimeRequest true "Wished time"
// @Success 200 {object} resdto.StatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{token}/reschedule [post]
func (h *BookingHandler) RequestReschedule(c *gin.Context) {
	var req reqdto.TimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.cmds.RequestReschedule(c.Request.Context(), c.Param("token"), req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusResponse{Status: "reschedule_requested"})
}

// @Summary Respond to proposal
// @Tags bookings
// @Accept json
// @Produce json
// @Param token path string true "Client token"
// @Param request body reqdto.DecisionRequest true "accept or decline"
// @Success 200 {object} resdto.StatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{token}/proposal [post]
func (h *BookingHandler) RespondToProposal(c *gin.Context) {
	var req reqdto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.cmds.RespondToProposal(c.Request.Context(), c.Param("token"), req.ToDecision()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusResponse{Status: "ok"})
}
