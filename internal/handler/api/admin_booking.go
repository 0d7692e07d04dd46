package api

import (
	"net/http"

	reqdto "booking-calendar-sync/internal/handler/dto/request"
	resdto "booking-calendar-sync/internal/handler/dto/response"
	"booking-calendar-sync/internal/handler/httperr"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const adminTokenHeader = "X-Admin-Token"

var errAdminTokenMissing = errs.Class("admin token required", errs.ErrForbidden)

// AdminBookingHandler serves the business side of a booking. Requests carry the
// booking's admin token from the notification link, not a dashboard session.
type AdminBookingHandler struct {
	cmds commands.BookingCommands
}

func NewAdminBookingHandler(cmds commands.BookingCommands) *AdminBookingHandler {
	return &AdminBookingHandler{cmds: cmds}
}

// @Summary Accept or reject a pending booking
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param X-Admin-Token header string true "Booking admin token"
// @Param request body reqdto.DecisionRequest true "accept or reject"
// @Success 200 {object} resdto.StatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/bookings/{id}/action [post]
func (h *AdminBookingHandler) HandleAction(c *gin.Context) {
	id, token, ok := bookingTarget(c)
	if !ok {
		return
	}
	var req reqdto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.cmds.HandleAdminAction(c.Request.Context(), id, token, req.ToDecision()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusResponse{Status: "ok"})
}

// @Summary Accept the client's reschedule request
// @Tags admin
// @Produce json
// @Param id path string true "Booking ID"
// @Param X-Admin-Token header string true "Booking admin token"
// @Success 200 {object} resdto.StatusResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/bookings/{id}/reschedule/accept [post]
func (h *AdminBookingHandler) AcceptReschedule(c *gin.Context) {
	id, token, ok := bookingTarget(c)
	if !ok {
		return
	}
	if err := h.cmds.AcceptReschedule(c.Request.Context(), id, token); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusResponse{Status: "confirmed"})
}

// @Summary Propose a new time
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param X-Admin-Token header string true "Booking admin token"
// @Param request body reqdto.TimeRequest true "Proposed time"
// @Success 200 {object} resdto.StatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/bookings/{id}/proposal [post]
func (h *AdminBookingHandler) ProposeNewTime(c *gin.Context) {
	id, token, ok := bookingTarget(c)
	if !ok {
		return
	}
	var req reqdto.TimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.cmds.ProposeNewTime(c.Request.Context(), id, token, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusResponse{Status: "admin_proposal"})
}

// @Summary Revoke a proposal
// @Tags admin
// @Produce json
// @Param id path string true "Booking ID"
// @Param X-Admin-Token header string true "Booking admin token"
// @Success 200 {object} resdto.StatusResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/bookings/{id}/proposal [delete]
func (h *AdminBookingHandler) RevokeProposal(c *gin.Context) {
	id, token, ok := bookingTarget(c)
	if !ok {
		return
	}
	if err := h.cmds.RevokeProposal(c.Request.Context(), id, token); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusResponse{Status: "confirmed"})
}

// bookingTarget reads the booking id and admin token, aborting the request when
// either is unusable. The token may also come as ?token= for mail links.
func bookingTarget(c *gin.Context) (uuid.UUID, string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return uuid.Nil, "", false
	}
	token := c.GetHeader(adminTokenHeader)
	if token == "" {
		token = c.Query("token")
	}
	if token == "" {
		httperr.Abort(c, errAdminTokenMissing)
		return uuid.Nil, "", false
	}
	return id, token, true
}
