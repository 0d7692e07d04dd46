package api

import (
	"net/http"

	reqdto "booking-calendar-sync/internal/handler/dto/request"
	resdto "booking-calendar-sync/internal/handler/dto/response"
	"booking-calendar-sync/internal/handler/httperr"
	"booking-calendar-sync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
	services     queries.ServiceQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries, services queries.ServiceQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability, services: services}
}

// @Summary List services
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /api/services [get]
func (h *AvailabilityHandler) ListServices(c *gin.Context) {
	views, err := h.services.ListServices(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Get availability
// @Description Free start times per day for a single date or an inclusive range
// @Tags availability
// @Produce json
// @Param service_id query string true "Service ID"
// @Param date query string false "YYYY-MM-DD"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	serviceID, from, to, err := q.Range()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.availability.GetAvailability(c.Request.Context(), serviceID, from, to)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Get monthly availability
// @Description Day status per date from the availability index
// @Tags availability
// @Produce json
// @Param service_id query string true "Service ID"
// @Param month query string true "YYYY-MM"
// @Success 200 {object} resdto.MonthlyAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/availability/monthly [get]
func (h *AvailabilityHandler) GetMonthlyAvailability(c *gin.Context) {
	var q reqdto.MonthlyAvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	serviceID, err := uuid.Parse(q.ServiceID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service_id", nil)
		return
	}
	view, err := h.availability.GetMonthlyAvailability(c.Request.Context(), serviceID, q.Month)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMonthlyAvailabilityView(view))
}
