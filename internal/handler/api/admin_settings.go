package api

import (
	"net/http"
	"time"

	"booking-calendar-sync/internal/domain/settings"
	reqdto "booking-calendar-sync/internal/handler/dto/request"
	resdto "booking-calendar-sync/internal/handler/dto/response"
	"booking-calendar-sync/internal/handler/httperr"
	"booking-calendar-sync/internal/pkg/dates"
	"booking-calendar-sync/internal/usecase/commands"
	"booking-calendar-sync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the dashboard endpoints behind the admin session.
type AdminHandler struct {
	settingsCmds commands.SettingsCommands
	settingsQ    queries.SettingsQueries
	sync         commands.SyncCommands
	availability commands.AvailabilityCommands
}

func NewAdminHandler(
	settingsCmds commands.SettingsCommands,
	settingsQ queries.SettingsQueries,
	sync commands.SyncCommands,
	availability commands.AvailabilityCommands,
) *AdminHandler {
	return &AdminHandler{
		settingsCmds: settingsCmds,
		settingsQ:    settingsQ,
		sync:         sync,
		availability: availability,
	}
}

// @Summary Get settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SettingsResponse
// @Failure 401 {object} map[string]any
// @Router /api/admin/settings [get]
func (h *AdminHandler) GetSettings(c *gin.Context) {
	doc, err := h.settingsQ.GetSettings(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondSettings(c, doc)
}

// @Summary Update settings
// @Description Partial update; the current and next month are recalculated afterwards
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSettingsRequest true "Changed fields"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]any
// @Router /api/admin/settings [put]
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	doc, err := h.settingsCmds.UpdateSettings(c.Request.Context(), p)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondSettings(c, doc)
}

// @Summary Run sync now
// @Description Incremental calendar sync followed by recalculation of the current and next month
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StatusResponse
// @Failure 502 {object} httperr.Response
// @Router /api/admin/sync [post]
func (h *AdminHandler) Sync(c *gin.Context) {
	if err := h.sync.Tick(c.Request.Context()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusResponse{Status: "ok"})
}

// @Summary Recalculate a month
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param month query string true "YYYY-MM"
// @Success 200 {object} resdto.RecalculateResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/admin/availability/recalculate [post]
func (h *AdminHandler) Recalculate(c *gin.Context) {
	var q reqdto.RecalculateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	month, err := dates.ParseMonth(q.Month, time.UTC)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month", nil)
		return
	}
	// mid-month stays inside the same month in every business time zone
	result, err := h.availability.RecalculateMonth(c.Request.Context(), month.AddDate(0, 0, 14).Add(12*time.Hour))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecalculateResult(result))
}

func (h *AdminHandler) respondSettings(c *gin.Context, doc settings.Document) {
	res, err := resdto.FromSettingsDocument(doc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
