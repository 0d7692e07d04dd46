package api

import (
	"net/http"

	reqdto "booking-calendar-sync/internal/handler/dto/request"
	resdto "booking-calendar-sync/internal/handler/dto/response"
	"booking-calendar-sync/internal/handler/httperr"
	"booking-calendar-sync/internal/pkg/config"
	"booking-calendar-sync/internal/pkg/cookie"
	"booking-calendar-sync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	cookieCfg config.CookieConfig
	jwtCfg    config.JWTConfig
}

func NewAuthHandler(cmds commands.AuthCommands, cookieCfg config.CookieConfig, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{cmds: cmds, cookieCfg: cookieCfg, jwtCfg: jwtCfg}
}

// @Summary Admin login
// @Description Exchange the dashboard credentials for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.SetAdminSession(c, h.cookieCfg, result.AccessToken, h.jwtCfg.Duration)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Username:    result.Username,
		AccessToken: result.AccessToken,
	})
}

// @Summary Admin logout
// @Tags auth
// @Success 204
// @Router /api/admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAdminSession(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
