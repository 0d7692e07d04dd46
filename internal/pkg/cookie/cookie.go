package cookie

import (
	"net/http"
	"time"

	"booking-calendar-sync/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AdminSessionCookieName = "admin_session"

func SetAdminSession(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(AdminSessionCookieName, token, int(expiry.Seconds()), "/api/admin", cfg.Domain, cfg.Secure, true)
}

func ClearAdminSession(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(AdminSessionCookieName, "", -1, "/api/admin", cfg.Domain, cfg.Secure, true)
}

func GetAdminSession(c *gin.Context) string {
	token, _ := c.Cookie(AdminSessionCookieName)
	return token
}

func sameSite(v string) http.SameSite {
	switch v {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
