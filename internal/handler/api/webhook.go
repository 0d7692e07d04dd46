package api

import (
	"log/slog"
	"net/http"

	"booking-calendar-sync/internal/handler/httperr"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	headerChannelID     = "X-Goog-Channel-ID"
	headerResourceID    = "X-Goog-Resource-ID"
	headerResourceState = "X-Goog-Resource-State"
	headerChannelToken  = "X-Goog-Channel-Token"
)

type WebhookHandler struct {
	sync commands.SyncCommands
}

func NewWebhookHandler(sync commands.SyncCommands) *WebhookHandler {
	return &WebhookHandler{sync: sync}
}

// @Summary Calendar push notification
// @Description Receives change notifications for the watched calendar. Everything is carried in headers.
// @Tags webhooks
// @Param X-Goog-Channel-ID header string true "Channel ID"
// @Param X-Goog-Resource-ID header string false "Resource ID"
// @Param X-Goog-Resource-State header string true "sync or exists"
// @Param X-Goog-Channel-Token header string false "Channel token"
// @Success 200
// @Failure 403 {object} httperr.Response
// @Router /webhooks/calendar [post]
func (h *WebhookHandler) Calendar(c *gin.Context) {
	n := commands.WebhookNotification{
		ChannelID:     c.GetHeader(headerChannelID),
		ResourceID:    c.GetHeader(headerResourceID),
		ResourceState: c.GetHeader(headerResourceState),
		ChannelToken:  c.GetHeader(headerChannelToken),
	}

	err := h.sync.HandleWebhook(c.Request.Context(), n)
	if errs.Is(err, errs.ErrForbidden) {
		httperr.Abort(c, err)
		return
	}
	if err != nil {
		// the periodic tick retries; a non-2xx would only make the provider back off
		slog.WarnContext(c.Request.Context(), "webhook sync failed", "channel_id", n.ChannelID, "error", err.Error())
	}
	c.Status(http.StatusOK)
}
