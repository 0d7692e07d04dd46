package httperr

import (
	"log/slog"
	"net/http"

	"booking-calendar-sync/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps an error class to its status. Client-facing classes expose the error
// message; anything unclassified becomes a generic 500.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 5))
	}
	AbortWithError(c, status, err, msg, nil)
}

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, rootMessage(err)
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, rootMessage(err)
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, rootMessage(err)
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, rootMessage(err)
	case errs.Is(err, errs.ErrRateLimited):
		return http.StatusTooManyRequests, "Too many requests"
	case errs.Is(err, errs.ErrExternalService):
		return http.StatusBadGateway, "Calendar service unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func rootMessage(err error) string {
	return errs.Message(err)
}
