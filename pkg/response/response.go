package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"aegis-srv/pkg/discord"
	pkgErrors "aegis-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response wrapping data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   messageSuccess,
		Data:      data,
	})
}

// Error writes err as an API error. HTTP errors keep their status; anything else is reported
// to Discord (when configured) and rendered as a 500.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var validationErrs validationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   "Invalid request",
			Errors:    []pkgErrors.ValidationError(validationErrs),
		})
		return
	}

	reportBug(c.Request.Context(), d, fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   messageInternalError,
	})
}

// PanicError renders a recovered panic as a 500 and reports it.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	reportBug(c.Request.Context(), d, fmt.Sprintf("PANIC %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   messageInternalError,
	})
}

// NewValidationError wraps field errors so Error renders them as a 400 with details.
func NewValidationError(errs ...pkgErrors.ValidationError) error {
	return validationErrors(errs)
}

type validationErrors []pkgErrors.ValidationError

func (v validationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	return v[0].Error()
}

func reportBug(ctx context.Context, d discord.IDiscord, msg string) {
	if d == nil {
		return
	}
	go func() {
		_ = d.ReportBug(context.WithoutCancel(ctx), msg)
	}()
}
