package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/HAMZAJAWED12/voiceiq-AI/errors"
)

// RespondWithError inspects err: an *apperrors.AppError carries its own
// status and structured body; anything else becomes a generic 500.
func RespondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, appErr.ToResponse())
		return
	}
	c.JSON(http.StatusInternalServerError, apperrors.Internal(err).ToResponse())
}

// RespondOK sends a 200 response with the payload as-is.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
