package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrolly/enrolly/internal/app/models/dto"
	"github.com/enrolly/enrolly/internal/pkg/apperrors"
	"github.com/enrolly/enrolly/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Every failure
// answers with a JSON body carrying a human-readable message; unexpected
// errors are logged and reported as a bare 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error"))
	}
}
