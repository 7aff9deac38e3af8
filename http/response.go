package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"acquisition-calc/repository"
	"acquisition-calc/service"
)

type apiResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    any            `json:"data,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func Ok(c *gin.Context, data any, meta map[string]any) {
	c.JSON(http.StatusOK, apiResponse{
		Code:    0,
		Message: "ok",
		Data:    data,
		Meta:    meta,
	})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, apiResponse{
		Code:    0,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, status int, message string, meta map[string]any) {
	c.AbortWithStatusJSON(status, apiResponse{
		Code:    status,
		Message: message,
		Meta:    meta,
	})
}

// writeServiceError maps service and store errors onto status codes. Only
// unexpected failures are logged.
func writeServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var verrs service.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		Error(c, http.StatusUnprocessableEntity, "validation failed", map[string]any{"errors": verrs})
	case errors.Is(err, repository.ErrNotFound):
		Error(c, http.StatusNotFound, "scenario not found", nil)
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		Error(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
