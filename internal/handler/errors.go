package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"payrates/internal/service"
	"payrates/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses.
// Only invalid-input messages reach the client; anything else is logged and replaced with fallback.
func respondError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	var invalid *service.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, invalid.Message))
	case errors.Is(err, service.ErrGenerationInProgress):
		c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
	default:
		_ = c.Error(err)
		logger.Error(fallback, zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, fallback))
	}
}

// optionalDateQuery reads a YYYY-MM-DD query parameter; absent yields nil.
func optionalDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := service.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid "+name+": "+err.Error()))
		return nil, false
	}
	return &t, true
}

// optionalIntQuery reads a positive integer query parameter; absent yields 0.
func optionalIntQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid "+name+": must be a positive integer"))
		return 0, false
	}
	return v, true
}
