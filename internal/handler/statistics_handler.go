package handler

import (
	"net/http"

	"payrates/internal/middleware"
	"payrates/internal/service"
	"payrates/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
	logger            *zap.Logger
}

func NewStatisticsHandler(statisticsService service.StatisticsService, logger *zap.Logger) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService, logger: logger}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	statsGroup := router.Group("/api/v1/admin/rules/statistics")
	{
		statsGroup.GET("", middleware.RequireRole("admin"), h.GetStatistics)
	}
}

// @Summary      Get computed rule statistics
// @Description  Per award rule count and hourly rate range among rules effective at a date
// @Tags         rules
// @Produce      json
// @Param        as_of query string false "Effective at (YYYY-MM-DD, default today)"
// @Success      200 {object} response.Response{data=model.RuleStatisticsResponse}
// @Failure      400 {object} response.Response "Invalid date format"
// @Failure      401 {object} response.Response "Unauthorized"
// @Failure      500 {object} response.Response "Internal server error"
// @Security     BearerAuth
// @Router       /api/v1/admin/rules/statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	asOf, ok := optionalDateQuery(c, "as_of")
	if !ok {
		return
	}

	stats, err := h.statisticsService.GetRuleStatistics(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve rule statistics")
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}
