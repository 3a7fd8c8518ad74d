package handler

import (
	"net/http"

	"payrates/internal/service"
	"payrates/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PayRateHandler struct {
	ruleEngine service.RuleEngineService
	logger     *zap.Logger
}

func NewPayRateHandler(ruleEngine service.RuleEngineService, logger *zap.Logger) *PayRateHandler {
	return &PayRateHandler{ruleEngine: ruleEngine, logger: logger}
}

func (h *PayRateHandler) RegisterRoutes(router *gin.RouterGroup) {
	payRates := router.Group("/api/v1/pay-rates")
	{
		payRates.POST("/calculate", h.CalculatePayRates)
		payRates.POST("/validate", h.ValidateConditions)
	}
}

// CalculatePayRates godoc
// @Summary      Calculate pay rates
// @Description  Base pay, penalty rates and allowances for an award classification at a date
// @Tags         pay-rates
// @Accept       json
// @Produce      json
// @Param        request  body      service.PayRateCalculationRequest  true  "Calculation request"
// @Success      200      {object}  response.Response{data=service.PayRateCalculationResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/v1/pay-rates/calculate [post]
func (h *PayRateHandler) CalculatePayRates(c *gin.Context) {
	var req service.PayRateCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.ruleEngine.CalculatePayRates(c.Request.Context(), req)
	if err != nil {
		if service.IsInvalidInput(err) {
			h.logger.Warn("pay rate calculation rejected", zap.Int("award_id", req.AwardID), zap.Error(err))
		}
		respondError(c, h.logger, err, "An error occurred while calculating pay rates")
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// ValidateConditions godoc
// @Summary      Validate a calculation request
// @Description  Reports every problem with the request without calculating
// @Tags         pay-rates
// @Accept       json
// @Produce      json
// @Param        request  body      service.PayRateCalculationRequest  true  "Calculation request"
// @Success      200      {object}  response.Response{data=service.ValidationResult}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/v1/pay-rates/validate [post]
func (h *PayRateHandler) ValidateConditions(c *gin.Context) {
	var req service.PayRateCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.ruleEngine.ValidateConditions(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err, "An error occurred while validating conditions")
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}
