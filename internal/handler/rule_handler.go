package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"payrates/internal/middleware"
	"payrates/internal/report"
	"payrates/internal/service"
	"payrates/pkg/pagination"
	"payrates/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RuleHandler struct {
	ruleBuilder service.RuleBuilderService
	payRules    service.PayRuleService
	generatedBy string
	logger      *zap.Logger
}

// NewRuleHandler wires the admin rule endpoints. generatedBy stamps runs
// whose token carries no subject.
func NewRuleHandler(ruleBuilder service.RuleBuilderService, payRules service.PayRuleService, generatedBy string, logger *zap.Logger) *RuleHandler {
	return &RuleHandler{ruleBuilder: ruleBuilder, payRules: payRules, generatedBy: generatedBy, logger: logger}
}

func (h *RuleHandler) RegisterRoutes(router *gin.RouterGroup) {
	rules := router.Group("/api/v1/admin/rules")
	rules.Use(middleware.RequireRole("admin"))
	{
		rules.GET("", h.ListRules)
		rules.GET("/export", h.ExportRules)
		rules.POST("/generate/:awardId", h.GenerateRules)
		rules.POST("/regenerate-all", h.RegenerateAllRules)
	}
}

// GenerateRules godoc
// @Summary      Generate computed pay rules for an award
// @Description  Replaces the award's computed rules for the effective date (default today)
// @Tags         rules
// @Security     BearerAuth
// @Produce      json
// @Param        awardId         path      int     true   "Award ID"
// @Param        effective_from  query     string  false  "Effective date (YYYY-MM-DD)"
// @Success      200  {object}  response.Response{data=service.RuleGenerationResponse}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/v1/admin/rules/generate/{awardId} [post]
func (h *RuleHandler) GenerateRules(c *gin.Context) {
	awardID, err := strconv.Atoi(c.Param("awardId"))
	if err != nil || awardID < 1 {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid award ID"))
		return
	}
	effectiveFrom, ok := optionalDateQuery(c, "effective_from")
	if !ok {
		return
	}

	res, err := h.ruleBuilder.GeneratePayRulesForAward(c.Request.Context(), awardID, effectiveFrom, middleware.Actor(c, h.generatedBy))
	if err != nil {
		respondError(c, h.logger, err, "An error occurred while generating pay rules")
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// RegenerateAllRules godoc
// @Summary      Regenerate computed pay rules for all active awards
// @Description  Runs generation award by award; one award failing does not stop the rest
// @Tags         rules
// @Security     BearerAuth
// @Produce      json
// @Param        effective_from  query     string  false  "Effective date (YYYY-MM-DD)"
// @Success      200  {object}  response.Response{data=service.RegenerationResponse}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/v1/admin/rules/regenerate-all [post]
func (h *RuleHandler) RegenerateAllRules(c *gin.Context) {
	effectiveFrom, ok := optionalDateQuery(c, "effective_from")
	if !ok {
		return
	}

	res, err := h.ruleBuilder.RegenerateAllRules(c.Request.Context(), effectiveFrom, middleware.Actor(c, h.generatedBy))
	if err != nil {
		respondError(c, h.logger, err, "An error occurred while regenerating pay rules")
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// ListRules godoc
// @Summary      List computed pay rules
// @Tags         rules
// @Security     BearerAuth
// @Produce      json
// @Param        award_id            query  int     false  "Award ID"
// @Param        employment_type_id  query  int     false  "Employment type ID"
// @Param        classification_id   query  int     false  "Classification ID"
// @Param        as_of               query  string  false  "Effective at (YYYY-MM-DD, default today)"
// @Param        page                query  int     false  "Page number (default 1)"
// @Param        limit               query  int     false  "Items per page (default 20)"
// @Success      200  {object}  response.Response{data=[]service.ComputedRuleResponse,meta=pagination.Meta}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/v1/admin/rules [get]
func (h *RuleHandler) ListRules(c *gin.Context) {
	query, ok := h.ruleQuery(c)
	if !ok {
		return
	}
	params := pagination.Parse(c)

	rules, total, err := h.payRules.ListRules(c.Request.Context(), query, params.Page, params.Limit)
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve pay rules")
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMeta(http.StatusOK, rules, params.NewMeta(total)))
}

// ExportRules godoc
// @Summary      Export computed pay rules as XLSX
// @Tags         rules
// @Security     BearerAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        award_id  query  int     false  "Award ID"
// @Param        as_of     query  string  false  "Effective at (YYYY-MM-DD, default today)"
// @Success      200  {file}    file
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/v1/admin/rules/export [get]
func (h *RuleHandler) ExportRules(c *gin.Context) {
	query, ok := h.ruleQuery(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	count, err := h.payRules.ExportRules(c.Request.Context(), query, &buf)
	if err != nil {
		respondError(c, h.logger, err, "Failed to export pay rules")
		return
	}

	h.logger.Info("pay rules exported", zap.Int("rows", count), zap.Int("award_id", query.AwardID))
	c.Header("Content-Disposition", `attachment; filename="pay-rules.xlsx"`)
	c.Data(http.StatusOK, report.XLSXContentType, buf.Bytes())
}

func (h *RuleHandler) ruleQuery(c *gin.Context) (service.RuleQuery, bool) {
	var query service.RuleQuery
	var ok bool

	if query.AwardID, ok = optionalIntQuery(c, "award_id"); !ok {
		return query, false
	}
	if query.EmploymentTypeID, ok = optionalIntQuery(c, "employment_type_id"); !ok {
		return query, false
	}
	if query.ClassificationID, ok = optionalIntQuery(c, "classification_id"); !ok {
		return query, false
	}
	if query.AsOf, ok = optionalDateQuery(c, "as_of"); !ok {
		return query, false
	}
	return query, true
}
