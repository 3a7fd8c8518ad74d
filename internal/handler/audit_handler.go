package handler

import (
	"net/http"

	"payrates/internal/middleware"
	"payrates/internal/service"
	"payrates/pkg/pagination"
	"payrates/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuditHandler struct {
	auditService service.AuditService
	logger       *zap.Logger
}

func NewAuditHandler(auditService service.AuditService, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{auditService: auditService, logger: logger}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/v1/admin/audit-logs")
	group.Use(middleware.RequireRole("admin"))
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs lists rule generation history
// @Summary      Get audit logs
// @Description  Rule generation runs, newest first
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        action query     string  false  "Filter by action (GENERATE_PAY_RULES, REGENERATE_ALL_PAY_RULES)"
// @Param        page   query     int     false  "Page number (default 1)"
// @Param        limit  query     int     false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=[]service.AuditLogResponse,meta=pagination.Meta}
// @Router       /api/v1/admin/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	params := pagination.Parse(c)

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), params.Page, params.Limit, c.Query("action"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve audit logs")
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMeta(http.StatusOK, logs, params.NewMeta(total)))
}
