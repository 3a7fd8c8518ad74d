package handler

import (
	"net/http"
	"strconv"

	"payrates/internal/service"
	"payrates/pkg/pagination"
	"payrates/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AwardHandler struct {
	awardService service.AwardService
	logger       *zap.Logger
}

func NewAwardHandler(awardService service.AwardService, logger *zap.Logger) *AwardHandler {
	return &AwardHandler{awardService: awardService, logger: logger}
}

func (h *AwardHandler) RegisterRoutes(router *gin.RouterGroup) {
	awards := router.Group("/api/v1/awards")
	{
		awards.GET("", h.ListAwards)
		awards.GET("/:id", h.GetAward)
	}
}

// ListAwards godoc
// @Summary      List awards
// @Tags         awards
// @Produce      json
// @Param        include_inactive  query  bool  false  "Include inactive awards"
// @Param        page              query  int   false  "Page number (default 1)"
// @Param        limit             query  int   false  "Items per page (default 20)"
// @Success      200  {object}  response.Response{data=[]service.AwardResponse,meta=pagination.Meta}
// @Failure      500  {object}  response.Response
// @Router       /api/v1/awards [get]
func (h *AwardHandler) ListAwards(c *gin.Context) {
	params := pagination.Parse(c)
	activeOnly := c.Query("include_inactive") != "true"

	awards, total, err := h.awardService.ListAwards(c.Request.Context(), params.Page, params.Limit, activeOnly)
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve awards")
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMeta(http.StatusOK, awards, params.NewMeta(total)))
}

// GetAward godoc
// @Summary      Get an award
// @Tags         awards
// @Produce      json
// @Param        id   path      int  true  "Award ID"
// @Success      200  {object}  response.Response{data=service.AwardResponse}
// @Failure      400  {object}  response.Response
// @Router       /api/v1/awards/{id} [get]
func (h *AwardHandler) GetAward(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid award ID"))
		return
	}

	award, err := h.awardService.GetAward(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve award")
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, award))
}
