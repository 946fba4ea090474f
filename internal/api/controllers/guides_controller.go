package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type GuidesController struct {
	guideService services.GuideServiceInterface
}

func NewGuidesController(guideService services.GuideServiceInterface) *GuidesController {
	return &GuidesController{guideService: guideService}
}

func (g *GuidesController) ListGuides(c *gin.Context) {
	guides, err := g.guideService.ListGuides(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guides, "Guides fetched successfully")
}

func (g *GuidesController) GetGuideByID(c *gin.Context) {
	guideID := c.Param("id")
	if guideID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Guide ID is required")
		return
	}

	guide, err := g.guideService.GetGuideByID(c.Request.Context(), guideID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guide, "Guide fetched successfully")
}
