package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type FaqsController struct {
	faqService services.FaqServiceInterface
}

func NewFaqsController(faqService services.FaqServiceInterface) *FaqsController {
	return &FaqsController{faqService: faqService}
}

func (f *FaqsController) ListFaqs(c *gin.Context) {
	faqs, err := f.faqService.ListFaqs(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, faqs, "FAQs fetched successfully")
}

func (f *FaqsController) ListFaqsByTour(c *gin.Context) {
	tourID := c.Param("tourId")
	if tourID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Tour ID is required")
		return
	}

	faqs, err := f.faqService.ListFaqsByTour(c.Request.Context(), tourID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, faqs, "FAQs fetched successfully")
}
