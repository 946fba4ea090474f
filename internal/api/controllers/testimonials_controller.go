package controllers

import (
	"github.com/gin-gonic/gin"

	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type TestimonialsController struct {
	testimonialService services.TestimonialServiceInterface
}

func NewTestimonialsController(testimonialService services.TestimonialServiceInterface) *TestimonialsController {
	return &TestimonialsController{testimonialService: testimonialService}
}

func (t *TestimonialsController) ListTestimonials(c *gin.Context) {
	testimonials, err := t.testimonialService.ListTestimonials(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, testimonials, "Testimonials fetched successfully")
}

func (t *TestimonialsController) ListFeaturedTestimonials(c *gin.Context) {
	testimonials, err := t.testimonialService.ListFeaturedTestimonials(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, testimonials, "Featured testimonials fetched successfully")
}
