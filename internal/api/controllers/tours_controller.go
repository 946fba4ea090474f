package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type ToursController struct {
	tourService services.TourServiceInterface
}

func NewToursController(tourService services.TourServiceInterface) *ToursController {
	return &ToursController{tourService: tourService}
}

func (t *ToursController) ListTours(c *gin.Context) {
	tours, err := t.tourService.ListTours(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tours, "Tours fetched successfully")
}

func (t *ToursController) ListFeaturedTours(c *gin.Context) {
	tours, err := t.tourService.ListFeaturedTours(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tours, "Featured tours fetched successfully")
}

func (t *ToursController) GetTourByID(c *gin.Context) {
	tourID := c.Param("id")
	if tourID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Tour ID is required")
		return
	}

	tour, err := t.tourService.GetTourByID(c.Request.Context(), tourID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tour, "Tour fetched successfully")
}

func (t *ToursController) GetTourItinerary(c *gin.Context) {
	tourID := c.Param("id")
	if tourID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Tour ID is required")
		return
	}

	itinerary, err := t.tourService.GetTourItinerary(c.Request.Context(), tourID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}
