package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type DestinationsController struct {
	destinationService services.DestinationServiceInterface
	tourService        services.TourServiceInterface
}

func NewDestinationsController(
	destinationService services.DestinationServiceInterface,
	tourService services.TourServiceInterface) *DestinationsController {

	return &DestinationsController{
		destinationService: destinationService,
		tourService:        tourService,
	}
}

func (d *DestinationsController) ListDestinations(c *gin.Context) {
	destinations, err := d.destinationService.ListDestinations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

func (d *DestinationsController) ListFeaturedDestinations(c *gin.Context) {
	destinations, err := d.destinationService.ListFeaturedDestinations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Featured destinations fetched successfully")
}

func (d *DestinationsController) GetDestinationByID(c *gin.Context) {
	destinationID := c.Param("id")
	if destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	destination, err := d.destinationService.GetDestinationByID(c.Request.Context(), destinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination fetched successfully")
}

// GetDestinationTours serves the tours referencing a destination; unknown ids
// produce an empty list.
func (d *DestinationsController) GetDestinationTours(c *gin.Context) {
	destinationID := c.Param("id")
	if destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	tours, err := d.tourService.ListToursByDestination(c.Request.Context(), destinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tours, "Tours fetched successfully")
}
