package services

import (
	"context"

	"wanderlust/internal/models/domain_models"
	"wanderlust/internal/repositories"
	"wanderlust/pkg/utils"
)

type TourServiceInterface interface {
	ListTours(ctx context.Context) ([]domain_models.Tour, error)
	ListFeaturedTours(ctx context.Context) ([]domain_models.Tour, error)
	ListToursByDestination(ctx context.Context, destinationID string) ([]domain_models.Tour, error)
	GetTourByID(ctx context.Context, id string) (*domain_models.Tour, error)
	GetTourItinerary(ctx context.Context, tourID string) ([]domain_models.TourItinerary, error)
}

type TourService struct {
	tourRepo repositories.TourRepository
}

func NewTourService(tourRepo repositories.TourRepository) TourServiceInterface {
	return &TourService{tourRepo: tourRepo}
}

func (s *TourService) ListTours(ctx context.Context) ([]domain_models.Tour, error) {
	return s.tourRepo.ListTours(ctx)
}

func (s *TourService) ListFeaturedTours(ctx context.Context) ([]domain_models.Tour, error) {
	return s.tourRepo.ListFeaturedTours(ctx)
}

func (s *TourService) ListToursByDestination(ctx context.Context, destinationID string) ([]domain_models.Tour, error) {
	return s.tourRepo.ListToursByDestination(ctx, destinationID)
}

func (s *TourService) GetTourByID(ctx context.Context, id string) (*domain_models.Tour, error) {
	tour, err := s.tourRepo.GetTourByID(ctx, id)
	if err != nil {
		return nil, utils.ErrStoreFault
	}
	if tour == nil {
		return nil, utils.ErrTourNotFound
	}
	return tour, nil
}

// GetTourItinerary serves days sorted ascending. An id with no itinerary (or
// no tour at all) is a normal empty result; the seed set only programs some
// tours day by day.
func (s *TourService) GetTourItinerary(ctx context.Context, tourID string) ([]domain_models.TourItinerary, error) {
	return s.tourRepo.ListItineraryByTour(ctx, tourID)
}
