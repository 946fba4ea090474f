package services

import (
	"context"

	"wanderlust/internal/models/domain_models"
	"wanderlust/internal/repositories"
	"wanderlust/pkg/utils"
)

type DestinationServiceInterface interface {
	ListDestinations(ctx context.Context) ([]domain_models.Destination, error)
	ListFeaturedDestinations(ctx context.Context) ([]domain_models.Destination, error)
	GetDestinationByID(ctx context.Context, id string) (*domain_models.Destination, error)
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
}

func NewDestinationService(destinationRepo repositories.DestinationRepository) DestinationServiceInterface {
	return &DestinationService{destinationRepo: destinationRepo}
}

func (s *DestinationService) ListDestinations(ctx context.Context) ([]domain_models.Destination, error) {
	return s.destinationRepo.ListDestinations(ctx)
}

func (s *DestinationService) ListFeaturedDestinations(ctx context.Context) ([]domain_models.Destination, error) {
	return s.destinationRepo.ListFeaturedDestinations(ctx)
}

func (s *DestinationService) GetDestinationByID(ctx context.Context, id string) (*domain_models.Destination, error) {
	destination, err := s.destinationRepo.GetDestinationByID(ctx, id)
	if err != nil {
		return nil, utils.ErrStoreFault
	}
	if destination == nil {
		return nil, utils.ErrDestinationNotFound
	}
	return destination, nil
}
