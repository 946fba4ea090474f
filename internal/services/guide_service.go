package services

import (
	"context"

	"wanderlust/internal/models/domain_models"
	"wanderlust/internal/repositories"
	"wanderlust/pkg/utils"
)

type GuideServiceInterface interface {
	ListGuides(ctx context.Context) ([]domain_models.TourGuide, error)
	GetGuideByID(ctx context.Context, id string) (*domain_models.TourGuide, error)
}

type GuideService struct {
	guideRepo repositories.GuideRepository
}

func NewGuideService(guideRepo repositories.GuideRepository) GuideServiceInterface {
	return &GuideService{guideRepo: guideRepo}
}

func (s *GuideService) ListGuides(ctx context.Context) ([]domain_models.TourGuide, error) {
	return s.guideRepo.ListGuides(ctx)
}

func (s *GuideService) GetGuideByID(ctx context.Context, id string) (*domain_models.TourGuide, error) {
	guide, err := s.guideRepo.GetGuideByID(ctx, id)
	if err != nil {
		return nil, utils.ErrStoreFault
	}
	if guide == nil {
		return nil, utils.ErrGuideNotFound
	}
	return guide, nil
}
