package repositories

import (
	"context"

	"wanderlust/internal/infra"
	"wanderlust/internal/models/domain_models"
)

type GuideRepository interface {
	ListGuides(ctx context.Context) ([]domain_models.TourGuide, error)
	GetGuideByID(ctx context.Context, id string) (*domain_models.TourGuide, error)
}

type guideRepository struct {
	store *infra.Store
}

func NewGuideRepository(store *infra.Store) GuideRepository {
	return &guideRepository{store: store}
}

func (r *guideRepository) ListGuides(_ context.Context) ([]domain_models.TourGuide, error) {
	return r.store.Guides.List(), nil
}

func (r *guideRepository) GetGuideByID(_ context.Context, id string) (*domain_models.TourGuide, error) {
	g, ok := r.store.Guides.Get(id)
	if !ok {
		return nil, nil
	}
	return &g, nil
}
