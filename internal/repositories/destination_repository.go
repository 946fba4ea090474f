package repositories

import (
	"context"

	"wanderlust/internal/infra"
	"wanderlust/internal/models/domain_models"
)

type DestinationRepository interface {
	ListDestinations(ctx context.Context) ([]domain_models.Destination, error)
	ListFeaturedDestinations(ctx context.Context) ([]domain_models.Destination, error)
	GetDestinationByID(ctx context.Context, id string) (*domain_models.Destination, error)
}

type destinationRepository struct {
	store *infra.Store
}

func NewDestinationRepository(store *infra.Store) DestinationRepository {
	return &destinationRepository{store: store}
}

func (r *destinationRepository) ListDestinations(_ context.Context) ([]domain_models.Destination, error) {
	return r.store.Destinations.List(), nil
}

func (r *destinationRepository) ListFeaturedDestinations(_ context.Context) ([]domain_models.Destination, error) {
	return r.store.Destinations.Filter(func(d domain_models.Destination) bool {
		return d.Featured
	}), nil
}

// ────────────────────────────────────────────────────────────────
// Lookups return a nil record and nil error when no row matches.
// ────────────────────────────────────────────────────────────────

func (r *destinationRepository) GetDestinationByID(_ context.Context, id string) (*domain_models.Destination, error) {
	d, ok := r.store.Destinations.Get(id)
	if !ok {
		return nil, nil
	}
	return &d, nil
}
