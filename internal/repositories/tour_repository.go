package repositories

import (
	"context"
	"sort"

	"wanderlust/internal/infra"
	"wanderlust/internal/models/domain_models"
)

type TourRepository interface {
	ListTours(ctx context.Context) ([]domain_models.Tour, error)
	ListFeaturedTours(ctx context.Context) ([]domain_models.Tour, error)
	ListToursByDestination(ctx context.Context, destinationID string) ([]domain_models.Tour, error)
	GetTourByID(ctx context.Context, id string) (*domain_models.Tour, error)
	ListItineraryByTour(ctx context.Context, tourID string) ([]domain_models.TourItinerary, error)
}

type tourRepository struct {
	store *infra.Store
}

func NewTourRepository(store *infra.Store) TourRepository {
	return &tourRepository{store: store}
}

func (r *tourRepository) ListTours(_ context.Context) ([]domain_models.Tour, error) {
	return r.store.Tours.List(), nil
}

func (r *tourRepository) ListFeaturedTours(_ context.Context) ([]domain_models.Tour, error) {
	return r.store.Tours.Filter(func(t domain_models.Tour) bool {
		return t.Featured
	}), nil
}

// ListToursByDestination follows a weak reference: an unknown destination id
// yields an empty result, not an error.
func (r *tourRepository) ListToursByDestination(_ context.Context, destinationID string) ([]domain_models.Tour, error) {
	return r.store.Tours.Filter(func(t domain_models.Tour) bool {
		return t.DestinationID == destinationID
	}), nil
}

func (r *tourRepository) GetTourByID(_ context.Context, id string) (*domain_models.Tour, error) {
	t, ok := r.store.Tours.Get(id)
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *tourRepository) ListItineraryByTour(_ context.Context, tourID string) ([]domain_models.TourItinerary, error) {
	days := r.store.Itineraries.Filter(func(i domain_models.TourItinerary) bool {
		return i.TourID == tourID
	})
	sort.Slice(days, func(a, b int) bool { return days[a].Day < days[b].Day })
	return days, nil
}
