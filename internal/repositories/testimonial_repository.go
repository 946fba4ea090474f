package repositories

import (
	"context"

	"wanderlust/internal/infra"
	"wanderlust/internal/models/domain_models"
)

type TestimonialRepository interface {
	ListTestimonials(ctx context.Context) ([]domain_models.Testimonial, error)
	ListFeaturedTestimonials(ctx context.Context) ([]domain_models.Testimonial, error)
}

type testimonialRepository struct {
	store *infra.Store
}

func NewTestimonialRepository(store *infra.Store) TestimonialRepository {
	return &testimonialRepository{store: store}
}

func (r *testimonialRepository) ListTestimonials(_ context.Context) ([]domain_models.Testimonial, error) {
	return r.store.Testimonials.List(), nil
}

func (r *testimonialRepository) ListFeaturedTestimonials(_ context.Context) ([]domain_models.Testimonial, error) {
	return r.store.Testimonials.Filter(func(t domain_models.Testimonial) bool {
		return t.Featured
	}), nil
}
