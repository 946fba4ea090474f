package services

import (
	"context"

	"wanderlust/internal/models/domain_models"
	"wanderlust/internal/repositories"
)

type TestimonialServiceInterface interface {
	ListTestimonials(ctx context.Context) ([]domain_models.Testimonial, error)
	ListFeaturedTestimonials(ctx context.Context) ([]domain_models.Testimonial, error)
}

type TestimonialService struct {
	testimonialRepo repositories.TestimonialRepository
}

func NewTestimonialService(testimonialRepo repositories.TestimonialRepository) TestimonialServiceInterface {
	return &TestimonialService{testimonialRepo: testimonialRepo}
}

func (s *TestimonialService) ListTestimonials(ctx context.Context) ([]domain_models.Testimonial, error) {
	return s.testimonialRepo.ListTestimonials(ctx)
}

func (s *TestimonialService) ListFeaturedTestimonials(ctx context.Context) ([]domain_models.Testimonial, error) {
	return s.testimonialRepo.ListFeaturedTestimonials(ctx)
}
