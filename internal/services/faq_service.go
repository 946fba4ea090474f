package services

import (
	"context"

	"wanderlust/internal/models/domain_models"
	"wanderlust/internal/repositories"
)

type FaqServiceInterface interface {
	ListFaqs(ctx context.Context) ([]domain_models.Faq, error)
	ListFaqsByTour(ctx context.Context, tourID string) ([]domain_models.Faq, error)
}

type FaqService struct {
	faqRepo repositories.FaqRepository
}

func NewFaqService(faqRepo repositories.FaqRepository) FaqServiceInterface {
	return &FaqService{faqRepo: faqRepo}
}

func (s *FaqService) ListFaqs(ctx context.Context) ([]domain_models.Faq, error) {
	return s.faqRepo.ListFaqs(ctx)
}

func (s *FaqService) ListFaqsByTour(ctx context.Context, tourID string) ([]domain_models.Faq, error) {
	return s.faqRepo.ListFaqsByTour(ctx, tourID)
}
