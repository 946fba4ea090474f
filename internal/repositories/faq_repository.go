package repositories

import (
	"context"

	"wanderlust/internal/infra"
	"wanderlust/internal/models/domain_models"
)

type FaqRepository interface {
	ListFaqs(ctx context.Context) ([]domain_models.Faq, error)
	ListFaqsByTour(ctx context.Context, tourID string) ([]domain_models.Faq, error)
}

type faqRepository struct {
	store *infra.Store
}

func NewFaqRepository(store *infra.Store) FaqRepository {
	return &faqRepository{store: store}
}

func (r *faqRepository) ListFaqs(_ context.Context) ([]domain_models.Faq, error) {
	return r.store.Faqs.List(), nil
}

// ListFaqsByTour returns tour-specific questions plus the general ones that
// apply to every tour page.
func (r *faqRepository) ListFaqsByTour(_ context.Context, tourID string) ([]domain_models.Faq, error) {
	return r.store.Faqs.Filter(func(f domain_models.Faq) bool {
		return f.TourID == tourID || f.Category == "general"
	}), nil
}
