package services

import (
	"context"

	"wanderlust/internal/models/domain_models"
	"wanderlust/internal/repositories"
)

type NewsletterServiceInterface interface {
	Subscribe(ctx context.Context, email string) (*domain_models.NewsletterSubscriber, error)
}

type NewsletterService struct {
	newsletterRepo repositories.NewsletterRepository
	notifier       Notifier
}

func NewNewsletterService(newsletterRepo repositories.NewsletterRepository, notifier Notifier) NewsletterServiceInterface {
	return &NewsletterService{
		newsletterRepo: newsletterRepo,
		notifier:       notifier,
	}
}

// Subscribe propagates the repository's duplicate rejection untouched; a
// repeated email is a business outcome for the caller, not a fault.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*domain_models.NewsletterSubscriber, error) {
	sub, err := s.newsletterRepo.Subscribe(ctx, email)
	if err != nil {
		return nil, err
	}

	s.notifier.NotifySubscription(sub)
	return sub, nil
}
