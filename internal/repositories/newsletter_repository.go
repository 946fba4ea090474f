package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wanderlust/internal/infra"
	"wanderlust/internal/models/domain_models"
	"wanderlust/pkg/utils"
)

type NewsletterRepository interface {
	Subscribe(ctx context.Context, email string) (*domain_models.NewsletterSubscriber, error)
	CountSubscribers(ctx context.Context) (int, error)
}

type newsletterRepository struct {
	store *infra.Store
}

func NewNewsletterRepository(store *infra.Store) NewsletterRepository {
	return &newsletterRepository{store: store}
}

// Subscribe inserts the email unless it is already present. The existence scan
// and the insert run inside one critical section, so concurrent submissions of
// the same email produce exactly one subscriber.
func (r *newsletterRepository) Subscribe(_ context.Context, email string) (*domain_models.NewsletterSubscriber, error) {
	sub := domain_models.NewsletterSubscriber{
		ID:           uuid.NewString(),
		Email:        email,
		SubscribedAt: time.Now(),
	}

	inserted := r.store.Subscribers.PutIfAbsent(sub.ID, sub, func(existing domain_models.NewsletterSubscriber) bool {
		return existing.Email == email
	})
	if !inserted {
		return nil, utils.ErrAlreadySubscribed
	}
	return &sub, nil
}

func (r *newsletterRepository) CountSubscribers(_ context.Context) (int, error) {
	return r.store.Subscribers.Len(), nil
}
