package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/models/domain_models"
	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type mockNewsletterRepo struct {
	subscribe        func(ctx context.Context, email string) (*domain_models.NewsletterSubscriber, error)
	countSubscribers func(ctx context.Context) (int, error)
}

func (m *mockNewsletterRepo) Subscribe(ctx context.Context, email string) (*domain_models.NewsletterSubscriber, error) {
	return m.subscribe(ctx, email)
}

func (m *mockNewsletterRepo) CountSubscribers(ctx context.Context) (int, error) {
	return m.countSubscribers(ctx)
}

var _ repositories.NewsletterRepository = (*mockNewsletterRepo)(nil)

func TestSubscribeNotifiesOnSuccess(t *testing.T) {
	repo := &mockNewsletterRepo{
		subscribe: func(_ context.Context, email string) (*domain_models.NewsletterSubscriber, error) {
			return &domain_models.NewsletterSubscriber{ID: "sub-1", Email: email, SubscribedAt: time.Now()}, nil
		},
	}
	notifier := &spyNotifier{}
	svc := services.NewNewsletterService(repo, notifier)

	sub, err := svc.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", sub.Email)
	assert.Equal(t, 1, notifier.subscriptions)
}

func TestSubscribeDuplicatePropagatesAndSkipsNotification(t *testing.T) {
	repo := &mockNewsletterRepo{
		subscribe: func(context.Context, string) (*domain_models.NewsletterSubscriber, error) {
			return nil, utils.ErrAlreadySubscribed
		},
	}
	notifier := &spyNotifier{}
	svc := services.NewNewsletterService(repo, notifier)

	sub, err := svc.Subscribe(context.Background(), "reader@example.com")
	assert.ErrorIs(t, err, utils.ErrAlreadySubscribed)
	assert.Nil(t, sub)
	assert.Zero(t, notifier.subscriptions)
}
