package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/models/domain_models"
	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type mockDestinationRepo struct {
	list         func(ctx context.Context) ([]domain_models.Destination, error)
	listFeatured func(ctx context.Context) ([]domain_models.Destination, error)
	getByID      func(ctx context.Context, id string) (*domain_models.Destination, error)
}

func (m *mockDestinationRepo) ListDestinations(ctx context.Context) ([]domain_models.Destination, error) {
	return m.list(ctx)
}

func (m *mockDestinationRepo) ListFeaturedDestinations(ctx context.Context) ([]domain_models.Destination, error) {
	return m.listFeatured(ctx)
}

func (m *mockDestinationRepo) GetDestinationByID(ctx context.Context, id string) (*domain_models.Destination, error) {
	return m.getByID(ctx, id)
}

var _ repositories.DestinationRepository = (*mockDestinationRepo)(nil)

func TestGetDestinationByIDFound(t *testing.T) {
	repo := &mockDestinationRepo{
		getByID: func(_ context.Context, id string) (*domain_models.Destination, error) {
			return &domain_models.Destination{ID: id, Name: "Bali"}, nil
		},
	}
	svc := services.NewDestinationService(repo)

	got, err := svc.GetDestinationByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Bali", got.Name)
}

// A nil record from the repository becomes the not-found sentinel.
func TestGetDestinationByIDMissingMapsToSentinel(t *testing.T) {
	repo := &mockDestinationRepo{
		getByID: func(context.Context, string) (*domain_models.Destination, error) {
			return nil, nil
		},
	}
	svc := services.NewDestinationService(repo)

	got, err := svc.GetDestinationByID(context.Background(), "999")
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
	assert.Nil(t, got)
}

func TestGetDestinationByIDRepoFailureMapsToStoreFault(t *testing.T) {
	repo := &mockDestinationRepo{
		getByID: func(context.Context, string) (*domain_models.Destination, error) {
			return nil, errors.New("disk on fire")
		},
	}
	svc := services.NewDestinationService(repo)

	_, err := svc.GetDestinationByID(context.Background(), "1")
	assert.ErrorIs(t, err, utils.ErrStoreFault)
}
