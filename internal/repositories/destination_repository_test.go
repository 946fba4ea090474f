package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/infra"
	"wanderlust/internal/repositories"
	"wanderlust/internal/seed"
)

// seededStore builds a fresh store carrying the full catalog. Each test gets
// its own copy so write tests cannot leak into each other.
func seededStore() *infra.Store {
	s := infra.NewStore()
	seed.Load(s)
	return s
}

func TestListDestinations(t *testing.T) {
	repo := repositories.NewDestinationRepository(seededStore())

	got, err := repo.ListDestinations(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 9)
	assert.Equal(t, "Bali", got[0].Name)
}

func TestListFeaturedDestinations(t *testing.T) {
	repo := repositories.NewDestinationRepository(seededStore())

	got, err := repo.ListFeaturedDestinations(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, d := range got {
		assert.True(t, d.Featured, "destination %s is not featured", d.ID)
	}
}

func TestGetDestinationByID(t *testing.T) {
	repo := repositories.NewDestinationRepository(seededStore())

	got, err := repo.GetDestinationByID(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Bali", got.Name)
}

func TestGetDestinationByIDMissing(t *testing.T) {
	repo := repositories.NewDestinationRepository(seededStore())

	got, err := repo.GetDestinationByID(context.Background(), "999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListDestinationsIsReadIdempotent(t *testing.T) {
	repo := repositories.NewDestinationRepository(seededStore())

	first, err := repo.ListDestinations(context.Background())
	require.NoError(t, err)
	second, err := repo.ListDestinations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
