package repositories_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/repositories"
	"wanderlust/pkg/utils"
)

func TestSubscribe(t *testing.T) {
	repo := repositories.NewNewsletterRepository(seededStore())

	sub, err := repo.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "reader@example.com", sub.Email)
	assert.False(t, sub.SubscribedAt.IsZero())
}

func TestSubscribeDuplicateRejected(t *testing.T) {
	repo := repositories.NewNewsletterRepository(seededStore())

	_, err := repo.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)

	sub, err := repo.Subscribe(context.Background(), "reader@example.com")
	assert.ErrorIs(t, err, utils.ErrAlreadySubscribed)
	assert.Nil(t, sub)

	count, err := repo.CountSubscribers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// Addresses are compared byte for byte; a case variant counts as new.
func TestSubscribeIsCaseSensitive(t *testing.T) {
	repo := repositories.NewNewsletterRepository(seededStore())

	_, err := repo.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
	_, err = repo.Subscribe(context.Background(), "Reader@example.com")
	require.NoError(t, err)

	count, err := repo.CountSubscribers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSubscribeConcurrentSameEmailSingleWinner(t *testing.T) {
	repo := repositories.NewNewsletterRepository(seededStore())

	const workers = 40
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Subscribe(context.Background(), "popular@example.com"); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	count, err := repo.CountSubscribers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
