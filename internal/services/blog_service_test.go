package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/models/domain_models"
	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type mockBlogRepo struct {
	listPosts     func(ctx context.Context) ([]domain_models.BlogPost, error)
	listFeatured  func(ctx context.Context) ([]domain_models.BlogPost, error)
	getPostBySlug func(ctx context.Context, slug string) (*domain_models.BlogPost, error)
}

func (m *mockBlogRepo) ListPosts(ctx context.Context) ([]domain_models.BlogPost, error) {
	return m.listPosts(ctx)
}

func (m *mockBlogRepo) ListFeaturedPosts(ctx context.Context) ([]domain_models.BlogPost, error) {
	return m.listFeatured(ctx)
}

func (m *mockBlogRepo) GetPostBySlug(ctx context.Context, slug string) (*domain_models.BlogPost, error) {
	return m.getPostBySlug(ctx, slug)
}

var _ repositories.BlogRepository = (*mockBlogRepo)(nil)

func TestGetPostBySlugFound(t *testing.T) {
	repo := &mockBlogRepo{
		getPostBySlug: func(_ context.Context, slug string) (*domain_models.BlogPost, error) {
			return &domain_models.BlogPost{ID: "1", Slug: slug}, nil
		},
	}
	svc := services.NewBlogService(repo)

	got, err := svc.GetPostBySlug(context.Background(), "hidden-gems-bali")
	require.NoError(t, err)
	assert.Equal(t, "hidden-gems-bali", got.Slug)
}

func TestGetPostBySlugMissingMapsToSentinel(t *testing.T) {
	repo := &mockBlogRepo{
		getPostBySlug: func(context.Context, string) (*domain_models.BlogPost, error) {
			return nil, nil
		},
	}
	svc := services.NewBlogService(repo)

	got, err := svc.GetPostBySlug(context.Background(), "no-such-post")
	assert.ErrorIs(t, err, utils.ErrBlogPostNotFound)
	assert.Nil(t, got)
}
