package repositories

import (
	"context"
	"sort"

	"wanderlust/internal/infra"
	"wanderlust/internal/models/domain_models"
)

type BlogRepository interface {
	ListPosts(ctx context.Context) ([]domain_models.BlogPost, error)
	ListFeaturedPosts(ctx context.Context) ([]domain_models.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (*domain_models.BlogPost, error)
}

type blogRepository struct {
	store *infra.Store
}

func NewBlogRepository(store *infra.Store) BlogRepository {
	return &blogRepository{store: store}
}

// ListPosts returns posts newest first.
func (r *blogRepository) ListPosts(_ context.Context) ([]domain_models.BlogPost, error) {
	posts := r.store.BlogPosts.List()
	sort.Slice(posts, func(a, b int) bool {
		return posts[a].PublishedAt.After(posts[b].PublishedAt)
	})
	return posts, nil
}

func (r *blogRepository) ListFeaturedPosts(_ context.Context) ([]domain_models.BlogPost, error) {
	return r.store.BlogPosts.Filter(func(p domain_models.BlogPost) bool {
		return p.Featured
	}), nil
}

func (r *blogRepository) GetPostBySlug(_ context.Context, slug string) (*domain_models.BlogPost, error) {
	p, ok := r.store.BlogPosts.Find(func(p domain_models.BlogPost) bool {
		return p.Slug == slug
	})
	if !ok {
		return nil, nil
	}
	return &p, nil
}
