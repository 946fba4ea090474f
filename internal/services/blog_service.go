package services

import (
	"context"

	"wanderlust/internal/models/domain_models"
	"wanderlust/internal/repositories"
	"wanderlust/pkg/utils"
)

type BlogServiceInterface interface {
	ListPosts(ctx context.Context) ([]domain_models.BlogPost, error)
	ListFeaturedPosts(ctx context.Context) ([]domain_models.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (*domain_models.BlogPost, error)
}

type BlogService struct {
	blogRepo repositories.BlogRepository
}

func NewBlogService(blogRepo repositories.BlogRepository) BlogServiceInterface {
	return &BlogService{blogRepo: blogRepo}
}

func (s *BlogService) ListPosts(ctx context.Context) ([]domain_models.BlogPost, error) {
	return s.blogRepo.ListPosts(ctx)
}

func (s *BlogService) ListFeaturedPosts(ctx context.Context) ([]domain_models.BlogPost, error) {
	return s.blogRepo.ListFeaturedPosts(ctx)
}

func (s *BlogService) GetPostBySlug(ctx context.Context, slug string) (*domain_models.BlogPost, error) {
	post, err := s.blogRepo.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrStoreFault
	}
	if post == nil {
		return nil, utils.ErrBlogPostNotFound
	}
	return post, nil
}
