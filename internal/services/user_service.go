package services

import (
	"context"

	"wanderlust/internal/models/domain_models"
	"wanderlust/internal/models/request_models"
	"wanderlust/internal/repositories"
	"wanderlust/pkg/utils"
)

// UserServiceInterface covers the account table kept for compatibility with
// the site's data model. There is no login surface; accounts are provisioned
// out of band.
type UserServiceInterface interface {
	CreateUser(ctx context.Context, req request_models.CreateUserRequest) (*domain_models.User, error)
	GetUser(ctx context.Context, id string) (*domain_models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain_models.User, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) CreateUser(ctx context.Context, req request_models.CreateUserRequest) (*domain_models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrStoreFault
	}

	user := &domain_models.User{
		Username:     req.Username,
		PasswordHash: hash,
	}
	return s.userRepo.CreateUser(ctx, user)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain_models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, utils.ErrStoreFault
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain_models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, utils.ErrStoreFault
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}
