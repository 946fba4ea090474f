package repositories

import (
	"context"

	"github.com/google/uuid"

	"wanderlust/internal/infra"
	"wanderlust/internal/models/domain_models"
	"wanderlust/pkg/utils"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain_models.User) (*domain_models.User, error)
	GetUserByID(ctx context.Context, id string) (*domain_models.User, error)
	FindByUsername(ctx context.Context, username string) (*domain_models.User, error)
}

type userRepository struct {
	store *infra.Store
}

func NewUserRepository(store *infra.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) CreateUser(_ context.Context, user *domain_models.User) (*domain_models.User, error) {
	user.ID = uuid.NewString()
	inserted := r.store.Users.PutIfAbsent(user.ID, *user, func(existing domain_models.User) bool {
		return existing.Username == user.Username
	})
	if !inserted {
		return nil, utils.ErrUsernameTaken
	}
	return user, nil
}

func (r *userRepository) GetUserByID(_ context.Context, id string) (*domain_models.User, error) {
	u, ok := r.store.Users.Get(id)
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *userRepository) FindByUsername(_ context.Context, username string) (*domain_models.User, error) {
	u, ok := r.store.Users.Find(func(u domain_models.User) bool {
		return u.Username == username
	})
	if !ok {
		return nil, nil
	}
	return &u, nil
}
