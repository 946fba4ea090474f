package repositories

import (
	"context"

	"wanderlust/internal/infra"
	"wanderlust/internal/models/domain_models"
)

type TeamRepository interface {
	ListTeamMembers(ctx context.Context) ([]domain_models.TeamMember, error)
}

type teamRepository struct {
	store *infra.Store
}

func NewTeamRepository(store *infra.Store) TeamRepository {
	return &teamRepository{store: store}
}

func (r *teamRepository) ListTeamMembers(_ context.Context) ([]domain_models.TeamMember, error) {
	return r.store.TeamMembers.List(), nil
}
