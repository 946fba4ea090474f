package services

import (
	"context"

	"wanderlust/internal/models/domain_models"
	"wanderlust/internal/repositories"
)

type TeamServiceInterface interface {
	ListTeamMembers(ctx context.Context) ([]domain_models.TeamMember, error)
}

type TeamService struct {
	teamRepo repositories.TeamRepository
}

func NewTeamService(teamRepo repositories.TeamRepository) TeamServiceInterface {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) ListTeamMembers(ctx context.Context) ([]domain_models.TeamMember, error) {
	return s.teamRepo.ListTeamMembers(ctx)
}
