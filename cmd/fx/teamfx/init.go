package teamfx

import (
	"go.uber.org/fx"

	"wanderlust/internal/infra"
	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideTeamRepo, provideTeamService)

func provideTeamRepo(store *infra.Store) repositories.TeamRepository {
	return repositories.NewTeamRepository(store)
}

func provideTeamService(teamRepo repositories.TeamRepository) services.TeamServiceInterface {
	return services.NewTeamService(teamRepo)
}
