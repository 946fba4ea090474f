package destinationfx

import (
	"go.uber.org/fx"

	"wanderlust/internal/infra"
	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideDestinationRepo, provideDestinationService)

func provideDestinationRepo(store *infra.Store) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(store)
}

func provideDestinationService(destinationRepo repositories.DestinationRepository) services.DestinationServiceInterface {
	return services.NewDestinationService(destinationRepo)
}
