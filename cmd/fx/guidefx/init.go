package guidefx

import (
	"go.uber.org/fx"

	"wanderlust/internal/infra"
	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideGuideRepo, provideGuideService)

func provideGuideRepo(store *infra.Store) repositories.GuideRepository {
	return repositories.NewGuideRepository(store)
}

func provideGuideService(guideRepo repositories.GuideRepository) services.GuideServiceInterface {
	return services.NewGuideService(guideRepo)
}
