package tourfx

import (
	"go.uber.org/fx"

	"wanderlust/internal/infra"
	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideTourRepo, provideTourService)

func provideTourRepo(store *infra.Store) repositories.TourRepository {
	return repositories.NewTourRepository(store)
}

func provideTourService(tourRepo repositories.TourRepository) services.TourServiceInterface {
	return services.NewTourService(tourRepo)
}
