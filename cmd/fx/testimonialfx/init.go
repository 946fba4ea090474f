package testimonialfx

import (
	"go.uber.org/fx"

	"wanderlust/internal/infra"
	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideTestimonialRepo, provideTestimonialService)

func provideTestimonialRepo(store *infra.Store) repositories.TestimonialRepository {
	return repositories.NewTestimonialRepository(store)
}

func provideTestimonialService(testimonialRepo repositories.TestimonialRepository) services.TestimonialServiceInterface {
	return services.NewTestimonialService(testimonialRepo)
}
