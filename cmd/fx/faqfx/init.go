package faqfx

import (
	"go.uber.org/fx"

	"wanderlust/internal/infra"
	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideFaqRepo, provideFaqService)

func provideFaqRepo(store *infra.Store) repositories.FaqRepository {
	return repositories.NewFaqRepository(store)
}

func provideFaqService(faqRepo repositories.FaqRepository) services.FaqServiceInterface {
	return services.NewFaqService(faqRepo)
}
