package inquiryfx

import (
	"go.uber.org/fx"

	"wanderlust/internal/infra"
	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideInquiryRepo, provideInquiryService)

func provideInquiryRepo(store *infra.Store) repositories.InquiryRepository {
	return repositories.NewInquiryRepository(store)
}

func provideInquiryService(inquiryRepo repositories.InquiryRepository, notifier services.Notifier) services.InquiryServiceInterface {
	return services.NewInquiryService(inquiryRepo, notifier)
}
