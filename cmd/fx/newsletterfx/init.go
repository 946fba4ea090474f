package newsletterfx

import (
	"go.uber.org/fx"

	"wanderlust/internal/infra"
	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideNewsletterRepo, provideNewsletterService)

func provideNewsletterRepo(store *infra.Store) repositories.NewsletterRepository {
	return repositories.NewNewsletterRepository(store)
}

func provideNewsletterService(newsletterRepo repositories.NewsletterRepository, notifier services.Notifier) services.NewsletterServiceInterface {
	return services.NewNewsletterService(newsletterRepo, notifier)
}
