package blogfx

import (
	"go.uber.org/fx"

	"wanderlust/internal/infra"
	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideBlogRepo, provideBlogService)

func provideBlogRepo(store *infra.Store) repositories.BlogRepository {
	return repositories.NewBlogRepository(store)
}

func provideBlogService(blogRepo repositories.BlogRepository) services.BlogServiceInterface {
	return services.NewBlogService(blogRepo)
}
