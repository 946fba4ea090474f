package storefx

import (
	"go.uber.org/fx"

	"wanderlust/internal/infra"
	"wanderlust/internal/seed"
)

var Module = fx.Provide(provideStore)

// provideStore builds the single seeded store instance owned by the fx graph.
// The store lives for the whole process and is never re-seeded.
func provideStore() *infra.Store {
	store := infra.NewStore()
	seed.Load(store)
	return store
}
