package controllersfx

import (
	"go.uber.org/fx"

	"wanderlust/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewDestinationsController),
	fx.Provide(controllers.NewToursController),
	fx.Provide(controllers.NewGuidesController),
	fx.Provide(controllers.NewBlogController),
	fx.Provide(controllers.NewTestimonialsController),
	fx.Provide(controllers.NewTeamController),
	fx.Provide(controllers.NewFaqsController),
	fx.Provide(controllers.NewInquiriesController),
	fx.Provide(controllers.NewNewsletterController))
