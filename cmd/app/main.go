package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wanderlust/cmd/fx/blogfx"
	"wanderlust/cmd/fx/controllersfx"
	"wanderlust/cmd/fx/destinationfx"
	"wanderlust/cmd/fx/faqfx"
	"wanderlust/cmd/fx/guidefx"
	"wanderlust/cmd/fx/inquiryfx"
	"wanderlust/cmd/fx/newsletterfx"
	"wanderlust/cmd/fx/notifyfx"
	"wanderlust/cmd/fx/storefx"
	"wanderlust/cmd/fx/teamfx"
	"wanderlust/cmd/fx/testimonialfx"
	"wanderlust/cmd/fx/tourfx"
	"wanderlust/cmd/fx/userfx"
	"wanderlust/internal/api/controllers"
	"wanderlust/pkg/middleware"
)

func main() {
	// Local development reads PORT from .env; deployed environments inject it.
	_ = godotenv.Load()

	app := fx.New(
		storefx.Module,
		notifyfx.Module,
		destinationfx.Module,
		tourfx.Module,
		guidefx.Module,
		blogfx.Module,
		testimonialfx.Module,
		teamfx.Module,
		faqfx.Module,
		inquiryfx.Module,
		newsletterfx.Module,
		userfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	destinationsController *controllers.DestinationsController,
	toursController *controllers.ToursController,
	guidesController *controllers.GuidesController,
	blogController *controllers.BlogController,
	testimonialsController *controllers.TestimonialsController,
	teamController *controllers.TeamController,
	faqsController *controllers.FaqsController,
	inquiriesController *controllers.InquiriesController,
	newsletterController *controllers.NewsletterController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		destinationsController,
		toursController,
		guidesController,
		blogController,
		testimonialsController,
		teamController,
		faqsController,
		inquiriesController,
		newsletterController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	destinationsController *controllers.DestinationsController,
	toursController *controllers.ToursController,
	guidesController *controllers.GuidesController,
	blogController *controllers.BlogController,
	testimonialsController *controllers.TestimonialsController,
	teamController *controllers.TeamController,
	faqsController *controllers.FaqsController,
	inquiriesController *controllers.InquiriesController,
	newsletterController *controllers.NewsletterController) {

	api := r.Group("/api")

	destinationsGroup := api.Group("/destinations")
	destinationsGroup.GET("", destinationsController.ListDestinations)
	destinationsGroup.GET("/featured", destinationsController.ListFeaturedDestinations)
	destinationsGroup.GET("/:id", destinationsController.GetDestinationByID)

	// Singular alias kept for the SPA's tour listing per destination.
	api.GET("/destination/:id/tours", destinationsController.GetDestinationTours)

	toursGroup := api.Group("/tours")
	toursGroup.GET("", toursController.ListTours)
	toursGroup.GET("/featured", toursController.ListFeaturedTours)
	toursGroup.GET("/:id", toursController.GetTourByID)
	toursGroup.GET("/:id/itinerary", toursController.GetTourItinerary)

	guidesGroup := api.Group("/guides")
	guidesGroup.GET("", guidesController.ListGuides)
	guidesGroup.GET("/:id", guidesController.GetGuideByID)

	blogGroup := api.Group("/blog")
	blogGroup.GET("", blogController.ListPosts)
	blogGroup.GET("/featured", blogController.ListFeaturedPosts)
	blogGroup.GET("/:slug", blogController.GetPostBySlug)

	testimonialsGroup := api.Group("/testimonials")
	testimonialsGroup.GET("", testimonialsController.ListTestimonials)
	testimonialsGroup.GET("/featured", testimonialsController.ListFeaturedTestimonials)

	api.GET("/team", teamController.ListTeamMembers)

	faqsGroup := api.Group("/faqs")
	faqsGroup.GET("", faqsController.ListFaqs)
	faqsGroup.GET("/tour/:tourId", faqsController.ListFaqsByTour)

	inquiriesGroup := api.Group("/inquiries")
	inquiriesGroup.POST("", inquiriesController.CreateInquiry)
	inquiriesGroup.GET("", inquiriesController.ListInquiries)

	api.POST("/newsletter", newsletterController.Subscribe)
	api.POST("/contact", inquiriesController.CreateContactMessage)
}
