package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripweaver/cmd/fx/account_fx"
	"tripweaver/cmd/fx/booking_fx"
	"tripweaver/cmd/fx/core_fx"
	"tripweaver/cmd/fx/flight_fx"
	"tripweaver/cmd/fx/hotel_fx"
	"tripweaver/cmd/fx/itinerary_fx"
	"tripweaver/cmd/fx/provider_fx"
	"tripweaver/cmd/fx/webhook_fx"
	"tripweaver/internal/api/controllers"
	"tripweaver/internal/config"
	"tripweaver/internal/infra"
	"tripweaver/pkg/logger"
	"tripweaver/pkg/middleware"
	"tripweaver/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	logger.Init(cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	app := fx.New(
		fx.Supply(cfg),
		core_fx.Module,
		provider_fx.Module,
		account_fx.Module,
		hotel_fx.Module,
		flight_fx.Module,
		itinerary_fx.Module,
		booking_fx.Module,
		webhook_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Get().Info("starting HTTP server", zap.String("port", cfg.AppPort))
				if err := engine.Run(":" + cfg.AppPort); err != nil {
					logger.Get().Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Get().Info("stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	tokens *utils.TokenMaker,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	hotelsController *controllers.HotelsController,
	flightsController *controllers.FlightsController,
	bookingsController *controllers.BookingsController,
	webhookController *controllers.WebhookController,
) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tokens,
		accountController, itineraryController, hotelsController,
		flightsController, bookingsController, webhookController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tokens *utils.TokenMaker,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	hotelsController *controllers.HotelsController,
	flightsController *controllers.FlightsController,
	bookingsController *controllers.BookingsController,
	webhookController *controllers.WebhookController) {

	auth := r.Group("/auth")
	auth.POST("/register", accountController.Register)
	auth.POST("/login", accountController.Login)
	auth.POST("/check-email", accountController.CheckEmail)

	api := r.Group("/api")
	api.POST("/itinerary/generate", itineraryController.Generate)
	api.POST("/rates", hotelsController.SearchRates)
	api.GET("/places", hotelsController.SearchPlaces)
	api.GET("/hotel", hotelsController.GetHotelDetails)
	api.GET("/flights/search", flightsController.Search)
	api.GET("/flights/airports", flightsController.SearchAirports)
	api.POST("/prebook", bookingsController.Prebook)
	api.POST("/book", bookingsController.Book)
	api.POST("/webhook", webhookController.Receive)
	api.GET("/webhook", webhookController.Liveness)

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware(tokens))
	protected.POST("/itineraries", itineraryController.Save)
	protected.GET("/itineraries", itineraryController.List)
	protected.POST("/bookings/hotel", bookingsController.SaveHotelBooking)
	protected.GET("/bookings/hotel", bookingsController.ListHotelBookings)
	protected.POST("/bookings/flight", bookingsController.SaveFlightBooking)
	protected.GET("/bookings/flight", bookingsController.ListFlightBookings)
}
