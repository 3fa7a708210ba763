package itinerary_fx

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripweaver/internal/api/controllers"
	"tripweaver/internal/providers/gplaces"
	"tripweaver/internal/providers/liteapi"
	"tripweaver/internal/repositories"
	"tripweaver/internal/services"
	"tripweaver/pkg/llm"
)

var Module = fx.Provide(
	provideItineraryRepo, providePlaceService, providePlaceCache,
	provideItineraryService, provideItineraryController)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func providePlaceService(client *gplaces.Client) services.PlaceServiceInterface {
	return services.NewPlaceService(client)
}

func providePlaceCache(client *redis.Client) services.PlaceCache {
	return services.NewPlaceCache(client)
}

func provideItineraryService(
	hotelService services.HotelServiceInterface,
	placeService services.PlaceServiceInterface,
	flightService services.FlightServiceInterface,
	liteClient *liteapi.Client,
	cache services.PlaceCache,
	composer llm.Composer,
	itineraryRepo repositories.ItineraryRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(
		hotelService, placeService, flightService,
		liteClient, cache, composer, itineraryRepo)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
