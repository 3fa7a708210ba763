package hotel_fx

import (
	"go.uber.org/fx"

	"tripweaver/internal/api/controllers"
	"tripweaver/internal/providers/liteapi"
	"tripweaver/internal/services"
)

var Module = fx.Provide(
	provideHotelService, provideCatalogService, provideHotelsController)

func provideHotelService(client *liteapi.Client) services.HotelServiceInterface {
	return services.NewHotelService(client)
}

func provideCatalogService(client *liteapi.Client) services.CatalogServiceInterface {
	return services.NewCatalogService(client)
}

func provideHotelsController(catalogService services.CatalogServiceInterface) *controllers.HotelsController {
	return controllers.NewHotelsController(catalogService)
}
