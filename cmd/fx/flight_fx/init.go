package flight_fx

import (
	"go.uber.org/fx"

	"tripweaver/internal/api/controllers"
	"tripweaver/internal/providers/amadeus"
	"tripweaver/internal/services"
)

var Module = fx.Provide(
	provideFlightService, provideFlightsController)

func provideFlightService(client *amadeus.Client) services.FlightServiceInterface {
	return services.NewFlightService(client)
}

func provideFlightsController(flightService services.FlightServiceInterface) *controllers.FlightsController {
	return controllers.NewFlightsController(flightService)
}
