package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/providers/amadeus"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type FlightsController struct {
	flightService services.FlightServiceInterface
}

func NewFlightsController(flightService services.FlightServiceInterface) *FlightsController {
	return &FlightsController{
		flightService: flightService,
	}
}

// Search godoc
// @Summary Search flight offers
// @Description Search flight offers between two airports for given dates
// @Tags Flights
// @Produce json
// @Param origin query string true "Origin IATA code"
// @Param destination query string true "Destination IATA code"
// @Param departureDate query string true "Departure date (YYYY-MM-DD)"
// @Param returnDate query string false "Return date (YYYY-MM-DD)"
// @Param adults query int false "Number of adults" default(1)
// @Param currencyCode query string false "Price currency"
// @Param max query int false "Maximum results" default(20)
// @Success 200 {array} amadeus.FlightOffer
// @Failure 400 {object} utils.APIResponse
// @Router /flights/search [get]
func (f *FlightsController) Search(c *gin.Context) {
	origin := strings.ToUpper(strings.TrimSpace(c.Query("origin")))
	destination := strings.ToUpper(strings.TrimSpace(c.Query("destination")))

	if !utils.ValidAirportCode(origin) || !utils.ValidAirportCode(destination) {
		utils.RespondError(c, http.StatusBadRequest, "origin and destination must be valid IATA codes (3 letters, e.g., JFK, LAX)")
		return
	}

	adults, _ := strconv.Atoi(c.DefaultQuery("adults", "1"))
	max, _ := strconv.Atoi(c.DefaultQuery("max", "20"))

	offers, err := f.flightService.Search(c.Request.Context(), amadeus.SearchParams{
		OriginLocationCode:      origin,
		DestinationLocationCode: destination,
		DepartureDate:           c.Query("departureDate"),
		ReturnDate:              c.Query("returnDate"),
		Adults:                  adults,
		CurrencyCode:            c.Query("currencyCode"),
		Max:                     max,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, offers, "Flights fetched successfully")
}

// SearchAirports godoc
// @Summary Search airports
// @Description Look up airports and cities by keyword for autocomplete
// @Tags Flights
// @Produce json
// @Param q query string true "Search keyword (minimum 2 characters)"
// @Success 200 {array} amadeus.Location
// @Router /flights/airports [get]
func (f *FlightsController) SearchAirports(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("q"))
	if len(keyword) < 2 {
		utils.RespondSuccess(c, []amadeus.Location{}, "Airports fetched successfully")
		return
	}

	locations, err := f.flightService.SearchAirports(c.Request.Context(), keyword)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, locations, "Airports fetched successfully")
}
