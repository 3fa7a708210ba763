package services

import (
	"context"
	"fmt"

	"tripweaver/internal/providers/amadeus"
	"tripweaver/pkg/utils"
)

var (
	ErrInvalidAirportCode = fmt.Errorf("%w: airport codes must be valid IATA codes (3 letters, e.g., JFK, LAX)", utils.ErrInvalidInput)
	ErrAirportPairNeeded  = fmt.Errorf("%w: please provide both origin and destination airports to search for flights", utils.ErrInvalidInput)
)

// NormalizeAirportPair trims/uppercases both codes and enforces the
// both-or-neither rule before any flight search runs. Empty results mean
// the caller skips flight search entirely.
func NormalizeAirportPair(origin, destination string) (string, string, error) {
	o := utils.NormalizeAirportCode(origin)
	d := utils.NormalizeAirportCode(destination)

	if (o != "" && !utils.ValidAirportCode(o)) || (d != "" && !utils.ValidAirportCode(d)) {
		return "", "", ErrInvalidAirportCode
	}
	if (o != "" && d == "") || (o == "" && d != "") {
		return "", "", ErrAirportPairNeeded
	}
	return o, d, nil
}

type FlightsClient interface {
	SearchFlights(ctx context.Context, params amadeus.SearchParams) ([]amadeus.FlightOffer, error)
	SearchAirports(ctx context.Context, keyword string) ([]amadeus.Location, error)
}

type FlightServiceInterface interface {
	Search(ctx context.Context, params amadeus.SearchParams) ([]amadeus.FlightOffer, error)
	SearchRoundTrip(ctx context.Context, origin, destination, departureDate, returnDate string, adults int, currency string) ([]amadeus.FlightOffer, error)
	SearchAirports(ctx context.Context, keyword string) ([]amadeus.Location, error)
}

type FlightService struct {
	flights FlightsClient
}

func NewFlightService(flights FlightsClient) FlightServiceInterface {
	return &FlightService{flights: flights}
}

func (s *FlightService) Search(ctx context.Context, params amadeus.SearchParams) ([]amadeus.FlightOffer, error) {
	if params.OriginLocationCode == "" || params.DestinationLocationCode == "" || params.DepartureDate == "" {
		return nil, fmt.Errorf("%w: missing required parameters: origin, destination, departureDate", utils.ErrInvalidInput)
	}
	if params.Adults <= 0 {
		params.Adults = 1
	}
	return s.flights.SearchFlights(ctx, params)
}

const itineraryFlightCap = 5

// SearchRoundTrip backs the itinerary flow: results are capped at 5 and
// kept in provider order.
func (s *FlightService) SearchRoundTrip(ctx context.Context, origin, destination, departureDate, returnDate string, adults int, currency string) ([]amadeus.FlightOffer, error) {
	offers, err := s.flights.SearchFlights(ctx, amadeus.SearchParams{
		OriginLocationCode:      origin,
		DestinationLocationCode: destination,
		DepartureDate:           departureDate,
		ReturnDate:              returnDate,
		Adults:                  adults,
		CurrencyCode:            currency,
	})
	if err != nil {
		return nil, err
	}
	if len(offers) > itineraryFlightCap {
		offers = offers[:itineraryFlightCap]
	}
	return offers, nil
}

func (s *FlightService) SearchAirports(ctx context.Context, keyword string) ([]amadeus.Location, error) {
	return s.flights.SearchAirports(ctx, keyword)
}
