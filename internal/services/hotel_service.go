package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"tripweaver/internal/providers/liteapi"
	"tripweaver/pkg/logger"
	"tripweaver/pkg/utils"
)

type RatesClient interface {
	SearchRates(ctx context.Context, req liteapi.RatesRequest) (*liteapi.RatesResponse, error)
}

type HotelSearchInput struct {
	Destination string
	PlaceID     string
	Checkin     string
	Checkout    string
	Adults      int
	Budget      float64
	Currency    string
	MaxHotels   int
}

type HotelServiceInterface interface {
	SearchHotelsInBudget(ctx context.Context, in HotelSearchInput) ([]liteapi.BudgetHotel, error)
}

type HotelService struct {
	rates RatesClient
}

func NewHotelService(rates RatesClient) HotelServiceInterface {
	return &HotelService{rates: rates}
}

// SearchHotelsInBudget queries the rates provider and keeps offers whose
// nightly price fits budget/nights. Zero qualifying hotels is a valid
// empty result; callers decide whether that is an error.
func (s *HotelService) SearchHotelsInBudget(ctx context.Context, in HotelSearchInput) ([]liteapi.BudgetHotel, error) {
	nights, err := utils.Nights(in.Checkin, in.Checkout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	if nights <= 0 {
		return nil, fmt.Errorf("%w: checkout must be after checkin", utils.ErrInvalidInput)
	}

	maxPricePerNight := in.Budget / float64(nights)
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}

	req := liteapi.RatesRequest{
		Occupancies:      []liteapi.Occupancy{{Adults: in.Adults}},
		Currency:         currency,
		Checkin:          in.Checkin,
		Checkout:         in.Checkout,
		RoomMapping:      true,
		MaxRatesPerHotel: 1,
		IncludeHotelData: true,
	}
	// A place id is more accurate than free text; fall back to the
	// provider's AI search when the destination was never resolved.
	if in.PlaceID != "" {
		req.PlaceID = in.PlaceID
	} else {
		req.AISearch = "hotels in " + in.Destination
	}

	ratesData, err := s.rates.SearchRates(ctx, req)
	if err != nil {
		return nil, err
	}

	hotelInfoByID := make(map[string]liteapi.HotelInfo, len(ratesData.Hotels))
	for _, h := range ratesData.Hotels {
		hotelInfoByID[h.ID] = h
	}

	destinationLower := strings.ToLower(in.Destination)
	hotels := make([]liteapi.BudgetHotel, 0, len(ratesData.Data))

	for _, hotelData := range ratesData.Data {
		if len(hotelData.RoomTypes) == 0 {
			continue
		}
		roomType := hotelData.RoomTypes[0]
		if len(roomType.Rates) == 0 || len(roomType.Rates[0].RetailRate.Total) == 0 {
			continue
		}
		total := roomType.Rates[0].RetailRate.Total[0]

		if total.Amount > maxPricePerNight {
			continue
		}

		info, hasInfo := hotelInfoByID[hotelData.HotelID]

		// Best-effort destination check: a hotel whose address, city, or
		// name never mentions the destination is likely a mis-located
		// result, but with no address data we can't verify, so keep it.
		// Known-fuzzy: "NYC" will not match a provider's "New York City".
		inDestination := !hasInfo || info.Address == "" ||
			strings.Contains(strings.ToLower(info.Address), destinationLower) ||
			strings.Contains(strings.ToLower(info.City), destinationLower) ||
			strings.Contains(strings.ToLower(info.Name), destinationLower)

		if !inDestination {
			logger.Get().Debug("filtered out hotel outside destination",
				zap.String("hotel", info.Name),
				zap.String("address", info.Address),
				zap.String("destination", in.Destination))
			continue
		}

		name := info.Name
		if name == "" {
			name = "Hotel " + hotelData.HotelID
		}
		offerCurrency := total.Currency
		if offerCurrency == "" {
			offerCurrency = currency
		}

		hotels = append(hotels, liteapi.BudgetHotel{
			HotelID:   hotelData.HotelID,
			Name:      name,
			Price:     total.Amount,
			Currency:  offerCurrency,
			Address:   info.Address,
			Rating:    info.Rating,
			MainPhoto: info.MainPhoto,
			OfferID:   roomType.OfferID,
		})
	}

	sort.SliceStable(hotels, func(i, j int) bool {
		return hotels[i].Price < hotels[j].Price
	})

	maxHotels := in.MaxHotels
	if maxHotels <= 0 {
		maxHotels = 5
	}
	if len(hotels) > maxHotels {
		hotels = hotels[:maxHotels]
	}
	return hotels, nil
}
