package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/providers/amadeus"
	"tripweaver/internal/providers/gplaces"
	"tripweaver/internal/providers/liteapi"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/llm"
	"tripweaver/pkg/logger"
	"tripweaver/pkg/utils"
)

// PlaceResolver maps a free-text destination to the hotel inventory's
// place id.
type PlaceResolver interface {
	SearchPlaces(ctx context.Context, query string) (*liteapi.PlacesResponse, error)
}

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error)
	Save(ctx context.Context, accountID uuid.UUID, req request_models.SaveItineraryRequest) (*response_models.SavedItineraryResponse, error)
	ListSaved(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.SavedItineraryResponse, error)
}

type ItineraryService struct {
	hotels     HotelServiceInterface
	places     PlaceServiceInterface
	flights    FlightServiceInterface
	resolver   PlaceResolver
	cache      PlaceCache
	composer   llm.Composer
	repository repositories.ItineraryRepository
}

func NewItineraryService(
	hotels HotelServiceInterface,
	places PlaceServiceInterface,
	flights FlightServiceInterface,
	resolver PlaceResolver,
	cache PlaceCache,
	composer llm.Composer,
	repository repositories.ItineraryRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		hotels:     hotels,
		places:     places,
		flights:    flights,
		resolver:   resolver,
		cache:      cache,
		composer:   composer,
		repository: repository,
	}
}

// Generate runs the full pipeline: resolve the destination, search
// hotels within budget, gather points of interest, optionally search
// flights, then compose and validate the itinerary document.
func (s *ItineraryService) Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error) {
	if req.Destination == "" || req.Budget <= 0 || req.Checkin == "" || req.Checkout == "" {
		return nil, fmt.Errorf("%w: missing required fields: destination, budget, checkin, checkout", utils.ErrInvalidInput)
	}
	if req.Adults <= 0 {
		req.Adults = 1
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}

	origin, destination, err := NormalizeAirportPair(req.OriginAirport, req.DestinationAirport)
	if err != nil {
		return nil, err
	}

	nights, err := utils.Nights(req.Checkin, req.Checkout)
	if err != nil || nights <= 0 {
		return nil, fmt.Errorf("%w: checkout must be after checkin", utils.ErrInvalidInput)
	}

	// The hotel search runs on the provider's canonical place name when
	// resolution succeeds, so the destination filter matches its records.
	placeID := req.PlaceID
	searchDestination := req.Destination
	if placeID == "" {
		var placeName string
		placeID, placeName = s.resolvePlaceID(ctx, req.Destination)
		if placeName != "" {
			searchDestination = placeName
		}
	}

	hotels, err := s.hotels.SearchHotelsInBudget(ctx, HotelSearchInput{
		Destination: searchDestination,
		PlaceID:     placeID,
		Checkin:     req.Checkin,
		Checkout:    req.Checkout,
		Adults:      req.Adults,
		Budget:      req.Budget,
		Currency:    req.Currency,
	})
	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return nil, utils.ErrNoHotelsInBudget
	}

	pois, err := s.places.SearchPointsOfInterest(ctx, req.Destination)
	if err != nil {
		logger.Get().Warn("points of interest lookup failed",
			zap.String("destination", req.Destination), zap.Error(err))
		pois = nil
	}

	var flightOffers []amadeus.FlightOffer
	if origin != "" && destination != "" {
		flightOffers, err = s.flights.SearchRoundTrip(ctx, origin, destination, req.Checkin, req.Checkout, req.Adults, req.Currency)
		if err != nil {
			// Flight results enrich the itinerary but never block it.
			logger.Get().Warn("flight search failed",
				zap.String("origin", origin),
				zap.String("destination", destination),
				zap.Error(err))
			flightOffers = nil
		}
	}

	raw, err := s.composer.ComposeItinerary(ctx, llm.ComposeRequest{
		Destination: req.Destination,
		Budget:      req.Budget,
		Currency:    req.Currency,
		Checkin:     req.Checkin,
		Checkout:    req.Checkout,
		Nights:      nights,
		Adults:      req.Adults,
		Preferences: req.Preferences,
		Hotels:      hotelSummaries(hotels),
		Places:      placeSummaries(pois),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	doc, err := llm.ParseItinerary(raw)
	if err != nil {
		logger.Get().Error("itinerary document rejected",
			zap.Error(err),
			zap.String("raw", raw))
		return nil, utils.ErrGenerationFailed
	}

	mergeHotelStubs(doc, hotels)

	return &response_models.GenerateItineraryResponse{
		Success:   true,
		Itinerary: doc,
		Hotels:    hotels,
		Flights:   flightOffers,
		Places:    pois,
	}, nil
}

type resolvedPlace struct {
	PlaceID string `json:"placeId"`
	Name    string `json:"name"`
}

// resolvePlaceID prefers an exact case-insensitive display name match,
// then the first result, returning both the id and the provider's
// display name. Resolution failure is not fatal: the rates search falls
// back to free-text AI search on the user's destination.
func (s *ItineraryService) resolvePlaceID(ctx context.Context, destination string) (string, string) {
	key := strings.ToLower(strings.TrimSpace(destination))
	if cached, ok := s.cache.Get(ctx, key); ok {
		var place resolvedPlace
		if err := json.Unmarshal([]byte(cached), &place); err == nil && place.PlaceID != "" {
			return place.PlaceID, place.Name
		}
	}

	resp, err := s.resolver.SearchPlaces(ctx, destination)
	if err != nil {
		logger.Get().Warn("place resolution failed",
			zap.String("destination", destination), zap.Error(err))
		return "", ""
	}
	if len(resp.Data) == 0 {
		return "", ""
	}

	chosen := resp.Data[0]
	for _, p := range resp.Data {
		if strings.EqualFold(p.DisplayName, destination) {
			chosen = p
			break
		}
	}

	if payload, err := json.Marshal(resolvedPlace{PlaceID: chosen.PlaceID, Name: chosen.DisplayName}); err == nil {
		s.cache.Set(ctx, key, string(payload))
	}
	return chosen.PlaceID, chosen.DisplayName
}

func hotelSummaries(hotels []liteapi.BudgetHotel) []llm.HotelSummary {
	summaries := make([]llm.HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		summaries = append(summaries, llm.HotelSummary{
			ID:      h.HotelID,
			Name:    h.Name,
			Price:   h.Price,
			Address: h.Address,
			Rating:  h.Rating,
		})
	}
	return summaries
}

func placeSummaries(places []gplaces.Place) []llm.PlaceSummary {
	summaries := make([]llm.PlaceSummary, 0, len(places))
	for _, p := range places {
		placeType := "attraction"
		if len(p.Types) > 0 {
			placeType = p.Types[0]
		}
		summaries = append(summaries, llm.PlaceSummary{
			Name:    p.Name,
			Type:    placeType,
			Address: p.FormattedAddress,
			Rating:  p.Rating,
		})
	}
	return summaries
}

// mergeHotelStubs fills each model-picked hotel stub with the full
// record from the rates search, matching by id first and then by name.
func mergeHotelStubs(doc *response_models.GeneratedItinerary, hotels []liteapi.BudgetHotel) {
	byID := make(map[string]liteapi.BudgetHotel, len(hotels))
	byName := make(map[string]liteapi.BudgetHotel, len(hotels))
	for _, h := range hotels {
		byID[h.HotelID] = h
		byName[strings.ToLower(h.Name)] = h
	}

	for i, stub := range doc.Hotels {
		full, ok := byID[stub.ID]
		if !ok {
			full, ok = byName[strings.ToLower(stub.Name)]
		}
		if !ok {
			continue
		}
		doc.Hotels[i] = response_models.ItineraryHotel{
			ID:        full.HotelID,
			Name:      full.Name,
			Reason:    stub.Reason,
			Price:     full.Price,
			Currency:  full.Currency,
			Address:   full.Address,
			Rating:    full.Rating,
			MainPhoto: full.MainPhoto,
			OfferID:   full.OfferID,
		}
	}
}

func (s *ItineraryService) Save(ctx context.Context, accountID uuid.UUID, req request_models.SaveItineraryRequest) (*response_models.SavedItineraryResponse, error) {
	if req.Destination == "" || req.Itinerary == nil {
		return nil, fmt.Errorf("%w: destination and itinerary are required", utils.ErrInvalidInput)
	}

	data, err := json.Marshal(req.Itinerary)
	if err != nil {
		return nil, fmt.Errorf("%w: itinerary is not serializable", utils.ErrInvalidInput)
	}

	record := &db_models.SavedItinerary{
		AccountID:     accountID,
		Destination:   req.Destination,
		Checkin:       req.Checkin,
		Checkout:      req.Checkout,
		Budget:        req.Budget,
		Currency:      req.Currency,
		Summary:       stringField(req.Itinerary, "summary"),
		LocalInsights: stringSliceField(req.Itinerary, "localInsights"),
		ItineraryData: data,
	}
	if err := s.repository.Create(ctx, record); err != nil {
		logger.Get().Error("failed to save itinerary", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return savedItineraryResponse(record), nil
}

func (s *ItineraryService) ListSaved(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.SavedItineraryResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 10
	}

	records, err := s.repository.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		logger.Get().Error("failed to list itineraries", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SavedItineraryResponse, 0, len(records))
	for i := range records {
		out = append(out, *savedItineraryResponse(&records[i]))
	}
	return out, nil
}

func savedItineraryResponse(record *db_models.SavedItinerary) *response_models.SavedItineraryResponse {
	var doc map[string]any
	if len(record.ItineraryData) > 0 {
		_ = json.Unmarshal(record.ItineraryData, &doc)
	}
	return &response_models.SavedItineraryResponse{
		ID:          record.ID.String(),
		Destination: record.Destination,
		Checkin:     record.Checkin,
		Checkout:    record.Checkout,
		Budget:      record.Budget,
		Currency:    record.Currency,
		Summary:     record.Summary,
		Itinerary:   doc,
		CreatedAt:   record.CreatedAt,
	}
}

func stringField(doc map[string]any, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func stringSliceField(doc map[string]any, key string) []string {
	raw, ok := doc[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
