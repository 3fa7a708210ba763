package services

import (
	"context"
	"fmt"
	"strings"

	"tripweaver/internal/providers/liteapi"
	"tripweaver/pkg/utils"
)

// CatalogClient is the hotel inventory's read surface.
type CatalogClient interface {
	SearchPlaces(ctx context.Context, query string) (*liteapi.PlacesResponse, error)
	SearchRates(ctx context.Context, req liteapi.RatesRequest) (*liteapi.RatesResponse, error)
	GetHotelDetails(ctx context.Context, hotelID string) (map[string]any, error)
}

// CatalogServiceInterface fronts the raw inventory endpoints the client
// app calls directly, with input validation but no reshaping.
type CatalogServiceInterface interface {
	SearchPlaces(ctx context.Context, query string) (*liteapi.PlacesResponse, error)
	SearchRates(ctx context.Context, req liteapi.RatesRequest) (*liteapi.RatesResponse, error)
	GetHotelDetails(ctx context.Context, hotelID string) (map[string]any, error)
}

type CatalogService struct {
	client CatalogClient
}

func NewCatalogService(client CatalogClient) CatalogServiceInterface {
	return &CatalogService{client: client}
}

func (s *CatalogService) SearchPlaces(ctx context.Context, query string) (*liteapi.PlacesResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query parameter q is required", utils.ErrInvalidInput)
	}
	return s.client.SearchPlaces(ctx, query)
}

func (s *CatalogService) SearchRates(ctx context.Context, req liteapi.RatesRequest) (*liteapi.RatesResponse, error) {
	if req.PlaceID == "" && len(req.HotelIDs) == 0 && req.AISearch == "" {
		return nil, fmt.Errorf("%w: one of placeId, hotelIds, or aiSearch is required", utils.ErrInvalidInput)
	}
	if req.Checkin == "" || req.Checkout == "" {
		return nil, fmt.Errorf("%w: checkin and checkout are required", utils.ErrInvalidInput)
	}
	if len(req.Occupancies) == 0 {
		req.Occupancies = []liteapi.Occupancy{{Adults: 1}}
	}
	return s.client.SearchRates(ctx, req)
}

func (s *CatalogService) GetHotelDetails(ctx context.Context, hotelID string) (map[string]any, error) {
	if hotelID == "" {
		return nil, fmt.Errorf("%w: hotelId is required", utils.ErrInvalidInput)
	}
	return s.client.GetHotelDetails(ctx, hotelID)
}
