package services

import (
	"context"
	"errors"
	"testing"

	"tripweaver/internal/providers/liteapi"
	"tripweaver/pkg/utils"
)

type fakeRatesClient struct {
	response *liteapi.RatesResponse
	err      error
	lastReq  liteapi.RatesRequest
	calls    int
}

func (f *fakeRatesClient) SearchRates(_ context.Context, req liteapi.RatesRequest) (*liteapi.RatesResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func rate(hotelID, offerID string, nightly float64) liteapi.HotelRate {
	return liteapi.HotelRate{
		HotelID: hotelID,
		RoomTypes: []liteapi.RoomType{{
			OfferID: offerID,
			Rates: []liteapi.Rate{{
				RetailRate: liteapi.RetailRate{
					Total: []liteapi.Money{{Amount: nightly, Currency: "USD"}},
				},
			}},
		}},
	}
}

func TestSearchHotelsInBudgetFiltersByNightlyCap(t *testing.T) {
	// 1000 over 3 nights allows 333.33 per night.
	client := &fakeRatesClient{response: &liteapi.RatesResponse{
		Data: []liteapi.HotelRate{
			rate("h1", "offer1", 300),
			rate("h2", "offer2", 400),
		},
		Hotels: []liteapi.HotelInfo{
			{ID: "h1", Name: "Hotel Lutetia", Address: "45 Boulevard Raspail, Paris", City: "Paris"},
			{ID: "h2", Name: "Hotel Royal", Address: "12 Rue de Rivoli, Paris", City: "Paris"},
		},
	}}
	svc := NewHotelService(client)

	hotels, err := svc.SearchHotelsInBudget(context.Background(), HotelSearchInput{
		Destination: "Paris",
		Checkin:     "2026-09-10",
		Checkout:    "2026-09-13",
		Adults:      2,
		Budget:      1000,
		Currency:    "USD",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("expected 1 hotel within budget, got %d", len(hotels))
	}
	if hotels[0].HotelID != "h1" {
		t.Errorf("expected h1 to survive the filter, got %s", hotels[0].HotelID)
	}
	if hotels[0].OfferID != "offer1" {
		t.Errorf("expected offer id to carry through, got %q", hotels[0].OfferID)
	}
}

func TestSearchHotelsInBudgetKeepsUnverifiableLocation(t *testing.T) {
	client := &fakeRatesClient{response: &liteapi.RatesResponse{
		Data: []liteapi.HotelRate{
			rate("noaddr", "offer1", 100),
			rate("elsewhere", "offer2", 100),
		},
		Hotels: []liteapi.HotelInfo{
			{ID: "noaddr", Name: "Mystery Inn"},
			{ID: "elsewhere", Name: "Berlin Hof", Address: "Alexanderplatz 1, Berlin", City: "Berlin"},
		},
	}}
	svc := NewHotelService(client)

	hotels, err := svc.SearchHotelsInBudget(context.Background(), HotelSearchInput{
		Destination: "Paris",
		Checkin:     "2026-09-10",
		Checkout:    "2026-09-12",
		Adults:      1,
		Budget:      500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("expected only the unverifiable hotel kept, got %d", len(hotels))
	}
	if hotels[0].HotelID != "noaddr" {
		t.Errorf("hotel without address should be kept, got %s", hotels[0].HotelID)
	}
}

func TestSearchHotelsInBudgetSortsAndTruncates(t *testing.T) {
	data := []liteapi.HotelRate{
		rate("h1", "o1", 90),
		rate("h2", "o2", 40),
		rate("h3", "o3", 70),
		rate("h4", "o4", 10),
		rate("h5", "o5", 60),
		rate("h6", "o6", 20),
		rate("h7", "o7", 50),
	}
	client := &fakeRatesClient{response: &liteapi.RatesResponse{Data: data}}
	svc := NewHotelService(client)

	hotels, err := svc.SearchHotelsInBudget(context.Background(), HotelSearchInput{
		Destination: "Lisbon",
		Checkin:     "2026-09-10",
		Checkout:    "2026-09-11",
		Adults:      1,
		Budget:      100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hotels) != 5 {
		t.Fatalf("expected cap of 5, got %d", len(hotels))
	}
	for i := 1; i < len(hotels); i++ {
		if hotels[i].Price < hotels[i-1].Price {
			t.Fatalf("hotels not sorted ascending by price: %v then %v", hotels[i-1].Price, hotels[i].Price)
		}
	}
	if hotels[0].HotelID != "h4" {
		t.Errorf("cheapest hotel should be first, got %s", hotels[0].HotelID)
	}
	if hotels[0].Name != "Hotel h4" {
		t.Errorf("missing hotel info should fall back to generated name, got %q", hotels[0].Name)
	}
}

func TestSearchHotelsInBudgetRejectsInvertedDates(t *testing.T) {
	client := &fakeRatesClient{}
	svc := NewHotelService(client)

	_, err := svc.SearchHotelsInBudget(context.Background(), HotelSearchInput{
		Destination: "Paris",
		Checkin:     "2026-09-13",
		Checkout:    "2026-09-10",
		Adults:      1,
		Budget:      500,
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
	if client.calls != 0 {
		t.Error("provider should not be called for invalid dates")
	}
}

func TestSearchHotelsInBudgetUsesPlaceIDWhenAvailable(t *testing.T) {
	client := &fakeRatesClient{response: &liteapi.RatesResponse{}}
	svc := NewHotelService(client)

	_, err := svc.SearchHotelsInBudget(context.Background(), HotelSearchInput{
		Destination: "Tokyo",
		PlaceID:     "place123",
		Checkin:     "2026-09-10",
		Checkout:    "2026-09-12",
		Adults:      1,
		Budget:      800,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.lastReq.PlaceID != "place123" {
		t.Errorf("expected place id on request, got %q", client.lastReq.PlaceID)
	}
	if client.lastReq.AISearch != "" {
		t.Errorf("aiSearch should be empty when place id is set, got %q", client.lastReq.AISearch)
	}

	_, err = svc.SearchHotelsInBudget(context.Background(), HotelSearchInput{
		Destination: "Tokyo",
		Checkin:     "2026-09-10",
		Checkout:    "2026-09-12",
		Adults:      1,
		Budget:      800,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.lastReq.AISearch != "hotels in Tokyo" {
		t.Errorf("expected aiSearch fallback, got %q", client.lastReq.AISearch)
	}
}
