package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tripweaver/internal/providers/amadeus"
	"tripweaver/pkg/utils"
)

type fakeFlightsClient struct {
	offers []amadeus.FlightOffer
	calls  int
}

func (f *fakeFlightsClient) SearchFlights(context.Context, amadeus.SearchParams) ([]amadeus.FlightOffer, error) {
	f.calls++
	return f.offers, nil
}

func (f *fakeFlightsClient) SearchAirports(context.Context, string) ([]amadeus.Location, error) {
	return nil, nil
}

func TestNormalizeAirportPair(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		destination string
		wantOrigin  string
		wantErr     error
	}{
		{"both valid", "jfk", " cdg ", "JFK", nil},
		{"both empty", "", "", "", nil},
		{"origin only", "JFK", "", "", ErrAirportPairNeeded},
		{"destination only", "", "CDG", "", ErrAirportPairNeeded},
		{"too short", "JF", "CDG", "", ErrInvalidAirportCode},
		{"digits", "JF1", "CDG", "", ErrInvalidAirportCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin, _, err := NormalizeAirportPair(tt.origin, tt.destination)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if origin != tt.wantOrigin {
				t.Errorf("expected origin %q, got %q", tt.wantOrigin, origin)
			}
		})
	}
}

func TestSearchRoundTripCapsOffers(t *testing.T) {
	offers := make([]amadeus.FlightOffer, 8)
	for i := range offers {
		offers[i] = amadeus.FlightOffer{ID: fmt.Sprintf("offer-%d", i)}
	}
	client := &fakeFlightsClient{offers: offers}
	svc := NewFlightService(client)

	got, err := svc.SearchRoundTrip(context.Background(), "JFK", "CDG", "2026-09-10", "2026-09-15", 2, "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 offers, got %d", len(got))
	}
	// Provider ordering is preserved, not re-sorted by price.
	if got[0].ID != "offer-0" || got[4].ID != "offer-4" {
		t.Errorf("expected provider order preserved, got %s..%s", got[0].ID, got[4].ID)
	}
}

func TestSearchRequiresCoreParams(t *testing.T) {
	client := &fakeFlightsClient{}
	svc := NewFlightService(client)

	_, err := svc.Search(context.Background(), amadeus.SearchParams{
		OriginLocationCode: "JFK",
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
	if client.calls != 0 {
		t.Error("provider should not be called for incomplete params")
	}
}
