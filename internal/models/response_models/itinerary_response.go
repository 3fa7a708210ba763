package response_models

import (
	"tripweaver/internal/providers/amadeus"
	"tripweaver/internal/providers/gplaces"
	"tripweaver/internal/providers/liteapi"
)

// GeneratedItinerary is the document the composer returns. It is parsed
// from the model's JSON output and structurally validated before use.
type GeneratedItinerary struct {
	Summary         string             `json:"summary"`
	Hotels          []ItineraryHotel   `json:"hotels"`
	Itinerary       []ItineraryDay     `json:"itinerary"`
	TotalBudget     float64            `json:"totalBudget"`
	BudgetBreakdown map[string]float64 `json:"budgetBreakdown"`
	LocalInsights   []string           `json:"localInsights"`
}

// ItineraryHotel starts as the model's stub (id, name, reason) and is
// merged with the full hotel record found during the rates search.
type ItineraryHotel struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Reason    string  `json:"reason,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	Address   string  `json:"address,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
	MainPhoto string  `json:"main_photo,omitempty"`
	OfferID   string  `json:"offerId,omitempty"`
}

type ItineraryDay struct {
	Day            int                 `json:"day"`
	Date           string              `json:"date"`
	Title          string              `json:"title"`
	Budget         float64             `json:"budget"`
	Activities     []ItineraryActivity `json:"activities"`
	Meals          []ItineraryMeal     `json:"meals"`
	Transportation string              `json:"transportation"`
	TotalCost      float64             `json:"totalCost"`
}

type ItineraryActivity struct {
	Time     string  `json:"time"`
	Activity string  `json:"activity"`
	Place    string  `json:"place"`
	Type     string  `json:"type"`
	Duration string  `json:"duration"`
	Cost     float64 `json:"cost"`
	LocalTip string  `json:"localTip"`
}

type ItineraryMeal struct {
	Time    string  `json:"time"`
	Type    string  `json:"type"`
	Name    string  `json:"name"`
	Cuisine string  `json:"cuisine"`
	Cost    float64 `json:"cost"`
}

// GenerateItineraryResponse is the assembled payload for one generation
// request: the AI document plus the raw search results it drew from.
type GenerateItineraryResponse struct {
	Success   bool                  `json:"success"`
	Itinerary *GeneratedItinerary   `json:"itinerary"`
	Hotels    []liteapi.BudgetHotel `json:"hotels"`
	Flights   []amadeus.FlightOffer `json:"flights"`
	Places    []gplaces.Place       `json:"places"`
}

type SavedItineraryResponse struct {
	ID          string         `json:"id"`
	Destination string         `json:"destination"`
	Checkin     string         `json:"checkin"`
	Checkout    string         `json:"checkout"`
	Budget      float64        `json:"budget"`
	Currency    string         `json:"currency"`
	Summary     string         `json:"summary"`
	Itinerary   map[string]any `json:"itinerary"`
	CreatedAt   int64          `json:"createdAt"`
}
