package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// HotelSummary is the slice of a hotel record the prompt embeds.
type HotelSummary struct {
	ID      string
	Name    string
	Price   float64
	Address string
	Rating  float64
}

// PlaceSummary is the slice of a POI record the prompt embeds.
type PlaceSummary struct {
	Name    string
	Type    string
	Address string
	Rating  float64
}

type ComposeRequest struct {
	Destination string
	Budget      float64
	Currency    string
	Checkin     string
	Checkout    string
	Nights      int
	Adults      int
	Preferences string
	Hotels      []HotelSummary
	Places      []PlaceSummary
}

// Composer turns one search context into the itinerary document as raw
// model output. Parsing and validation happen in ParseItinerary.
type Composer interface {
	ComposeItinerary(ctx context.Context, req ComposeRequest) (string, error)
}

var ErrNotConfigured = errors.New("no itinerary composer configured")

const systemPrompt = "You are an expert travel planner specializing in creating authentic, localized, and budget-conscious itineraries. Always respond with valid JSON only."

func buildPrompt(req ComposeRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert travel planner. Create a detailed, localized %d-day itinerary for %s.\n\n", req.Nights, req.Destination)
	fmt.Fprintf(&b, "Budget: %s %.2f for %d person(s)\n", req.Currency, req.Budget, req.Adults)
	fmt.Fprintf(&b, "Dates: %s to %s\n\n", req.Checkin, req.Checkout)

	b.WriteString("Available Hotels (choose 3-5 that fit the budget):\n")
	for i, h := range req.Hotels {
		fmt.Fprintf(&b, "%d. %s - %s %.2f/night", i+1, h.Name, req.Currency, h.Price)
		if h.Rating > 0 {
			fmt.Fprintf(&b, " (Rating: %.1f)", h.Rating)
		}
		if h.Address != "" {
			fmt.Fprintf(&b, " - %s", h.Address)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nLocal Places to Visit:\n")
	for i, p := range req.Places {
		fmt.Fprintf(&b, "%d. %s (%s)", i+1, p.Name, p.Type)
		if p.Rating > 0 {
			fmt.Fprintf(&b, " - Rating: %.1f", p.Rating)
		}
		if p.Address != "" {
			fmt.Fprintf(&b, " - %s", p.Address)
		}
		b.WriteString("\n")
	}

	if req.Preferences != "" {
		fmt.Fprintf(&b, "\nTraveler Preferences: %s\n", req.Preferences)
	}

	b.WriteString(`
Create a detailed day-by-day itinerary that:
1. Is culturally authentic and localized (suggest local experiences, foods, customs)
2. Includes 3-5 hotel recommendations that fit the budget
3. Organizes activities by day with realistic timing
4. Includes local restaurants, markets, and cultural sites
5. Suggests transportation between locations
6. Includes budget breakdown per day
7. Provides local tips and cultural insights

Format the response as a structured JSON with this format:
{
  "summary": "Brief overview of the trip",
  "hotels": [
    {"id": "hotel_id_from_list", "name": "Hotel Name", "reason": "Why this hotel fits the budget and traveler"}
  ],
  "itinerary": [
    {
      "day": 1,
      "date": "YYYY-MM-DD",
      "title": "Day 1 Title",
      "budget": 0,
      "activities": [
        {"time": "09:00", "activity": "Activity name", "place": "Place name from list", "type": "attraction/restaurant/cultural", "duration": "2 hours", "cost": 0, "localTip": "Local insight or tip"}
      ],
      "meals": [
        {"time": "12:00", "type": "lunch", "name": "Restaurant name", "cuisine": "Local cuisine type", "cost": 0}
      ],
      "transportation": "How to get around",
      "totalCost": 0
    }
  ],
  "totalBudget": 0,
  "budgetBreakdown": {"accommodation": 0, "activities": 0, "meals": 0, "transportation": 0},
  "localInsights": ["Cultural tip 1", "Local custom 2", "Must-try experience 3"]
}

Return ONLY valid JSON, no markdown formatting.`)

	return b.String()
}
