package request_models

type GenerateItineraryRequest struct {
	Destination        string  `json:"destination"`
	PlaceID            string  `json:"placeId"`
	Budget             float64 `json:"budget"`
	Currency           string  `json:"currency"`
	Checkin            string  `json:"checkin"`
	Checkout           string  `json:"checkout"`
	Adults             int     `json:"adults"`
	Preferences        string  `json:"preferences"`
	OriginAirport      string  `json:"originAirport"`
	DestinationAirport string  `json:"destinationAirport"`
}

type SaveItineraryRequest struct {
	Destination string         `json:"destination"`
	Checkin     string         `json:"checkin"`
	Checkout    string         `json:"checkout"`
	Budget      float64        `json:"budget"`
	Currency    string         `json:"currency"`
	Itinerary   map[string]any `json:"itinerary"`
}
