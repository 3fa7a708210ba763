package response_models

type HotelBookingResponse struct {
	ID                    string         `json:"id"`
	BookingID             string         `json:"bookingId"`
	Status                string         `json:"status"`
	HotelConfirmationCode string         `json:"hotelConfirmationCode,omitempty"`
	Checkin               string         `json:"checkin"`
	Checkout              string         `json:"checkout"`
	HotelID               string         `json:"hotelId"`
	HotelName             string         `json:"hotelName"`
	Price                 float64        `json:"price"`
	Currency              string         `json:"currency"`
	CancellationPolicies  []string       `json:"cancellationPolicies,omitempty"`
	BookingData           map[string]any `json:"bookingData,omitempty"`
	CreatedAt             int64          `json:"createdAt"`
}

type FlightBookingResponse struct {
	ID          string         `json:"id"`
	BookingID   string         `json:"bookingId"`
	FlightID    string         `json:"flightId"`
	Status      string         `json:"status"`
	Passenger   string         `json:"passenger"`
	BookingDate string         `json:"bookingDate"`
	Flight      map[string]any `json:"flight,omitempty"`
	BookingData map[string]any `json:"bookingData,omitempty"`
	CreatedAt   int64          `json:"createdAt"`
}

// BookingError is the typed payload for recognized upstream failures.
type BookingError struct {
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
	Type    string `json:"type,omitempty"`
	Retry   bool   `json:"retry,omitempty"`
	Details any    `json:"details,omitempty"`
}
