package request_models

type PrebookRequest struct {
	OfferID string `json:"offerId"`
}

type BookingHolder struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type BookingGuest struct {
	OccupancyNumber int    `json:"occupancyNumber"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
}

type BookRequest struct {
	PrebookID     string         `json:"prebookId"`
	TransactionID string         `json:"transactionId"`
	Holder        BookingHolder  `json:"holder"`
	Guests        []BookingGuest `json:"guests"`
}

type SaveHotelBookingRequest struct {
	BookingID             string         `json:"bookingId"`
	Status                string         `json:"status"`
	HotelConfirmationCode string         `json:"hotelConfirmationCode"`
	Checkin               string         `json:"checkin"`
	Checkout              string         `json:"checkout"`
	HotelID               string         `json:"hotelId"`
	HotelName             string         `json:"hotelName"`
	Price                 float64        `json:"price"`
	Currency              string         `json:"currency"`
	CancellationPolicies  []string       `json:"cancellationPolicies"`
	BookingData           map[string]any `json:"bookingData"`
}

type SaveFlightBookingRequest struct {
	BookingID   string         `json:"bookingId"`
	FlightID    string         `json:"flightId"`
	Status      string         `json:"status"`
	Passenger   string         `json:"passenger"`
	BookingDate string         `json:"bookingDate"`
	Flight      map[string]any `json:"flight"`
	BookingData map[string]any `json:"bookingData"`
}
