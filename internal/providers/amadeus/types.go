package amadeus

type SearchParams struct {
	OriginLocationCode      string
	DestinationLocationCode string
	DepartureDate           string
	ReturnDate              string
	Adults                  int
	Children                int
	Infants                 int
	TravelClass             string
	CurrencyCode            string
	Max                     int
}

type FlightEndpoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Segment struct {
	Departure     FlightEndpoint `json:"departure"`
	Arrival       FlightEndpoint `json:"arrival"`
	CarrierCode   string         `json:"carrierCode"`
	Number        string         `json:"number"`
	Duration      string         `json:"duration"`
	NumberOfStops int            `json:"numberOfStops"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base"`
	GrandTotal string `json:"grandTotal"`
}

// FlightOffer is an immutable quote with a short provider-side validity
// window; this system does not track expiry.
type FlightOffer struct {
	ID                     string      `json:"id"`
	OneWay                 bool        `json:"oneWay"`
	NumberOfBookableSeats  int         `json:"numberOfBookableSeats"`
	Itineraries            []Itinerary `json:"itineraries"`
	Price                  Price       `json:"price"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes"`
}

type Location struct {
	IataCode string `json:"iataCode"`
	Name     string `json:"name"`
	SubType  string `json:"subType"`
	Address  struct {
		CityName    string `json:"cityName"`
		CountryName string `json:"countryName"`
	} `json:"address"`
}
