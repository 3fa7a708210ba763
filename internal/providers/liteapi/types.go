package liteapi

import (
	"encoding/json"
	"fmt"
)

// Known upstream error codes surfaced during booking finalization.
const (
	ErrCodeFraudCheck     = 2013
	ErrCodePaymentPending = 2014
)

// APIError preserves the upstream message, code, and raw body so the
// booking layer can map recognized codes to typed client errors.
type APIError struct {
	StatusCode  int
	Code        int
	Message     string
	Description string
	Raw         json.RawMessage
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("liteapi error %d (code %d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("liteapi error %d: %s", e.StatusCode, e.Message)
}

type Place struct {
	PlaceID     string `json:"placeId"`
	DisplayName string `json:"displayName"`
}

type PlacesResponse struct {
	Data []Place `json:"data"`
}

type Occupancy struct {
	Adults int `json:"adults"`
}

type RatesRequest struct {
	PlaceID          string      `json:"placeId,omitempty"`
	HotelIDs         []string    `json:"hotelIds,omitempty"`
	AISearch         string      `json:"aiSearch,omitempty"`
	Occupancies      []Occupancy `json:"occupancies"`
	Currency         string      `json:"currency"`
	GuestNationality string      `json:"guestNationality"`
	Checkin          string      `json:"checkin"`
	Checkout         string      `json:"checkout"`
	RoomMapping      bool        `json:"roomMapping"`
	MaxRatesPerHotel int         `json:"maxRatesPerHotel"`
	IncludeHotelData bool        `json:"includeHotelData"`
}

type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type RetailRate struct {
	Total []Money `json:"total"`
}

type Rate struct {
	RetailRate RetailRate `json:"retailRate"`
}

type RoomType struct {
	OfferID string `json:"offerId"`
	Rates   []Rate `json:"rates"`
}

type HotelRate struct {
	HotelID   string     `json:"hotelId"`
	RoomTypes []RoomType `json:"roomTypes"`
}

type HotelInfo struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Rating    float64 `json:"rating"`
	MainPhoto string  `json:"main_photo"`
}

type RatesResponse struct {
	Data   []HotelRate `json:"data"`
	Hotels []HotelInfo `json:"hotels"`
}

// BudgetHotel is one hotel offer that survived the budget filter. The
// OfferID is the opaque handle used later to initiate a prebook.
type BudgetHotel struct {
	HotelID   string  `json:"hotelId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Address   string  `json:"address,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
	MainPhoto string  `json:"main_photo,omitempty"`
	OfferID   string  `json:"offerId"`
}

type BookHolder struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type BookGuest struct {
	OccupancyNumber int    `json:"occupancyNumber"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
}

type BookPayment struct {
	Method        string `json:"method"`
	TransactionID string `json:"transactionId"`
}

type BookRequest struct {
	PrebookID string      `json:"prebookId"`
	Holder    BookHolder  `json:"holder"`
	Payment   BookPayment `json:"payment"`
	Guests    []BookGuest `json:"guests"`
}
