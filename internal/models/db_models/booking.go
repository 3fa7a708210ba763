package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusPaid      = "PAID"
	BookingStatusDeclined  = "PAYMENT_DECLINED"
)

// HotelBooking is one provider-confirmed hotel reservation. Rows are
// written once; webhooks may later flip Status.
type HotelBooking struct {
	BaseModel
	AccountID             uuid.UUID `gorm:"type:uuid;index;not null"`
	BookingID             string    `gorm:"uniqueIndex;not null"` // provider-issued
	Status                string    `gorm:"not null"`
	HotelConfirmationCode string
	Checkin               string
	Checkout              string
	HotelID               string
	HotelName             string
	Price                 float64
	Currency              string
	CancellationPolicies  pq.StringArray `gorm:"type:text[]"`
	// Full provider response, kept for replay/display.
	BookingData []byte `gorm:"type:jsonb"`
}

type FlightBooking struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index;not null"`
	BookingID   string    `gorm:"uniqueIndex;not null"`
	FlightID    string
	Status      string `gorm:"not null"`
	Passenger   string
	BookingDate string
	FlightData  []byte `gorm:"type:jsonb"`
	BookingData []byte `gorm:"type:jsonb"`
}

// IdempotencyKey records a completed finalize call so that re-submitting
// the same prebook/transaction pair returns the stored result instead of
// hitting the provider twice.
type IdempotencyKey struct {
	BaseModel
	Key      string `gorm:"uniqueIndex;not null"`
	Response []byte `gorm:"type:jsonb"`
}
