package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SavedItinerary struct {
	BaseModel
	AccountID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Destination   string    `gorm:"not null"`
	Checkin       string
	Checkout      string
	Budget        float64
	Currency      string
	Summary       string
	LocalInsights pq.StringArray `gorm:"type:text[]"`
	// Full generated document for replay/display.
	ItineraryData []byte `gorm:"type:jsonb"`
}
