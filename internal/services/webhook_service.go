package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/logger"
)

// WebhookEvent is the provider's notification envelope. Response carries
// the booking payload; Request echoes what the provider received.
type WebhookEvent struct {
	EventName string          `json:"eventName"`
	Response  json.RawMessage `json:"response"`
	Request   json.RawMessage `json:"request"`
}

type WebhookServiceInterface interface {
	Process(ctx context.Context, event WebhookEvent)
}

type WebhookService struct {
	bookings repositories.BookingRepository
}

func NewWebhookService(bookings repositories.BookingRepository) WebhookServiceInterface {
	return &WebhookService{bookings: bookings}
}

// Process applies the event to local booking state. Failures are logged
// and swallowed: the provider gets its ack either way, and unmatched
// bookings simply have nothing to update yet.
func (s *WebhookService) Process(ctx context.Context, event WebhookEvent) {
	log := logger.Get().With(zap.String("event", event.EventName))

	switch event.EventName {
	case "booking.book":
		s.updateStatus(ctx, log, event, db_models.BookingStatusConfirmed)
	case "booking.cancel":
		s.updateStatus(ctx, log, event, db_models.BookingStatusCancelled)
	case "payment.accepted":
		s.updateStatus(ctx, log, event, db_models.BookingStatusPaid)
	case "payment.declined":
		s.updateStatus(ctx, log, event, db_models.BookingStatusDeclined)
	case "payment.balance":
		log.Info("payment balance notification received")
	default:
		log.Info("unhandled webhook event")
	}
}

func (s *WebhookService) updateStatus(ctx context.Context, log *zap.Logger, event WebhookEvent, status string) {
	bookingID := extractBookingID(event)
	if bookingID == "" {
		log.Warn("webhook payload has no booking id")
		return
	}

	booking, err := s.bookings.GetHotelBookingByProviderID(ctx, bookingID)
	if err != nil {
		log.Error("webhook booking lookup failed",
			zap.String("booking_id", bookingID), zap.Error(err))
		return
	}
	if booking == nil {
		log.Info("webhook for unknown booking", zap.String("booking_id", bookingID))
		return
	}

	if err := s.bookings.UpdateHotelBookingStatus(ctx, bookingID, status); err != nil {
		log.Error("webhook status update failed",
			zap.String("booking_id", bookingID),
			zap.String("status", status),
			zap.Error(err))
		return
	}
	log.Info("booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", status))
}

// extractBookingID digs the provider booking id out of either payload
// half, accepting the field spellings the provider has used.
func extractBookingID(event WebhookEvent) string {
	for _, raw := range []json.RawMessage{event.Response, event.Request} {
		if len(raw) == 0 {
			continue
		}
		var payload struct {
			BookingID string `json:"bookingId"`
			Booking   struct {
				BookingID string `json:"bookingId"`
			} `json:"booking"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			continue
		}
		if payload.BookingID != "" {
			return payload.BookingID
		}
		if payload.Booking.BookingID != "" {
			return payload.Booking.BookingID
		}
	}
	return ""
}
