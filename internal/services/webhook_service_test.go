package services

import (
	"context"
	"encoding/json"
	"testing"

	"tripweaver/internal/models/db_models"
)

func seedBooking(repo *fakeBookingRepo, bookingID string) {
	repo.hotelBookings = append(repo.hotelBookings, db_models.HotelBooking{
		BookingID: bookingID,
		Status:    db_models.BookingStatusConfirmed,
	})
}

func event(name, bookingID string) WebhookEvent {
	payload, _ := json.Marshal(map[string]any{"bookingId": bookingID})
	return WebhookEvent{EventName: name, Response: payload}
}

func TestWebhookEventStatusMapping(t *testing.T) {
	tests := []struct {
		event  string
		status string
	}{
		{"booking.book", db_models.BookingStatusConfirmed},
		{"booking.cancel", db_models.BookingStatusCancelled},
		{"payment.accepted", db_models.BookingStatusPaid},
		{"payment.declined", db_models.BookingStatusDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			repo := newFakeBookingRepo()
			seedBooking(repo, "BK-1")
			svc := NewWebhookService(repo)

			svc.Process(context.Background(), event(tt.event, "BK-1"))

			if got := repo.statusUpdates["BK-1"]; got != tt.status {
				t.Errorf("expected status %q, got %q", tt.status, got)
			}
		})
	}
}

func TestWebhookIgnoresUnknownBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewWebhookService(repo)

	svc.Process(context.Background(), event("booking.cancel", "missing"))

	if len(repo.statusUpdates) != 0 {
		t.Errorf("unknown booking should not trigger an update, got %v", repo.statusUpdates)
	}
}

func TestWebhookBalanceAndUnknownEventsAreNoOps(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, "BK-1")
	svc := NewWebhookService(repo)

	svc.Process(context.Background(), event("payment.balance", "BK-1"))
	svc.Process(context.Background(), event("something.new", "BK-1"))

	if len(repo.statusUpdates) != 0 {
		t.Errorf("informational events should not update status, got %v", repo.statusUpdates)
	}
}

func TestExtractBookingIDFromNestedPayload(t *testing.T) {
	payload, _ := json.Marshal(map[string]any{
		"booking": map[string]any{"bookingId": "BK-9"},
	})
	got := extractBookingID(WebhookEvent{EventName: "booking.book", Request: payload})
	if got != "BK-9" {
		t.Errorf("expected BK-9 from nested payload, got %q", got)
	}

	if got := extractBookingID(WebhookEvent{EventName: "booking.book"}); got != "" {
		t.Errorf("expected empty id for empty payloads, got %q", got)
	}
}
