package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/internal/providers/liteapi"
	"tripweaver/pkg/utils"
)

type fakeBookingClient struct {
	bookErrs  []error
	bookCalls int
	result    map[string]any
}

func (f *fakeBookingClient) Prebook(context.Context, string) (map[string]any, error) {
	return map[string]any{"prebookId": "pb1"}, nil
}

func (f *fakeBookingClient) Book(context.Context, liteapi.BookRequest) (map[string]any, error) {
	call := f.bookCalls
	f.bookCalls++
	if call < len(f.bookErrs) && f.bookErrs[call] != nil {
		return nil, f.bookErrs[call]
	}
	if f.result != nil {
		return f.result, nil
	}
	return map[string]any{"data": map[string]any{"bookingId": "BK-1"}}, nil
}

type fakeIdempotencyRepo struct {
	records map[string][]byte
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{records: map[string][]byte{}}
}

func (f *fakeIdempotencyRepo) Get(_ context.Context, key string) (*db_models.IdempotencyKey, error) {
	if payload, ok := f.records[key]; ok {
		return &db_models.IdempotencyKey{Key: key, Response: payload}, nil
	}
	return nil, nil
}

func (f *fakeIdempotencyRepo) Save(_ context.Context, key string, response []byte) error {
	f.records[key] = response
	return nil
}

type fakeBookingRepo struct {
	hotelBookings  []db_models.HotelBooking
	flightBookings []db_models.FlightBooking
	statusUpdates  map[string]string
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{statusUpdates: map[string]string{}}
}

func (f *fakeBookingRepo) CreateHotelBooking(_ context.Context, booking *db_models.HotelBooking) error {
	booking.ID = uuid.New()
	f.hotelBookings = append(f.hotelBookings, *booking)
	return nil
}

func (f *fakeBookingRepo) CreateFlightBooking(_ context.Context, booking *db_models.FlightBooking) error {
	booking.ID = uuid.New()
	f.flightBookings = append(f.flightBookings, *booking)
	return nil
}

func (f *fakeBookingRepo) ListHotelBookings(_ context.Context, _ uuid.UUID, _, _ int) ([]db_models.HotelBooking, error) {
	return f.hotelBookings, nil
}

func (f *fakeBookingRepo) ListFlightBookings(_ context.Context, _ uuid.UUID, _, _ int) ([]db_models.FlightBooking, error) {
	return f.flightBookings, nil
}

func (f *fakeBookingRepo) GetHotelBookingByProviderID(_ context.Context, bookingID string) (*db_models.HotelBooking, error) {
	for i := range f.hotelBookings {
		if f.hotelBookings[i].BookingID == bookingID {
			return &f.hotelBookings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) UpdateHotelBookingStatus(_ context.Context, bookingID, status string) error {
	f.statusUpdates[bookingID] = status
	return nil
}

func newTestBookingService(client *fakeBookingClient, idem *fakeIdempotencyRepo) (*BookingService, *[]time.Duration) {
	sleeps := &[]time.Duration{}
	svc := &BookingService{
		client:      client,
		bookings:    newFakeBookingRepo(),
		idempotency: idem,
		sleep: func(_ context.Context, d time.Duration) error {
			*sleeps = append(*sleeps, d)
			return nil
		},
	}
	return svc, sleeps
}

func validBookRequest() request_models.BookRequest {
	return request_models.BookRequest{
		PrebookID:     "pb1",
		TransactionID: "tx1",
		Holder: request_models.BookingHolder{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
		},
		Guests: []request_models.BookingGuest{{
			OccupancyNumber: 1,
			FirstName:       "Ada",
			LastName:        "Lovelace",
			Email:           "ada@example.com",
		}},
	}
}

func TestCompleteBookingRetriesPaymentPending(t *testing.T) {
	pending := &liteapi.APIError{StatusCode: 400, Code: liteapi.ErrCodePaymentPending, Message: "payment not completed"}
	client := &fakeBookingClient{bookErrs: []error{pending, pending}}
	svc, sleeps := newTestBookingService(client, newFakeIdempotencyRepo())

	result, err := svc.CompleteBooking(context.Background(), validBookRequest())
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if client.bookCalls != 3 {
		t.Errorf("expected 3 attempts, got %d", client.bookCalls)
	}
	if len(*sleeps) != 2 {
		t.Errorf("expected 2 sleeps between attempts, got %d", len(*sleeps))
	}
	for _, d := range *sleeps {
		if d != 2*time.Second {
			t.Errorf("expected 2s delay, got %v", d)
		}
	}
	if result["data"] == nil {
		t.Error("expected provider result passed through")
	}
}

func TestCompleteBookingPaymentPendingExhaustsRetries(t *testing.T) {
	pending := &liteapi.APIError{StatusCode: 400, Code: liteapi.ErrCodePaymentPending, Message: "payment not completed"}
	client := &fakeBookingClient{bookErrs: []error{pending, pending, pending}}
	svc, _ := newTestBookingService(client, newFakeIdempotencyRepo())

	_, err := svc.CompleteBooking(context.Background(), validBookRequest())
	var failure *BookingFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected BookingFailure, got %v", err)
	}
	if failure.Status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", failure.Status)
	}
	if !failure.Payload.Retry {
		t.Error("payment pending failure should be marked retryable")
	}
	if failure.Payload.Type != "payment_pending" {
		t.Errorf("expected payment_pending type, got %q", failure.Payload.Type)
	}
	if client.bookCalls != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", client.bookCalls)
	}
}

func TestCompleteBookingFraudCheckNotRetried(t *testing.T) {
	fraud := &liteapi.APIError{StatusCode: 403, Code: liteapi.ErrCodeFraudCheck, Message: "booking rejected by fraud check"}
	client := &fakeBookingClient{bookErrs: []error{fraud}}
	svc, sleeps := newTestBookingService(client, newFakeIdempotencyRepo())

	_, err := svc.CompleteBooking(context.Background(), validBookRequest())
	var failure *BookingFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected BookingFailure, got %v", err)
	}
	if failure.Status != http.StatusForbidden {
		t.Errorf("expected 403, got %d", failure.Status)
	}
	if failure.Payload.Type != "fraud_check" {
		t.Errorf("expected fraud_check type, got %q", failure.Payload.Type)
	}
	if failure.Payload.Retry {
		t.Error("fraud check failure must not be retryable")
	}
	if client.bookCalls != 1 {
		t.Errorf("fraud check should not be retried, got %d calls", client.bookCalls)
	}
	if len(*sleeps) != 0 {
		t.Errorf("no delay expected, got %d sleeps", len(*sleeps))
	}
}

func TestCompleteBookingIsIdempotent(t *testing.T) {
	client := &fakeBookingClient{result: map[string]any{"bookingId": "BK-42"}}
	idem := newFakeIdempotencyRepo()
	svc, _ := newTestBookingService(client, idem)

	first, err := svc.CompleteBooking(context.Background(), validBookRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := svc.CompleteBooking(context.Background(), validBookRequest())
	if err != nil {
		t.Fatalf("unexpected error on duplicate: %v", err)
	}
	if client.bookCalls != 1 {
		t.Fatalf("duplicate submission must not reach the provider, got %d calls", client.bookCalls)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("duplicate must return the stored result: %s vs %s", a, b)
	}
}

func TestCompleteBookingValidatesInput(t *testing.T) {
	svc, _ := newTestBookingService(&fakeBookingClient{}, newFakeIdempotencyRepo())

	req := validBookRequest()
	req.TransactionID = ""
	if _, err := svc.CompleteBooking(context.Background(), req); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("expected invalid input for missing transaction id, got %v", err)
	}

	req = validBookRequest()
	req.Holder.Email = ""
	if _, err := svc.CompleteBooking(context.Background(), req); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("expected invalid input for missing holder email, got %v", err)
	}
}

func TestCompleteBookingRequiresGuests(t *testing.T) {
	client := &fakeBookingClient{}
	svc, _ := newTestBookingService(client, newFakeIdempotencyRepo())

	req := validBookRequest()
	req.Guests = nil
	_, err := svc.CompleteBooking(context.Background(), req)
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing guests, got %v", err)
	}
	if client.bookCalls != 0 {
		t.Errorf("provider must not be called without guests, got %d calls", client.bookCalls)
	}
}

func TestSaveHotelBookingDefaultsStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &BookingService{
		client:      &fakeBookingClient{},
		bookings:    repo,
		idempotency: newFakeIdempotencyRepo(),
		sleep:       sleepCtx,
	}

	resp, err := svc.SaveHotelBooking(context.Background(), uuid.New(), request_models.SaveHotelBookingRequest{
		BookingID: "BK-7",
		HotelName: "Hotel Lutetia",
		Price:     450,
		Currency:  "EUR",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != db_models.BookingStatusConfirmed {
		t.Errorf("expected default CONFIRMED status, got %q", resp.Status)
	}
	if len(repo.hotelBookings) != 1 {
		t.Fatalf("expected 1 stored booking, got %d", len(repo.hotelBookings))
	}
}
