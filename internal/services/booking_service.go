package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/providers/liteapi"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/logger"
	"tripweaver/pkg/utils"
)

const (
	bookRetryAttempts = 3
	bookRetryDelay    = 2 * time.Second
)

// BookingFailure is a recognized upstream booking error carrying the
// HTTP status and typed payload the API should return as-is.
type BookingFailure struct {
	Status  int
	Payload response_models.BookingError
}

func (f *BookingFailure) Error() string {
	return fmt.Sprintf("booking failed (%d): %s", f.Status, f.Payload.Error)
}

// BookingClient is the finalization surface of the hotel provider.
type BookingClient interface {
	Prebook(ctx context.Context, offerID string) (map[string]any, error)
	Book(ctx context.Context, req liteapi.BookRequest) (map[string]any, error)
}

type BookingServiceInterface interface {
	Prebook(ctx context.Context, req request_models.PrebookRequest) (map[string]any, error)
	CompleteBooking(ctx context.Context, req request_models.BookRequest) (map[string]any, error)
	SaveHotelBooking(ctx context.Context, accountID uuid.UUID, req request_models.SaveHotelBookingRequest) (*response_models.HotelBookingResponse, error)
	SaveFlightBooking(ctx context.Context, accountID uuid.UUID, req request_models.SaveFlightBookingRequest) (*response_models.FlightBookingResponse, error)
	ListHotelBookings(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.HotelBookingResponse, error)
	ListFlightBookings(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.FlightBookingResponse, error)
}

type BookingService struct {
	client      BookingClient
	bookings    repositories.BookingRepository
	idempotency repositories.IdempotencyRepository
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewBookingService(
	client BookingClient,
	bookings repositories.BookingRepository,
	idempotency repositories.IdempotencyRepository,
) BookingServiceInterface {
	return &BookingService{
		client:      client,
		bookings:    bookings,
		idempotency: idempotency,
		sleep:       sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *BookingService) Prebook(ctx context.Context, req request_models.PrebookRequest) (map[string]any, error) {
	if req.OfferID == "" {
		return nil, fmt.Errorf("%w: offerId is required", utils.ErrInvalidInput)
	}
	return s.client.Prebook(ctx, req.OfferID)
}

// idempotencyKey derives the stored key from the prebook/transaction
// pair, so the same finalize request hashes identically from any device.
func idempotencyKey(prebookID, transactionID string) string {
	sum := sha256.Sum256([]byte(prebookID + ":" + transactionID))
	return hex.EncodeToString(sum[:])
}

// CompleteBooking finalizes a prebooked offer. A duplicate submission
// returns the original provider result without a second provider call.
// Payment-pending failures are retried here with a fixed delay before a
// retryable error goes back to the caller.
func (s *BookingService) CompleteBooking(ctx context.Context, req request_models.BookRequest) (map[string]any, error) {
	if req.PrebookID == "" || req.TransactionID == "" {
		return nil, fmt.Errorf("%w: prebookId and transactionId are required", utils.ErrInvalidInput)
	}
	if req.Holder.FirstName == "" || req.Holder.LastName == "" || req.Holder.Email == "" {
		return nil, fmt.Errorf("%w: holder firstName, lastName, and email are required", utils.ErrInvalidInput)
	}
	if len(req.Guests) == 0 {
		return nil, fmt.Errorf("%w: guests information is required", utils.ErrInvalidInput)
	}

	key := idempotencyKey(req.PrebookID, req.TransactionID)
	if stored, err := s.idempotency.Get(ctx, key); err != nil {
		logger.Get().Error("idempotency lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	} else if stored != nil {
		var result map[string]any
		if err := json.Unmarshal(stored.Response, &result); err == nil {
			logger.Get().Info("returning stored booking result",
				zap.String("prebook_id", req.PrebookID))
			return result, nil
		}
	}

	guests := make([]liteapi.BookGuest, 0, len(req.Guests))
	for _, g := range req.Guests {
		guests = append(guests, liteapi.BookGuest{
			OccupancyNumber: g.OccupancyNumber,
			FirstName:       g.FirstName,
			LastName:        g.LastName,
			Email:           g.Email,
		})
	}
	bookReq := liteapi.BookRequest{
		PrebookID: req.PrebookID,
		Holder: liteapi.BookHolder{
			FirstName: req.Holder.FirstName,
			LastName:  req.Holder.LastName,
			Email:     req.Holder.Email,
		},
		Payment: liteapi.BookPayment{
			Method:        "TRANSACTION_ID",
			TransactionID: req.TransactionID,
		},
		Guests: guests,
	}

	var result map[string]any
	var err error
	for attempt := 1; ; attempt++ {
		result, err = s.client.Book(ctx, bookReq)
		if err == nil {
			break
		}
		if !isPaymentPending(err) || attempt >= bookRetryAttempts {
			return nil, mapBookingError(err)
		}
		logger.Get().Warn("payment pending upstream, retrying",
			zap.String("prebook_id", req.PrebookID),
			zap.Int("attempt", attempt))
		if sleepErr := s.sleep(ctx, bookRetryDelay); sleepErr != nil {
			return nil, sleepErr
		}
	}

	if payload, marshalErr := json.Marshal(result); marshalErr == nil {
		if saveErr := s.idempotency.Save(ctx, key, payload); saveErr != nil {
			// The booking already succeeded upstream; losing the
			// idempotency row only weakens duplicate protection.
			logger.Get().Error("failed to store idempotency record", zap.Error(saveErr))
		}
	}
	return result, nil
}

func isPaymentPending(err error) bool {
	var apiErr *liteapi.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == liteapi.ErrCodePaymentPending ||
		strings.Contains(strings.ToLower(apiErr.Message), "payment not completed")
}

// mapBookingError translates recognized provider codes to typed client
// errors; everything else becomes an opaque 500.
func mapBookingError(err error) error {
	var apiErr *liteapi.APIError
	if !errors.As(err, &apiErr) {
		return &BookingFailure{
			Status:  http.StatusInternalServerError,
			Payload: response_models.BookingError{Error: "Booking failed"},
		}
	}

	switch {
	case apiErr.Code == liteapi.ErrCodeFraudCheck ||
		strings.Contains(strings.ToLower(apiErr.Message), "fraud check"):
		return &BookingFailure{
			Status: http.StatusForbidden,
			Payload: response_models.BookingError{
				Error: "Booking was declined by the payment fraud check. Please contact support.",
				Code:  liteapi.ErrCodeFraudCheck,
				Type:  "fraud_check",
			},
		}
	case apiErr.Code == liteapi.ErrCodePaymentPending ||
		strings.Contains(strings.ToLower(apiErr.Message), "payment not completed"):
		return &BookingFailure{
			Status: http.StatusBadRequest,
			Payload: response_models.BookingError{
				Error: "Payment has not completed yet. Please try again in a moment.",
				Code:  liteapi.ErrCodePaymentPending,
				Type:  "payment_pending",
				Retry: true,
			},
		}
	default:
		return &BookingFailure{
			Status: http.StatusInternalServerError,
			Payload: response_models.BookingError{
				Error:   apiErr.Message,
				Code:    apiErr.Code,
				Details: apiErr.Description,
			},
		}
	}
}

func (s *BookingService) SaveHotelBooking(ctx context.Context, accountID uuid.UUID, req request_models.SaveHotelBookingRequest) (*response_models.HotelBookingResponse, error) {
	if req.BookingID == "" {
		return nil, fmt.Errorf("%w: bookingId is required", utils.ErrInvalidInput)
	}
	status := req.Status
	if status == "" {
		status = db_models.BookingStatusConfirmed
	}

	var data []byte
	if req.BookingData != nil {
		data, _ = json.Marshal(req.BookingData)
	}

	record := &db_models.HotelBooking{
		AccountID:             accountID,
		BookingID:             req.BookingID,
		Status:                status,
		HotelConfirmationCode: req.HotelConfirmationCode,
		Checkin:               req.Checkin,
		Checkout:              req.Checkout,
		HotelID:               req.HotelID,
		HotelName:             req.HotelName,
		Price:                 req.Price,
		Currency:              req.Currency,
		CancellationPolicies:  req.CancellationPolicies,
		BookingData:           data,
	}
	if err := s.bookings.CreateHotelBooking(ctx, record); err != nil {
		logger.Get().Error("failed to save hotel booking", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return hotelBookingResponse(record), nil
}

func (s *BookingService) SaveFlightBooking(ctx context.Context, accountID uuid.UUID, req request_models.SaveFlightBookingRequest) (*response_models.FlightBookingResponse, error) {
	if req.BookingID == "" {
		return nil, fmt.Errorf("%w: bookingId is required", utils.ErrInvalidInput)
	}
	status := req.Status
	if status == "" {
		status = db_models.BookingStatusConfirmed
	}

	var flightData, bookingData []byte
	if req.Flight != nil {
		flightData, _ = json.Marshal(req.Flight)
	}
	if req.BookingData != nil {
		bookingData, _ = json.Marshal(req.BookingData)
	}

	record := &db_models.FlightBooking{
		AccountID:   accountID,
		BookingID:   req.BookingID,
		FlightID:    req.FlightID,
		Status:      status,
		Passenger:   req.Passenger,
		BookingDate: req.BookingDate,
		FlightData:  flightData,
		BookingData: bookingData,
	}
	if err := s.bookings.CreateFlightBooking(ctx, record); err != nil {
		logger.Get().Error("failed to save flight booking", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return flightBookingResponse(record), nil
}

func (s *BookingService) ListHotelBookings(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.HotelBookingResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	records, err := s.bookings.ListHotelBookings(ctx, accountID, page, pageSize)
	if err != nil {
		logger.Get().Error("failed to list hotel bookings", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.HotelBookingResponse, 0, len(records))
	for i := range records {
		out = append(out, *hotelBookingResponse(&records[i]))
	}
	return out, nil
}

func (s *BookingService) ListFlightBookings(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.FlightBookingResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	records, err := s.bookings.ListFlightBookings(ctx, accountID, page, pageSize)
	if err != nil {
		logger.Get().Error("failed to list flight bookings", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.FlightBookingResponse, 0, len(records))
	for i := range records {
		out = append(out, *flightBookingResponse(&records[i]))
	}
	return out, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 10
	}
	return page, pageSize
}

func hotelBookingResponse(record *db_models.HotelBooking) *response_models.HotelBookingResponse {
	var data map[string]any
	if len(record.BookingData) > 0 {
		_ = json.Unmarshal(record.BookingData, &data)
	}
	return &response_models.HotelBookingResponse{
		ID:                    record.ID.String(),
		BookingID:             record.BookingID,
		Status:                record.Status,
		HotelConfirmationCode: record.HotelConfirmationCode,
		Checkin:               record.Checkin,
		Checkout:              record.Checkout,
		HotelID:               record.HotelID,
		HotelName:             record.HotelName,
		Price:                 record.Price,
		Currency:              record.Currency,
		CancellationPolicies:  record.CancellationPolicies,
		BookingData:           data,
		CreatedAt:             record.CreatedAt,
	}
}

func flightBookingResponse(record *db_models.FlightBooking) *response_models.FlightBookingResponse {
	var flight, data map[string]any
	if len(record.FlightData) > 0 {
		_ = json.Unmarshal(record.FlightData, &flight)
	}
	if len(record.BookingData) > 0 {
		_ = json.Unmarshal(record.BookingData, &data)
	}
	return &response_models.FlightBookingResponse{
		ID:          record.ID.String(),
		BookingID:   record.BookingID,
		FlightID:    record.FlightID,
		Status:      record.Status,
		Passenger:   record.Passenger,
		BookingDate: record.BookingDate,
		Flight:      flight,
		BookingData: data,
		CreatedAt:   record.CreatedAt,
	}
}
