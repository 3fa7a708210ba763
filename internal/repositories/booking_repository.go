package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripweaver/internal/models/db_models"
)

type BookingRepository interface {
	CreateHotelBooking(ctx context.Context, booking *db_models.HotelBooking) error
	CreateFlightBooking(ctx context.Context, booking *db_models.FlightBooking) error
	ListHotelBookings(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.HotelBooking, error)
	ListFlightBookings(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.FlightBooking, error)
	GetHotelBookingByProviderID(ctx context.Context, bookingID string) (*db_models.HotelBooking, error)
	UpdateHotelBookingStatus(ctx context.Context, bookingID string, status string) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) CreateHotelBooking(ctx context.Context, booking *db_models.HotelBooking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) CreateFlightBooking(ctx context.Context, booking *db_models.FlightBooking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) ListHotelBookings(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.HotelBooking, error) {
	var bookings []db_models.HotelBooking
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListFlightBookings(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.FlightBooking, error) {
	var bookings []db_models.FlightBooking
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) GetHotelBookingByProviderID(ctx context.Context, bookingID string) (*db_models.HotelBooking, error) {
	var booking db_models.HotelBooking
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateHotelBookingStatus(ctx context.Context, bookingID string, status string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.HotelBooking{}).
		Where("booking_id = ?", bookingID).
		Update("status", status).Error
}
