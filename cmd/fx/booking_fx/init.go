package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripweaver/internal/api/controllers"
	"tripweaver/internal/providers/liteapi"
	"tripweaver/internal/repositories"
	"tripweaver/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideIdempotencyRepo,
	provideBookingService, provideBookingsController)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideIdempotencyRepo(db *gorm.DB) repositories.IdempotencyRepository {
	return repositories.NewIdempotencyRepository(db)
}

func provideBookingService(
	client *liteapi.Client,
	bookingRepo repositories.BookingRepository,
	idempotencyRepo repositories.IdempotencyRepository,
) services.BookingServiceInterface {
	return services.NewBookingService(client, bookingRepo, idempotencyRepo)
}

func provideBookingsController(bookingService services.BookingServiceInterface) *controllers.BookingsController {
	return controllers.NewBookingsController(bookingService)
}
