package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type BookingsController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingsController(bookingService services.BookingServiceInterface) *BookingsController {
	return &BookingsController{
		bookingService: bookingService,
	}
}

// Prebook godoc
// @Summary Prebook a hotel offer
// @Description Lock the price of a hotel offer and obtain the payment session
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.PrebookRequest true "Offer ID from a rates search"
// @Success 200 {object} map[string]any
// @Failure 400 {object} utils.APIResponse
// @Router /prebook [post]
func (b *BookingsController) Prebook(c *gin.Context) {
	var req request_models.PrebookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := b.bookingService.Prebook(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Prebook created successfully")
}

// Book godoc
// @Summary Finalize a booking
// @Description Complete a prebooked offer with the payment transaction. Duplicate submissions return the original result.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.BookRequest true "Prebook ID, transaction ID, holder, and guests"
// @Success 200 {object} map[string]any
// @Failure 400 {object} response_models.BookingError
// @Failure 403 {object} response_models.BookingError
// @Router /book [post]
func (b *BookingsController) Book(c *gin.Context) {
	var req request_models.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := b.bookingService.CompleteBooking(c.Request.Context(), req)
	if err != nil {
		var failure *services.BookingFailure
		if errors.As(err, &failure) {
			// Recognized upstream failures keep their typed payload so
			// the client can branch on code/type/retry.
			c.JSON(failure.Status, failure.Payload)
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Booking confirmed successfully")
}

// SaveHotelBooking godoc
// @Summary Save a hotel booking
// @Description Record a confirmed hotel booking for the authenticated user
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.SaveHotelBookingRequest true "Provider booking details"
// @Success 200 {object} response_models.HotelBookingResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/hotel [post]
func (b *BookingsController) SaveHotelBooking(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	var req request_models.SaveHotelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := b.bookingService.SaveHotelBooking(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Hotel booking saved successfully")
}

// ListHotelBookings godoc
// @Summary List hotel bookings
// @Description Fetch a paginated list of the authenticated user's hotel bookings
// @Tags Bookings
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(50)
// @Success 200 {array} response_models.HotelBookingResponse
// @Security BearerAuth
// @Router /bookings/hotel [get]
func (b *BookingsController) ListHotelBookings(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	page, pageSize, ok := paginationParams(c)
	if !ok {
		return
	}

	bookings, err := b.bookingService.ListHotelBookings(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Hotel bookings fetched successfully")
}

// SaveFlightBooking godoc
// @Summary Save a flight booking
// @Description Record a confirmed flight booking for the authenticated user
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.SaveFlightBookingRequest true "Flight booking details"
// @Success 200 {object} response_models.FlightBookingResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/flight [post]
func (b *BookingsController) SaveFlightBooking(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	var req request_models.SaveFlightBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := b.bookingService.SaveFlightBooking(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Flight booking saved successfully")
}

// ListFlightBookings godoc
// @Summary List flight bookings
// @Description Fetch a paginated list of the authenticated user's flight bookings
// @Tags Bookings
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(50)
// @Success 200 {array} response_models.FlightBookingResponse
// @Security BearerAuth
// @Router /bookings/flight [get]
func (b *BookingsController) ListFlightBookings(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	page, pageSize, ok := paginationParams(c)
	if !ok {
		return
	}

	bookings, err := b.bookingService.ListFlightBookings(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Flight bookings fetched successfully")
}
