package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoHotelsInBudget   = errors.New("no hotels within budget")
	ErrGenerationFailed   = errors.New("itinerary generation failed")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")
)
