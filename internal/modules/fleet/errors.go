package fleet

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("vehicle not found")
	ErrHasBookings     = errors.New("vehicle has active bookings")
	ErrInvalidFuelType = errors.New("invalid fuel type")
)
