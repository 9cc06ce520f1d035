package booking

import (
	"context"
	"time"

	"camperrent/internal/domain"
)

// BookingRepository is the slice of the record store the engine needs for
// bookings: list by vehicle/user, get, reserve-if-free, delete.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	Reserve(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id int64) error
}

// VehicleRepository resolves vehicles for pricing and ownership checks.
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// Broadcaster pushes availability changes to clients watching a vehicle's
// calendar. May be nil.
type Broadcaster interface {
	BookingCreated(vehicleID int64, start, end time.Time)
	BookingCancelled(vehicleID int64, start, end time.Time)
}
