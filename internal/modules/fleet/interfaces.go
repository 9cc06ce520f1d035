package fleet

import (
	"context"

	"camperrent/internal/domain"
	"camperrent/internal/repository"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f repository.VehicleFilters) ([]domain.Vehicle, int64, error)
}

// BookingCounter answers whether bookings reference a vehicle. The record
// store performs no referential checks, so deletion gating lives here.
type BookingCounter interface {
	CountByVehicle(ctx context.Context, vehicleID int64) (int64, error)
}
