package fleet

import (
	"context"
	"errors"

	"camperrent/internal/domain"
	"camperrent/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	vehicles VehicleRepository
	bookings BookingCounter
}

func NewService(vehicles VehicleRepository, bookings BookingCounter) *Service {
	return &Service{
		vehicles: vehicles,
		bookings: bookings,
	}
}

// CreateVehicle requires the provider role; the vehicle is owned by the
// caller and ownership never transfers.
func (s *Service) CreateVehicle(ctx context.Context, actor domain.Actor, req CreateVehicleRequest) (*domain.Vehicle, error) {
	if !actor.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if actor.Role != domain.RoleProvider {
		return nil, ErrForbidden
	}

	fuel, ok := domain.ParseFuelType(req.FuelType)
	if !ok {
		return nil, ErrInvalidFuelType
	}

	v := &domain.Vehicle{
		ProviderID:    actor.ID,
		Name:          req.Name,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		FuelType:      fuel,
		Images:        req.Images,
	}

	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) UpdateVehicle(ctx context.Context, actor domain.Actor, vehicleID int64, req UpdateVehicleRequest) (*domain.Vehicle, error) {
	v, err := s.ownedVehicle(ctx, actor, vehicleID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Description != nil {
		v.Description = *req.Description
	}
	if req.PricePerNight != nil {
		if *req.PricePerNight <= 0 {
			return nil, ErrValidation
		}
		v.PricePerNight = *req.PricePerNight
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, ErrValidation
		}
		v.Capacity = *req.Capacity
	}
	if req.FuelType != nil {
		fuel, ok := domain.ParseFuelType(*req.FuelType)
		if !ok {
			return nil, ErrInvalidFuelType
		}
		v.FuelType = fuel
	}
	if req.Images != nil {
		v.Images = req.Images
	}

	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// DeleteVehicle refuses while any booking references the vehicle. The
// store has no referential integrity of its own.
func (s *Service) DeleteVehicle(ctx context.Context, actor domain.Actor, vehicleID int64) error {
	if _, err := s.ownedVehicle(ctx, actor, vehicleID); err != nil {
		return err
	}

	cnt, err := s.bookings.CountByVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrHasBookings
	}

	return s.vehicles.Delete(ctx, vehicleID)
}

func (s *Service) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) ListVehicles(ctx context.Context, f repository.VehicleFilters) ([]domain.Vehicle, int64, error) {
	return s.vehicles.List(ctx, f)
}

func (s *Service) ListMyVehicles(ctx context.Context, actor domain.Actor) ([]domain.Vehicle, error) {
	if !actor.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if actor.Role != domain.RoleProvider {
		return nil, ErrForbidden
	}

	out, _, err := s.vehicles.List(ctx, repository.VehicleFilters{ProviderID: actor.ID})
	return out, err
}

func (s *Service) ownedVehicle(ctx context.Context, actor domain.Actor, vehicleID int64) (*domain.Vehicle, error) {
	if !actor.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if actor.Role != domain.RoleProvider {
		return nil, ErrForbidden
	}

	v, err := s.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if v.ProviderID != actor.ID {
		return nil, ErrForbidden
	}
	return v, nil
}
