package booking

import (
	"context"
	"errors"
	"time"

	"camperrent/internal/domain"
	"camperrent/internal/observability"
	"camperrent/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgExclusionViolation is raised when the optional bookings_no_overlap
// exclusion constraint rejects an insert on Postgres.
const pgExclusionViolation = "23P01"

type Service struct {
	bookings BookingRepository
	vehicles VehicleRepository
	feed     Broadcaster
}

func NewService(bookings BookingRepository, vehicles VehicleRepository, feed Broadcaster) *Service {
	return &Service{
		bookings: bookings,
		vehicles: vehicles,
		feed:     feed,
	}
}

func (s *Service) getVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("get vehicle", err)
	}
	return v, nil
}

func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("get booking", err)
	}
	return b, nil
}

// Quote prices a candidate stay without touching availability. The same
// computation produces the total stored at creation time.
func (s *Service) Quote(ctx context.Context, vehicleID int64, start, end time.Time, extraIDs []string) (Quote, []domain.Extra, error) {
	extras, err := ResolveExtras(extraIDs)
	if err != nil {
		return Quote{}, nil, err
	}

	v, err := s.getVehicle(ctx, vehicleID)
	if err != nil {
		return Quote{}, nil, err
	}

	q, err := ComputeQuote(v, start, end, extras)
	if err != nil {
		return Quote{}, nil, err
	}
	return q, extras, nil
}

// IsRangeAvailable is the reactive check used while the user edits dates.
// "Not available" is a boolean, never an error.
func (s *Service) IsRangeAvailable(ctx context.Context, vehicleID int64, start, end time.Time) (bool, error) {
	if Nights(start, end) <= 0 {
		return false, ErrValidation
	}

	if _, err := s.getVehicle(ctx, vehicleID); err != nil {
		return false, err
	}

	existing, err := s.bookings.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return false, storeErr("list bookings", err)
	}
	return rangeAvailable(existing, start, end), nil
}

// MonthView renders one calendar month for a vehicle, overlaying the
// caller's in-progress selection.
func (s *Service) MonthView(ctx context.Context, vehicleID int64, year int, month time.Month, sel Selection) (MonthView, error) {
	if _, err := s.getVehicle(ctx, vehicleID); err != nil {
		return MonthView{}, err
	}

	existing, err := s.bookings.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return MonthView{}, storeErr("list bookings", err)
	}
	return BuildMonthView(year, month, time.Now().UTC(), existing, sel), nil
}

// CreateBooking runs the full booking flow: validate and price, check the
// caller, then write through the reserve-if-free path so the availability
// decision and the insert are atomic at the store boundary.
func (s *Service) CreateBooking(ctx context.Context, actor domain.Actor, req CreateBookingRequest) (*domain.Booking, error) {
	if err := CanCreateBooking(actor, req.UserID); err != nil {
		return nil, err
	}

	start, err := ParseDate(req.Start)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := ParseDate(req.End)
	if err != nil {
		return nil, ErrValidation
	}

	extras, err := ResolveExtras(req.Extras)
	if err != nil {
		return nil, err
	}

	v, err := s.getVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	q, err := ComputeQuote(v, start, end, extras)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		Reference:  uuid.NewString(),
		VehicleID:  v.ID,
		UserID:     actor.ID,
		Start:      DateOnly(start),
		End:        DateOnly(end),
		Nights:     q.Nights,
		Extras:     extras,
		TotalPrice: q.Total,
	}

	if err := s.bookings.Reserve(ctx, b); err != nil {
		switch {
		case errors.Is(err, repository.ErrRangeTaken):
			observability.BookingConflicts.Inc()
			return nil, ErrConflict
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			observability.BookingConflicts.Inc()
			return nil, ErrConflict
		}
		return nil, storeErr("reserve booking", err)
	}

	observability.BookingsCreated.Inc()
	if s.feed != nil {
		s.feed.BookingCreated(b.VehicleID, b.Start, b.End)
	}
	return b, nil
}

// GetBooking returns a booking to its customer or to the provider owning
// the booked vehicle.
func (s *Service) GetBooking(ctx context.Context, actor domain.Actor, id int64) (*domain.Booking, error) {
	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	v, err := s.getVehicle(ctx, b.VehicleID)
	if err != nil {
		return nil, err
	}

	if err := CanAccessBooking(actor, b, v); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListMyBookings(ctx context.Context, actor domain.Actor) ([]domain.Booking, error) {
	if !actor.Authenticated() {
		return nil, ErrUnauthenticated
	}

	out, err := s.bookings.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, storeErr("list bookings", err)
	}
	return out, nil
}

// CancellationQuote computes the fee the caller would pay to cancel,
// without deleting anything. Surfaced to the user for confirmation.
func (s *Service) CancellationQuote(ctx context.Context, actor domain.Actor, id int64) (int64, error) {
	b, err := s.bookingForCancel(ctx, actor, id)
	if err != nil {
		return 0, err
	}
	return CancellationFee(b, actor.Role), nil
}

// CancelBooking deletes the booking after the guard and fee computation.
// Cancellation is an unconditional delete; there is no cancelled status.
func (s *Service) CancelBooking(ctx context.Context, actor domain.Actor, id int64) (int64, error) {
	b, err := s.bookingForCancel(ctx, actor, id)
	if err != nil {
		return 0, err
	}

	fee := CancellationFee(b, actor.Role)

	if err := s.bookings.Delete(ctx, id); err != nil {
		return 0, storeErr("delete booking", err)
	}

	observability.BookingsCancelled.Inc()
	if s.feed != nil {
		s.feed.BookingCancelled(b.VehicleID, b.Start, b.End)
	}
	return fee, nil
}

func (s *Service) bookingForCancel(ctx context.Context, actor domain.Actor, id int64) (*domain.Booking, error) {
	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	v, err := s.getVehicle(ctx, b.VehicleID)
	if err != nil {
		return nil, err
	}

	if err := CanAccessBooking(actor, b, v); err != nil {
		return nil, err
	}
	return b, nil
}
