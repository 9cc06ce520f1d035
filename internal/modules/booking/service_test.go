package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"camperrent/internal/domain"
	"camperrent/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) Reserve(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockVehicleRepo struct {
	mock.Mock
}

func (m *mockVehicleRepo) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

type mockFeed struct {
	mock.Mock
}

func (m *mockFeed) BookingCreated(vehicleID int64, start, end time.Time) {
	m.Called(vehicleID, start, end)
}

func (m *mockFeed) BookingCancelled(vehicleID int64, start, end time.Time) {
	m.Called(vehicleID, start, end)
}

func newTestService() (*Service, *mockBookingRepo, *mockVehicleRepo, *mockFeed) {
	bookings := new(mockBookingRepo)
	vehicles := new(mockVehicleRepo)
	feed := new(mockFeed)
	return NewService(bookings, vehicles, feed), bookings, vehicles, feed
}

var (
	testVehicle = &domain.Vehicle{ID: 3, ProviderID: 42, Name: "VW California Ocean", PricePerNight: 90}
	customer    = domain.Actor{ID: 7, Role: domain.RoleCustomer}
	provider    = domain.Actor{ID: 42, Role: domain.RoleProvider}
)

func TestCreateBooking_Success(t *testing.T) {
	svc, bookings, vehicles, feed := newTestService()
	ctx := context.Background()

	vehicles.On("GetByID", ctx, int64(3)).Return(testVehicle, nil)
	bookings.On("Reserve", ctx, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Booking).ID = 11
		}).
		Return(nil)
	feed.On("BookingCreated", int64(3), date(2024, 3, 10), date(2024, 3, 15)).Return()

	b, err := svc.CreateBooking(ctx, customer, CreateBookingRequest{
		VehicleID: 3,
		UserID:    7,
		Start:     "2024-03-10",
		End:       "2024-03-15",
		Extras:    []string{"bedding"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), b.ID)
	assert.Equal(t, int64(7), b.UserID)
	assert.Equal(t, 5, b.Nights)
	assert.Equal(t, int64(490), b.TotalPrice)
	assert.NotEmpty(t, b.Reference)
	feed.AssertExpectations(t)
	bookings.AssertExpectations(t)
}

func TestCreateBooking_ForbiddenForOtherUser(t *testing.T) {
	svc, bookings, _, _ := newTestService()

	_, err := svc.CreateBooking(context.Background(), customer, CreateBookingRequest{
		VehicleID: 3,
		UserID:    8,
		Start:     "2024-03-10",
		End:       "2024-03-15",
	})

	assert.ErrorIs(t, err, ErrForbidden)
	bookings.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
}

func TestCreateBooking_Unauthenticated(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateBooking(context.Background(), domain.Actor{}, CreateBookingRequest{
		VehicleID: 3,
		UserID:    0,
		Start:     "2024-03-10",
		End:       "2024-03-15",
	})

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCreateBooking_BadInput(t *testing.T) {
	svc, _, vehicles, _ := newTestService()
	ctx := context.Background()
	vehicles.On("GetByID", ctx, int64(3)).Return(testVehicle, nil)

	// unparseable date
	_, err := svc.CreateBooking(ctx, customer, CreateBookingRequest{
		VehicleID: 3, UserID: 7, Start: "10.03.2024", End: "2024-03-15",
	})
	assert.ErrorIs(t, err, ErrValidation)

	// end before start
	_, err = svc.CreateBooking(ctx, customer, CreateBookingRequest{
		VehicleID: 3, UserID: 7, Start: "2024-03-15", End: "2024-03-10",
	})
	assert.ErrorIs(t, err, ErrValidation)

	// unknown extra
	_, err = svc.CreateBooking(ctx, customer, CreateBookingRequest{
		VehicleID: 3, UserID: 7, Start: "2024-03-10", End: "2024-03-15",
		Extras: []string{"jacuzzi"},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBooking_VehicleNotFound(t *testing.T) {
	svc, _, vehicles, _ := newTestService()
	ctx := context.Background()
	vehicles.On("GetByID", ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateBooking(ctx, customer, CreateBookingRequest{
		VehicleID: 99, UserID: 7, Start: "2024-03-10", End: "2024-03-15",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateBooking_RangeTaken(t *testing.T) {
	svc, bookings, vehicles, feed := newTestService()
	ctx := context.Background()

	vehicles.On("GetByID", ctx, int64(3)).Return(testVehicle, nil)
	bookings.On("Reserve", ctx, mock.Anything).Return(repository.ErrRangeTaken)

	_, err := svc.CreateBooking(ctx, customer, CreateBookingRequest{
		VehicleID: 3, UserID: 7, Start: "2024-03-10", End: "2024-03-15",
	})

	assert.ErrorIs(t, err, ErrConflict)
	feed.AssertNotCalled(t, "BookingCreated", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_ExclusionConstraint(t *testing.T) {
	svc, bookings, vehicles, _ := newTestService()
	ctx := context.Background()

	vehicles.On("GetByID", ctx, int64(3)).Return(testVehicle, nil)
	bookings.On("Reserve", ctx, mock.Anything).Return(&pgconn.PgError{Code: pgExclusionViolation})

	_, err := svc.CreateBooking(ctx, customer, CreateBookingRequest{
		VehicleID: 3, UserID: 7, Start: "2024-03-10", End: "2024-03-15",
	})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateBooking_StoreFailure(t *testing.T) {
	svc, bookings, vehicles, _ := newTestService()
	ctx := context.Background()

	vehicles.On("GetByID", ctx, int64(3)).Return(testVehicle, nil)
	bookings.On("Reserve", ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := svc.CreateBooking(ctx, customer, CreateBookingRequest{
		VehicleID: 3, UserID: 7, Start: "2024-03-10", End: "2024-03-15",
	})

	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "reserve booking", se.Op)
}

func TestIsRangeAvailable(t *testing.T) {
	svc, bookings, vehicles, _ := newTestService()
	ctx := context.Background()

	vehicles.On("GetByID", ctx, int64(3)).Return(testVehicle, nil)
	bookings.On("ListByVehicle", ctx, int64(3)).Return([]domain.Booking{
		{VehicleID: 3, Start: date(2024, 3, 10), End: date(2024, 3, 15)},
	}, nil)

	ok, err := svc.IsRangeAvailable(ctx, 3, date(2024, 3, 14), date(2024, 3, 18))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsRangeAvailable(ctx, 3, date(2024, 3, 16), date(2024, 3, 20))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.IsRangeAvailable(ctx, 3, date(2024, 3, 16), date(2024, 3, 16))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestQuote(t *testing.T) {
	svc, _, vehicles, _ := newTestService()
	ctx := context.Background()
	vehicles.On("GetByID", ctx, int64(3)).Return(testVehicle, nil)

	q, extras, err := svc.Quote(ctx, 3, date(2024, 3, 10), date(2024, 3, 15), []string{"bedding"})

	require.NoError(t, err)
	require.Len(t, extras, 1)
	assert.Equal(t, int64(490), q.Total)
}

func TestGetBooking_Access(t *testing.T) {
	svc, bookings, vehicles, _ := newTestService()
	ctx := context.Background()

	stored := &domain.Booking{ID: 11, UserID: 7, VehicleID: 3, TotalPrice: 465}
	bookings.On("GetByID", ctx, int64(11)).Return(stored, nil)
	vehicles.On("GetByID", ctx, int64(3)).Return(testVehicle, nil)

	b, err := svc.GetBooking(ctx, customer, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(11), b.ID)

	b, err = svc.GetBooking(ctx, provider, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(11), b.ID)

	_, err = svc.GetBooking(ctx, domain.Actor{ID: 8, Role: domain.RoleCustomer}, 11)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetBooking_NotFound(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	ctx := context.Background()
	bookings.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetBooking(ctx, customer, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelBooking_CustomerPaysFee(t *testing.T) {
	svc, bookings, vehicles, feed := newTestService()
	ctx := context.Background()

	stored := &domain.Booking{
		ID: 11, UserID: 7, VehicleID: 3,
		Start: date(2024, 3, 10), End: date(2024, 3, 15),
		TotalPrice: 465,
	}
	bookings.On("GetByID", ctx, int64(11)).Return(stored, nil)
	vehicles.On("GetByID", ctx, int64(3)).Return(testVehicle, nil)
	bookings.On("Delete", ctx, int64(11)).Return(nil)
	feed.On("BookingCancelled", int64(3), stored.Start, stored.End).Return()

	fee, err := svc.CancelBooking(ctx, customer, 11)

	require.NoError(t, err)
	assert.Equal(t, int64(90), fee)
	bookings.AssertExpectations(t)
	feed.AssertExpectations(t)
}

func TestCancelBooking_ProviderFree(t *testing.T) {
	svc, bookings, vehicles, feed := newTestService()
	ctx := context.Background()

	stored := &domain.Booking{
		ID: 11, UserID: 7, VehicleID: 3,
		Start: date(2024, 3, 10), End: date(2024, 3, 15),
		TotalPrice: 465,
	}
	bookings.On("GetByID", ctx, int64(11)).Return(stored, nil)
	vehicles.On("GetByID", ctx, int64(3)).Return(testVehicle, nil)
	bookings.On("Delete", ctx, int64(11)).Return(nil)
	feed.On("BookingCancelled", int64(3), stored.Start, stored.End).Return()

	fee, err := svc.CancelBooking(ctx, provider, 11)

	require.NoError(t, err)
	assert.Equal(t, int64(0), fee)
}

func TestCancelBooking_StrangerForbidden(t *testing.T) {
	svc, bookings, vehicles, _ := newTestService()
	ctx := context.Background()

	stored := &domain.Booking{ID: 11, UserID: 7, VehicleID: 3, TotalPrice: 465}
	bookings.On("GetByID", ctx, int64(11)).Return(stored, nil)
	vehicles.On("GetByID", ctx, int64(3)).Return(testVehicle, nil)

	_, err := svc.CancelBooking(ctx, domain.Actor{ID: 8, Role: domain.RoleCustomer}, 11)

	assert.ErrorIs(t, err, ErrForbidden)
	bookings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCancellationQuote_DoesNotDelete(t *testing.T) {
	svc, bookings, vehicles, _ := newTestService()
	ctx := context.Background()

	stored := &domain.Booking{ID: 11, UserID: 7, VehicleID: 3, TotalPrice: 465}
	bookings.On("GetByID", ctx, int64(11)).Return(stored, nil)
	vehicles.On("GetByID", ctx, int64(3)).Return(testVehicle, nil)

	fee, err := svc.CancellationQuote(ctx, customer, 11)

	require.NoError(t, err)
	assert.Equal(t, int64(90), fee)
	bookings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestListMyBookings(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	ctx := context.Background()

	bookings.On("ListByUser", ctx, int64(7)).Return([]domain.Booking{{ID: 1}, {ID: 2}}, nil)

	out, err := svc.ListMyBookings(ctx, customer)
	require.NoError(t, err)
	assert.Len(t, out, 2)

	_, err = svc.ListMyBookings(ctx, domain.Actor{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
