package booking

import (
	"testing"

	"camperrent/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCancellationFee_Customer(t *testing.T) {
	// totalPrice 465, no extras, service fee 15 -> base 450 -> fee 90
	b := &domain.Booking{TotalPrice: 465}
	assert.Equal(t, int64(90), CancellationFee(b, domain.RoleCustomer))
}

func TestCancellationFee_CustomerIgnoresExtras(t *testing.T) {
	// the penalty applies to the nightly portion only
	b := &domain.Booking{
		TotalPrice: 490,
		Extras:     []domain.Extra{{ID: "bedding", Price: 25}},
	}
	assert.Equal(t, int64(90), CancellationFee(b, domain.RoleCustomer))
}

func TestCancellationFee_RoundsHalfUp(t *testing.T) {
	// base 453 -> 90.6 -> 91
	b := &domain.Booking{TotalPrice: 453 + ServiceFee}
	assert.Equal(t, int64(91), CancellationFee(b, domain.RoleCustomer))

	// base 452 -> 90.4 -> 90
	b = &domain.Booking{TotalPrice: 452 + ServiceFee}
	assert.Equal(t, int64(90), CancellationFee(b, domain.RoleCustomer))
}

func TestCancellationFee_ProviderAlwaysFree(t *testing.T) {
	bookings := []*domain.Booking{
		{TotalPrice: 465},
		{TotalPrice: 10015, Extras: []domain.Extra{{Price: 45}}},
		{TotalPrice: 15},
	}

	for _, b := range bookings {
		assert.Equal(t, int64(0), CancellationFee(b, domain.RoleProvider))
	}
}

func TestCancellationFee_NeverNegative(t *testing.T) {
	// degenerate stored totals must not produce a negative fee
	b := &domain.Booking{TotalPrice: 10}
	assert.Equal(t, int64(0), CancellationFee(b, domain.RoleCustomer))
}
