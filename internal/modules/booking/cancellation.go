package booking

import "camperrent/internal/domain"

// Customers forfeit a fifth of the nightly rental portion; extras and the
// service fee are never penalized. Providers cancel free (vehicle
// unavailability is on them).
const cancellationPenaltyPct = 20

// CancellationFee computes the penalty charged when a booking is rescinded
// by the given role. The result must be shown to the caller for
// confirmation before the booking is deleted.
func CancellationFee(b *domain.Booking, cancellingRole domain.UserRole) int64 {
	if cancellingRole == domain.RoleProvider {
		return 0
	}

	base := b.TotalPrice - ExtrasTotal(b.Extras) - ServiceFee
	if base <= 0 {
		return 0
	}

	// round(base * 20%) in integer arithmetic, half up.
	return (base*cancellationPenaltyPct + 50) / 100
}
