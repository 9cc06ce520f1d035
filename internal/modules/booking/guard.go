package booking

import "camperrent/internal/domain"

// The guard mediates every booking mutation against the caller's identity
// and role. Checks are synchronous and local once the entities are
// fetched; the Actor is passed in explicitly, never read from ambient
// session state.

// CanCreateBooking requires an authenticated caller booking for
// themselves. There is no booking-on-behalf-of.
func CanCreateBooking(a domain.Actor, forUserID int64) error {
	if !a.Authenticated() {
		return ErrUnauthenticated
	}
	if forUserID != a.ID {
		return ErrForbidden
	}
	return nil
}

// CanAccessBooking allows the customer who owns the booking and the
// provider who owns the booked vehicle. The same rule governs viewing and
// cancelling.
func CanAccessBooking(a domain.Actor, b *domain.Booking, v *domain.Vehicle) error {
	if !a.Authenticated() {
		return ErrUnauthenticated
	}
	if b.UserID == a.ID {
		return nil
	}
	if a.Role == domain.RoleProvider && v != nil && v.ProviderID == a.ID {
		return nil
	}
	return ErrForbidden
}
