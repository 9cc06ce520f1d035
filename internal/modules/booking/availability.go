package booking

import (
	"time"

	"camperrent/internal/domain"
)

// Overlaps applies the closed-interval overlap test: [bStart, bEnd] and
// [start, end] conflict iff start <= bEnd AND end >= bStart. Boundaries
// count, so two bookings may not share a day; a range starting the day
// after another ends is allowed (turnover day).
func Overlaps(bStart, bEnd, start, end time.Time) bool {
	return !start.After(bEnd) && !end.Before(bStart)
}

// HasOverlap reports whether an existing booking conflicts with the
// candidate range.
func HasOverlap(b domain.Booking, start, end time.Time) bool {
	return Overlaps(DateOnly(b.Start), DateOnly(b.End), DateOnly(start), DateOnly(end))
}

// rangeAvailable scans a booking set for conflicts with the candidate
// range. Linear is fine at this volume; the contract allows swapping in a
// sorted interval index behind the same signature.
func rangeAvailable(existing []domain.Booking, start, end time.Time) bool {
	for _, b := range existing {
		if HasOverlap(b, start, end) {
			return false
		}
	}
	return true
}

// dayBooked reports whether a single day falls inside any existing booking.
func dayBooked(existing []domain.Booking, day time.Time) bool {
	return !rangeAvailable(existing, day, day)
}
