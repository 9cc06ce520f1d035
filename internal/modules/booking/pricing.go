package booking

import (
	"time"

	"camperrent/internal/domain"
)

// ServiceFee is the flat per-booking administrative charge, independent of
// nights and extras.
const ServiceFee int64 = 15

// Quote breaks a booking price down. All amounts are whole currency units;
// integer arithmetic only, so the live preview and the stored total agree
// bit-for-bit.
type Quote struct {
	Nights      int   `json:"nights"`
	Base        int64 `json:"base"`
	ExtrasTotal int64 `json:"extras_total"`
	ServiceFee  int64 `json:"service_fee"`
	Total       int64 `json:"total"`
}

// ExtrasTotal sums the prices of the selected add-ons.
func ExtrasTotal(extras []domain.Extra) int64 {
	var total int64
	for _, e := range extras {
		total += e.Price
	}
	return total
}

// ComputeQuote prices a stay. Pure: same inputs always yield the same
// quote. Fails with ErrValidation when the range covers no nights.
func ComputeQuote(v *domain.Vehicle, start, end time.Time, extras []domain.Extra) (Quote, error) {
	nights := Nights(start, end)
	if nights <= 0 {
		return Quote{}, ErrValidation
	}

	base := int64(nights) * v.PricePerNight
	extrasTotal := ExtrasTotal(extras)

	return Quote{
		Nights:      nights,
		Base:        base,
		ExtrasTotal: extrasTotal,
		ServiceFee:  ServiceFee,
		Total:       base + extrasTotal + ServiceFee,
	}, nil
}
