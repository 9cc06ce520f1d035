package booking

import "camperrent/internal/domain"

// catalog is the fixed add-on configuration. It is not a stored entity;
// bookings snapshot the chosen entries so later edits here never change
// stored totals.
var catalog = []domain.Extra{
	{ID: "bedding", Name: "Bedding & linen set", Price: 25},
	{ID: "camping-furniture", Name: "Camping table & chairs", Price: 30},
	{ID: "bike-rack", Name: "Bike rack", Price: 35},
	{ID: "child-seat", Name: "Child seat", Price: 20},
	{ID: "insurance-plus", Name: "Extended insurance", Price: 45},
}

// Catalog returns the selectable add-ons.
func Catalog() []domain.Extra {
	out := make([]domain.Extra, len(catalog))
	copy(out, catalog)
	return out
}

// ResolveExtras maps selected ids to catalog entries. Unknown ids fail
// with ErrValidation rather than being silently dropped.
func ResolveExtras(ids []string) ([]domain.Extra, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	out := make([]domain.Extra, 0, len(ids))
	for _, id := range ids {
		found := false
		for _, e := range catalog {
			if e.ID == id {
				out = append(out, e)
				found = true
				break
			}
		}
		if !found {
			return nil, ErrValidation
		}
	}
	return out, nil
}
