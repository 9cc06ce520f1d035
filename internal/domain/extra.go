package domain

// Extra is an optional paid add-on selectable at booking time. The catalog
// is fixed configuration, not a stored entity; bookings keep a snapshot of
// the entries chosen so later price changes never affect stored totals.
type Extra struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
