package domain

import "time"

// Booking reserves a vehicle for the closed date interval [Start, End].
// Bookings are never mutated in place: cancellation deletes the record,
// there is no status column.
type Booking struct {
	ID         int64     `json:"id"`
	Reference  string    `json:"reference"`
	VehicleID  int64     `json:"vehicle_id" validate:"required"`
	UserID     int64     `json:"user_id" validate:"required"`
	Start      time.Time `json:"start" validate:"required"`
	End        time.Time `json:"end" validate:"required"`
	Nights     int       `json:"nights"`
	Extras     []Extra   `json:"extras,omitempty"`
	TotalPrice int64     `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}
