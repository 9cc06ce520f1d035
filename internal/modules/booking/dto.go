package booking

type QuoteRequest struct {
	VehicleID int64    `json:"vehicle_id" binding:"required"`
	Start     string   `json:"start" binding:"required"`
	End       string   `json:"end" binding:"required"`
	Extras    []string `json:"extras"`
}

type CreateBookingRequest struct {
	VehicleID int64    `json:"vehicle_id" binding:"required"`
	UserID    int64    `json:"user_id" binding:"required"`
	Start     string   `json:"start" binding:"required"`
	End       string   `json:"end" binding:"required"`
	Extras    []string `json:"extras"`
}
