package fleet

type CreateVehicleRequest struct {
	Name          string   `json:"name" binding:"required" validate:"required"`
	Description   string   `json:"description"`
	PricePerNight int64    `json:"price_per_night" binding:"required,gt=0" validate:"required,gt=0"`
	Capacity      int      `json:"capacity" binding:"required,gt=0" validate:"required,gt=0"`
	FuelType      string   `json:"fuel_type" binding:"required" validate:"required"`
	Images        []string `json:"images"`
}

type UpdateVehicleRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	PricePerNight *int64   `json:"price_per_night"`
	Capacity      *int     `json:"capacity"`
	FuelType      *string  `json:"fuel_type"`
	Images        []string `json:"images"`
}
