package domain

import "time"

type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

func ParseFuelType(s string) (FuelType, bool) {
	switch FuelType(s) {
	case FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid:
		return FuelType(s), true
	}
	return "", false
}

// Vehicle is a rentable camper owned by exactly one provider. ProviderID is
// set at creation and never transferred.
type Vehicle struct {
	ID            int64     `json:"id"`
	ProviderID    int64     `json:"provider_id"`
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description,omitempty"`
	PricePerNight int64     `json:"price_per_night" validate:"required,gt=0"`
	Capacity      int       `json:"capacity" validate:"required,gt=0"`
	FuelType      FuelType  `json:"fuel_type"`
	Images        []string  `json:"images,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
