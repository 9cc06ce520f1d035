package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables backing the repositories. The
// row models are private to this package, so migration lives here too.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&vehicleModel{},
		&bookingModel{},
	)
}
