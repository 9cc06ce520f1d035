package main

import (
	"context"
	"log"
	"time"

	"camperrent/internal/database"
	"camperrent/internal/domain"
	"camperrent/internal/modules/booking"
	"camperrent/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("camperrent.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (bookings first to respect references)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM vehicles")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	vehicles := repository.NewVehicleRepository(db)
	bookings := repository.NewBookingRepository(db)

	log.Println("Creating users...")
	provider := seedUser(ctx, users, "fleet@camperrent.de", "provider123", "Nordlicht Camper GmbH", domain.RoleProvider)
	provider2 := seedUser(ctx, users, "vans@camperrent.de", "provider123", "Küstenvans", domain.RoleProvider)
	customer := seedUser(ctx, users, "anna@example.com", "customer123", "Anna Schmidt", domain.RoleCustomer)
	seedUser(ctx, users, "jonas@example.com", "customer123", "Jonas Weber", domain.RoleCustomer)

	log.Println("Creating vehicles...")
	camper := &domain.Vehicle{
		ProviderID:    provider.ID,
		Name:          "VW California Ocean",
		Description:   "Compact camper for two, pop-up roof, full kitchen.",
		PricePerNight: 90,
		Capacity:      2,
		FuelType:      domain.FuelDiesel,
		Images:        []string{"/img/california-1.jpg", "/img/california-2.jpg"},
	}
	if err := vehicles.Create(ctx, camper); err != nil {
		log.Fatal(err)
	}

	van := &domain.Vehicle{
		ProviderID:    provider2.ID,
		Name:          "Mercedes Marco Polo",
		Description:   "Family van with four berths and a solar panel.",
		PricePerNight: 120,
		Capacity:      4,
		FuelType:      domain.FuelHybrid,
	}
	if err := vehicles.Create(ctx, van); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating bookings...")
	start := booking.DateOnly(time.Now().UTC().AddDate(0, 0, 14))
	end := start.AddDate(0, 0, 5)
	seedBooking(ctx, bookings, camper, customer.ID, start, end)

	log.Println("Seed complete.")
}

func seedUser(ctx context.Context, users *repository.UserRepository, email, password, name string, role domain.UserRole) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	}
	if err := users.Create(ctx, u); err != nil {
		log.Fatal(err)
	}
	return u
}

func seedBooking(ctx context.Context, bookings *repository.BookingRepository, v *domain.Vehicle, userID int64, start, end time.Time) {
	extras, _ := booking.ResolveExtras([]string{"bedding"})
	quote, err := booking.ComputeQuote(v, start, end, extras)
	if err != nil {
		log.Fatal(err)
	}

	b := &domain.Booking{
		Reference:  "seed-demo-booking",
		VehicleID:  v.ID,
		UserID:     userID,
		Start:      start,
		End:        end,
		Nights:     quote.Nights,
		Extras:     extras,
		TotalPrice: quote.Total,
	}
	if err := bookings.Reserve(ctx, b); err != nil {
		log.Fatal(err)
	}
}
