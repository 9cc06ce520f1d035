package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"camperrent/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrRangeTaken is returned by Reserve when the requested date range
// overlaps an existing booking at write time.
var ErrRangeTaken = errors.New("date range already booked")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	Reference  string    `gorm:"column:reference;uniqueIndex"`
	VehicleID  int64     `gorm:"column:vehicle_id;index"`
	UserID     int64     `gorm:"column:user_id;index"`
	StartDate  time.Time `gorm:"column:start_date"`
	EndDate    time.Time `gorm:"column:end_date"`
	Nights     int       `gorm:"column:nights"`
	Extras     string    `gorm:"column:extras;type:text"`
	TotalPrice int64     `gorm:"column:total_price"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var extras []domain.Extra
	if m.Extras != "" {
		_ = json.Unmarshal([]byte(m.Extras), &extras)
	}

	return &domain.Booking{
		ID:         m.ID,
		Reference:  m.Reference,
		VehicleID:  m.VehicleID,
		UserID:     m.UserID,
		Start:      m.StartDate,
		End:        m.EndDate,
		Nights:     m.Nights,
		Extras:     extras,
		TotalPrice: m.TotalPrice,
		CreatedAt:  m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var extras string
	if len(b.Extras) > 0 {
		raw, _ := json.Marshal(b.Extras)
		extras = string(raw)
	}

	return bookingModel{
		ID:         b.ID,
		Reference:  b.Reference,
		VehicleID:  b.VehicleID,
		UserID:     b.UserID,
		StartDate:  b.Start,
		EndDate:    b.End,
		Nights:     b.Nights,
		Extras:     extras,
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
	}
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Booking, error) {
	return r.list(ctx, "vehicle_id = ?", vehicleID)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *BookingRepository) list(ctx context.Context, cond string, arg int64) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).Where(cond, arg).Order("start_date").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) CountByVehicle(ctx context.Context, vehicleID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("vehicle_id = ?", vehicleID).Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

// CountOverlapping applies the closed-interval overlap test in SQL:
// [start_date, end_date] conflicts with [start, end] iff
// start_date <= end AND end_date >= start.
func (r *BookingRepository) CountOverlapping(ctx context.Context, vehicleID int64, start, end time.Time) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("vehicle_id = ? AND start_date <= ? AND end_date >= ?", vehicleID, end, start).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

// Reserve inserts the booking only if its range is still free, re-running
// the overlap check inside a transaction so the read-time availability
// check cannot be invalidated by a concurrent writer. On Postgres the
// vehicle row is locked to serialize writers per vehicle; SQLite has a
// single writer already and rejects FOR UPDATE.
func (r *BookingRepository) Reserve(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vq := tx.Model(&vehicleModel{}).Select("id").Where("id = ?", b.VehicleID)
		if tx.Dialector.Name() == "postgres" {
			vq = vq.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var vehicleID int64
		if err := vq.Take(&vehicleID).Error; err != nil {
			return err
		}

		var cnt int64
		if err := tx.Model(&bookingModel{}).
			Where("vehicle_id = ? AND start_date <= ? AND end_date >= ?", b.VehicleID, b.End, b.Start).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrRangeTaken
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)
		return nil
	})
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&bookingModel{}, id).Error
}
