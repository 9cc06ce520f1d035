package repository

import (
	"context"
	"encoding/json"
	"time"

	"camperrent/internal/domain"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// VehicleFilters narrows List the way the record store's query parameters
// did (vehicles by provider).
type VehicleFilters struct {
	ProviderID int64
	Limit      int
	Offset     int
}

type vehicleModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	ProviderID    int64     `gorm:"column:provider_id;index"`
	Name          string    `gorm:"column:name"`
	Description   string    `gorm:"column:description"`
	PricePerNight int64     `gorm:"column:price_per_night"`
	Capacity      int       `gorm:"column:capacity"`
	FuelType      string    `gorm:"column:fuel_type"`
	Images        string    `gorm:"column:images;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (vehicleModel) TableName() string { return "vehicles" }

func toDomainVehicle(m vehicleModel) *domain.Vehicle {
	var images []string
	if m.Images != "" {
		_ = json.Unmarshal([]byte(m.Images), &images)
	}

	return &domain.Vehicle{
		ID:            m.ID,
		ProviderID:    m.ProviderID,
		Name:          m.Name,
		Description:   m.Description,
		PricePerNight: m.PricePerNight,
		Capacity:      m.Capacity,
		FuelType:      domain.FuelType(m.FuelType),
		Images:        images,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toVehicleModel(v *domain.Vehicle) vehicleModel {
	var images string
	if len(v.Images) > 0 {
		raw, _ := json.Marshal(v.Images)
		images = string(raw)
	}

	return vehicleModel{
		ID:            v.ID,
		ProviderID:    v.ProviderID,
		Name:          v.Name,
		Description:   v.Description,
		PricePerNight: v.PricePerNight,
		Capacity:      v.Capacity,
		FuelType:      string(v.FuelType),
		Images:        images,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVehicle(m)
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var m vehicleModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVehicle(m), nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVehicle(m)
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&vehicleModel{}, id).Error
}

func (r *VehicleRepository) List(ctx context.Context, f VehicleFilters) ([]domain.Vehicle, int64, error) {
	q := r.db.WithContext(ctx).Model(&vehicleModel{})
	if f.ProviderID != 0 {
		q = q.Where("provider_id = ?", f.ProviderID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var models []vehicleModel
	if err := q.Order("id").Find(&models).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Vehicle, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainVehicle(m))
	}
	return out, total, nil
}
