package regions

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	GetDistricts(ctx context.Context) ([]District, error)
	GetCities(ctx context.Context, districtName string) ([]City, error)
	GetCityByName(ctx context.Context, name string) (*City, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetDistricts(ctx context.Context) ([]District, error) {
	var districts []District
	err := r.db.WithContext(ctx).Order("name ASC").Find(&districts).Error
	return districts, err
}

func (r *repository) GetCities(ctx context.Context, districtName string) ([]City, error) {
	var cities []City
	query := r.db.WithContext(ctx).
		Preload("District").
		Where("is_active = ?", true)

	if districtName != "" {
		query = query.Joins("JOIN districts ON districts.id = cities.district_id").
			Where("districts.name ILIKE ?", districtName)
	}

	err := query.Order("name ASC").Find(&cities).Error
	return cities, err
}

func (r *repository) GetCityByName(ctx context.Context, name string) (*City, error) {
	var city City
	err := r.db.WithContext(ctx).
		Preload("District").
		Where("name ILIKE ?", name).
		First(&city).Error
	if err != nil {
		return nil, err
	}
	return &city, nil
}
