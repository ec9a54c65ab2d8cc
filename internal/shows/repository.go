package shows

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(show *Show) error
	GetByID(id uuid.UUID) (*Show, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*Show, error)
	Delete(id uuid.UUID) error
	GetAll(query ShowListQuery) ([]Show, int64, error)
	GetByVenue(venueID uuid.UUID) ([]Show, error)
	GetUpcoming(city string, limit int) ([]Show, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(show *Show) error {
	return r.db.Create(show).Error
}

func (r *repository) GetByID(id uuid.UUID) (*Show, error) {
	var show Show
	if err := r.db.Where("id = ?", id).First(&show).Error; err != nil {
		return nil, err
	}
	return &show, nil
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*Show, error) {
	var show Show
	if err := r.db.Where("id = ?", id).First(&show).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&show).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("id = ?", id).First(&show).Error; err != nil {
		return nil, err
	}
	return &show, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&Show{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) GetAll(query ShowListQuery) ([]Show, int64, error) {
	var shows []Show
	var totalCount int64

	db := r.db.Model(&Show{})

	if query.City != "" {
		db = db.Where("city = ?", query.City)
	}
	if query.Kind != "" {
		db = db.Where("kind = ?", query.Kind)
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.VenueID != "" {
		db = db.Where("venue_id = ?", query.VenueID)
	}
	if query.Search != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(query.Search)+"%")
	}
	if query.DateFrom != "" {
		if dateFrom, err := time.Parse("2006-01-02", query.DateFrom); err == nil {
			db = db.Where("show_time >= ?", dateFrom)
		}
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}
	offset := (query.Page - 1) * query.Limit

	err := db.Order("show_time ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&shows).Error

	return shows, totalCount, err
}

func (r *repository) GetByVenue(venueID uuid.UUID) ([]Show, error) {
	var shows []Show
	err := r.db.Where("venue_id = ?", venueID).
		Order("show_time ASC").
		Find(&shows).Error
	return shows, err
}

func (r *repository) GetUpcoming(city string, limit int) ([]Show, error) {
	var shows []Show
	db := r.db.Where("show_time > ? AND status = ?", time.Now(), ShowStatusPublished)
	if city != "" {
		db = db.Where("city = ?", city)
	}
	err := db.Order("show_time ASC").Limit(limit).Find(&shows).Error
	return shows, err
}
