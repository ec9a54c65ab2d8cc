package announcements

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(announcement *Announcement) error
	GetByID(id uuid.UUID) (*Announcement, error)
	GetAll() ([]Announcement, error)
	GetActiveForCity(city string) ([]Announcement, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*Announcement, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(announcement *Announcement) error {
	return r.db.Create(announcement).Error
}

func (r *repository) GetByID(id uuid.UUID) (*Announcement, error) {
	var announcement Announcement
	if err := r.db.Where("id = ?", id).First(&announcement).Error; err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *repository) GetAll() ([]Announcement, error) {
	var announcements []Announcement
	err := r.db.Order("created_at DESC").Find(&announcements).Error
	return announcements, err
}

func (r *repository) GetActiveForCity(city string) ([]Announcement, error) {
	var announcements []Announcement
	query := r.db.Where("is_active = ?", true)
	if city != "" {
		query = query.Where("city = ? OR city = ''", city)
	}
	err := query.Order("created_at DESC").Find(&announcements).Error
	return announcements, err
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*Announcement, error) {
	var announcement Announcement
	if err := r.db.Where("id = ?", id).First(&announcement).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&announcement).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&Announcement{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
