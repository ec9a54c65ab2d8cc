package venues

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateVenue(ctx context.Context, venue *Venue) error
	GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	GetVenues(ctx context.Context, city string) ([]Venue, error)
	UpdateVenue(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Venue, error)
	DeleteVenue(ctx context.Context, id uuid.UUID) error

	CreateScreen(ctx context.Context, screen *Screen, sections []ScreenSection) error
	GetScreenByID(ctx context.Context, id uuid.UUID) (*Screen, error)
	GetScreensByVenue(ctx context.Context, venueID uuid.UUID) ([]Screen, error)
	GetSectionsByScreen(ctx context.Context, screenID uuid.UUID) ([]ScreenSection, error)
	DeleteScreen(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateVenue(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *repository) GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *repository) GetVenues(ctx context.Context, city string) ([]Venue, error) {
	var venues []Venue
	db := r.db.WithContext(ctx)
	if city != "" {
		db = db.Where("city = ?", city)
	}
	err := db.Order("name ASC").Find(&venues).Error
	return venues, err
}

func (r *repository) UpdateVenue(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Venue, error) {
	var venue Venue
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&venue).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&venue).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *repository) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Venue{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateScreen(ctx context.Context, screen *Screen, sections []ScreenSection) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(screen).Error; err != nil {
			return err
		}
		for i := range sections {
			sections[i].ScreenID = screen.ID
		}
		return tx.Create(&sections).Error
	})
}

func (r *repository) GetScreenByID(ctx context.Context, id uuid.UUID) (*Screen, error) {
	var screen Screen
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&screen).Error; err != nil {
		return nil, err
	}
	return &screen, nil
}

func (r *repository) GetScreensByVenue(ctx context.Context, venueID uuid.UUID) ([]Screen, error) {
	var screens []Screen
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("name ASC").
		Find(&screens).Error
	return screens, err
}

func (r *repository) GetSectionsByScreen(ctx context.Context, screenID uuid.UUID) ([]ScreenSection, error) {
	var sections []ScreenSection
	err := r.db.WithContext(ctx).
		Where("screen_id = ?", screenID).
		Order("row_start ASC").
		Find(&sections).Error
	return sections, err
}

func (r *repository) DeleteScreen(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("screen_id = ?", id).Delete(&ScreenSection{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&Screen{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
