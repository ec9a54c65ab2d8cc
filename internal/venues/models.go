package venues

import (
	"time"

	"github.com/google/uuid"
)

type Venue struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:255;uniqueIndex:idx_city_venue"`
	City      string    `json:"city" gorm:"not null;size:100;index;uniqueIndex:idx_city_venue"`
	Address   string    `json:"address" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Venue) TableName() string {
	return "venues"
}

type Screen struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	VenueID   uuid.UUID `json:"venue_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Screen) TableName() string {
	return "screens"
}

// ScreenSection is one contiguous band of rows sharing a category and
// price. Seat layouts are generated from the screen's sections.
type ScreenSection struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ScreenID    uuid.UUID `json:"screen_id" gorm:"type:uuid;not null;index"`
	Category    string    `json:"category" gorm:"type:varchar(20);not null"`
	Price       float64   `json:"price" gorm:"not null;check:price >= 0"`
	RowStart    string    `json:"row_start" gorm:"not null;size:5"`
	RowEnd      string    `json:"row_end" gorm:"not null;size:5"`
	SeatsPerRow int       `json:"seats_per_row" gorm:"not null;check:seats_per_row > 0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ScreenSection) TableName() string {
	return "screen_sections"
}

type CreateVenueRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	City    string `json:"city" binding:"required,max=100"`
	Address string `json:"address" binding:"omitempty,max=500"`
}

type UpdateVenueRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}

type SectionRequest struct {
	Category    string  `json:"category" binding:"required,oneof=regular premium vip recliner"`
	Price       float64 `json:"price" binding:"required,min=0"`
	RowStart    string  `json:"row_start" binding:"required,len=1"`
	RowEnd      string  `json:"row_end" binding:"required,len=1"`
	SeatsPerRow int     `json:"seats_per_row" binding:"required,min=1,max=60"`
}

type CreateScreenRequest struct {
	Name     string           `json:"name" binding:"required,min=1,max=100"`
	Sections []SectionRequest `json:"sections" binding:"required,min=1,dive"`
}

type ScreenResponse struct {
	ID        string          `json:"id"`
	VenueID   string          `json:"venue_id"`
	Name      string          `json:"name"`
	Sections  []ScreenSection `json:"sections"`
	SeatCount int64           `json:"seat_count"`
}
