package shows

import (
	"time"

	"github.com/google/uuid"
)

// Kind classifies what a show screens. Movies carry a different
// convenience fee policy than the live kinds.
type Kind string

const (
	KindMovie Kind = "movie"
	KindEvent Kind = "event"
	KindSport Kind = "sport"
	KindPlay  Kind = "play"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindMovie, KindEvent, KindSport, KindPlay:
		return true
	}
	return false
}

// IsMovie selects the movie fee policy; every live kind shares the
// event policy.
func (k Kind) IsMovie() bool {
	return k == KindMovie
}

type Show struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string     `json:"title" gorm:"not null;size:255"`
	Description string     `json:"description" gorm:"type:text"`
	Kind        Kind       `json:"kind" gorm:"type:varchar(20);not null;index"`
	Language    string     `json:"language" gorm:"size:50"`
	DurationMin int        `json:"duration_min" gorm:"check:duration_min >= 0"`
	Certificate string     `json:"certificate" gorm:"size:10"` // U, UA, A
	City        string     `json:"city" gorm:"not null;size:100;index"`
	VenueID     uuid.UUID  `json:"venue_id" gorm:"type:uuid;not null;index"`
	ScreenID    uuid.UUID  `json:"screen_id" gorm:"type:uuid;not null;index"`
	ShowTime    time.Time  `json:"show_time" gorm:"not null"`
	PosterURL   string     `json:"poster_url" gorm:"size:500"`
	Status      ShowStatus `json:"status" gorm:"type:varchar(20);default:'draft'"`
	CreatedBy   uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	UpdatedBy   *uuid.UUID `json:"updated_by" gorm:"type:uuid"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Show) TableName() string {
	return "shows"
}

type ShowResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Kind        Kind       `json:"kind"`
	Language    string     `json:"language"`
	DurationMin int        `json:"duration_min"`
	Certificate string     `json:"certificate"`
	City        string     `json:"city"`
	VenueID     string     `json:"venue_id"`
	ScreenID    string     `json:"screen_id"`
	ShowTime    time.Time  `json:"show_time"`
	PosterURL   string     `json:"poster_url"`
	Status      ShowStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (s *Show) ToResponse() ShowResponse {
	return ShowResponse{
		ID:          s.ID.String(),
		Title:       s.Title,
		Description: s.Description,
		Kind:        s.Kind,
		Language:    s.Language,
		DurationMin: s.DurationMin,
		Certificate: s.Certificate,
		City:        s.City,
		VenueID:     s.VenueID.String(),
		ScreenID:    s.ScreenID.String(),
		ShowTime:    s.ShowTime,
		PosterURL:   s.PosterURL,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type CreateShowRequest struct {
	Title       string    `json:"title" binding:"required,min=2,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	Kind        string    `json:"kind" binding:"required,oneof=movie event sport play"`
	Language    string    `json:"language" binding:"omitempty,max=50"`
	DurationMin int       `json:"duration_min" binding:"omitempty,min=0,max=600"`
	Certificate string    `json:"certificate" binding:"omitempty,max=10"`
	City        string    `json:"city" binding:"required,max=100"`
	VenueID     string    `json:"venue_id" binding:"required,uuid"`
	ScreenID    string    `json:"screen_id" binding:"required,uuid"`
	ShowTime    time.Time `json:"show_time" binding:"required"`
	PosterURL   string    `json:"poster_url" binding:"omitempty,url"`
}

type UpdateShowRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=2,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Language    *string    `json:"language" binding:"omitempty,max=50"`
	DurationMin *int       `json:"duration_min" binding:"omitempty,min=0,max=600"`
	Certificate *string    `json:"certificate" binding:"omitempty,max=10"`
	ShowTime    *time.Time `json:"show_time"`
	PosterURL   *string    `json:"poster_url" binding:"omitempty,url"`
	Status      *string    `json:"status" binding:"omitempty,oneof=draft published cancelled completed"`
}

// ShowListQuery drives the listing filters: city and kind are exact
// matches, search is a case-insensitive contains on the title, and
// date_from keeps shows at or after the given day.
type ShowListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	City     string `form:"city"`
	Kind     string `form:"kind" binding:"omitempty,oneof=movie event sport play"`
	Search   string `form:"search"`
	DateFrom string `form:"date_from"`
	VenueID  string `form:"venue_id" binding:"omitempty,uuid"`
	Status   string `form:"status" binding:"omitempty,oneof=draft published cancelled completed"`
}

type PaginatedShows struct {
	Shows      []ShowResponse `json:"shows"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}
