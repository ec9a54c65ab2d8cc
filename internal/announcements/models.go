package announcements

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a banner shown on the landing screen, optionally
// scoped to a single city and bound to a display window.
type Announcement struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title     string     `json:"title" gorm:"not null;size:200"`
	Message   string     `json:"message" gorm:"not null;size:1000"`
	City      string     `json:"city" gorm:"size:100;index"` // empty means all cities
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	StartsAt  *time.Time `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
	CreatedBy uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Announcement) TableName() string {
	return "announcements"
}

// VisibleAt reports whether the announcement should be shown at t.
func (a *Announcement) VisibleAt(t time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.StartsAt != nil && t.Before(*a.StartsAt) {
		return false
	}
	if a.EndsAt != nil && t.After(*a.EndsAt) {
		return false
	}
	return true
}

type CreateAnnouncementRequest struct {
	Title    string     `json:"title" binding:"required,max=200"`
	Message  string     `json:"message" binding:"required,max=1000"`
	City     string     `json:"city" binding:"omitempty,max=100"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

type UpdateAnnouncementRequest struct {
	Title    *string    `json:"title" binding:"omitempty,max=200"`
	Message  *string    `json:"message" binding:"omitempty,max=1000"`
	City     *string    `json:"city" binding:"omitempty,max=100"`
	IsActive *bool      `json:"is_active"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}
