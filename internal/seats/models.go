package seats

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusSelected  Status = "selected"
	StatusBooked    Status = "booked"
	StatusDisabled  Status = "disabled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusSelected, StatusBooked, StatusDisabled:
		return true
	}
	return false
}

type Category string

const (
	CategoryRegular  Category = "regular"
	CategoryPremium  Category = "premium"
	CategoryVIP      Category = "vip"
	CategoryRecliner Category = "recliner"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryRegular, CategoryPremium, CategoryVIP, CategoryRecliner:
		return true
	}
	return false
}

// Seat is one physical seat of a screen. The stored status is either
// available or disabled; booked and selected are overlaid per show at
// read time and never written back here.
type Seat struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ScreenID  uuid.UUID `json:"screen_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_screen_row_number"`
	Row       string    `json:"row" gorm:"not null;size:5;uniqueIndex:idx_screen_row_number"`
	Number    int       `json:"number" gorm:"not null;check:number > 0;uniqueIndex:idx_screen_row_number"`
	Category  Category  `json:"category" gorm:"type:varchar(20);not null"`
	Price     float64   `json:"price" gorm:"not null;check:price >= 0"`
	Status    Status    `json:"status" gorm:"type:varchar(20);default:'available'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Seat) TableName() string {
	return "seats"
}

// Label renders the user-facing seat label, e.g. "F12".
func (s *Seat) Label() string {
	return s.Row + strconv.Itoa(s.Number)
}
