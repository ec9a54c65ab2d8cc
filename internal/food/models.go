package food

import (
	"time"

	"github.com/google/uuid"
)

// LineStatus is the kitchen-facing status of one food line item.
type LineStatus string

const (
	StatusPending   LineStatus = "Pending"
	StatusPreparing LineStatus = "Preparing"
	StatusReady     LineStatus = "Ready"
	StatusDelivered LineStatus = "Delivered"
)

func (s LineStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered:
		return true
	}
	return false
}

// FoodItem is a catalog entry orderable alongside a booking.
type FoodItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:150"`
	Category    string    `json:"category" gorm:"not null;size:50;index"` // snacks, beverages, combos
	Price       float64   `json:"price" gorm:"not null;check:price >= 0"`
	ImageURL    string    `json:"image_url" gorm:"size:500"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (FoodItem) TableName() string {
	return "food_items"
}

// FoodLineItem is one ordered item attached to a booking. Name,
// category and price are snapshotted from the catalog at order time so
// later catalog edits do not rewrite history.
type FoodLineItem struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BookingID uuid.UUID  `json:"booking_id" gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID  `json:"item_id" gorm:"type:uuid;not null"`
	FoodName  string     `json:"food_name" gorm:"not null;size:150"`
	Category  string     `json:"category" gorm:"not null;size:50"`
	Quantity  int        `json:"quantity" gorm:"not null;check:quantity > 0"`
	Price     float64    `json:"price" gorm:"not null;check:price >= 0"`
	Status    LineStatus `json:"status" gorm:"type:varchar(20);default:'Pending'"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (FoodLineItem) TableName() string {
	return "food_line_items"
}

type CreateItemRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=150"`
	Category string  `json:"category" binding:"required,max=50"`
	Price    float64 `json:"price" binding:"required,min=0"`
	ImageURL string  `json:"image_url" binding:"omitempty,url"`
}

type UpdateItemRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=150"`
	Category    *string  `json:"category" binding:"omitempty,max=50"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,url"`
	IsAvailable *bool    `json:"is_available"`
}

// OrderLine is one requested catalog item with a quantity, used both
// at checkout and when adding food to an existing booking.
type OrderLine struct {
	ItemID   string `json:"item_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,min=1,max=20"`
}
