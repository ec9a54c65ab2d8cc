package bookings

import (
	"time"

	"showtime/internal/food"

	"github.com/google/uuid"
)

type Booking struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	ShowID         uuid.UUID  `gorm:"type:uuid;index;not null" json:"show_id"`
	BookingRef     string     `gorm:"unique;not null;size:40" json:"booking_ref"`
	TotalSeats     int        `gorm:"not null" json:"total_seats"`
	TicketSubtotal float64    `gorm:"not null" json:"ticket_subtotal"`
	ConvenienceFee float64    `gorm:"not null" json:"convenience_fee"`
	FoodSubtotal   float64    `gorm:"not null" json:"food_subtotal"`
	Discount       float64    `gorm:"default:0" json:"discount"`
	TotalAmount    float64    `gorm:"not null" json:"total_amount"`
	PaymentMethod  string     `gorm:"type:varchar(20);not null" json:"payment_method"`
	PaymentRef     string     `gorm:"size:100" json:"payment_ref,omitempty"` // UPI id for upi payments
	PromoCode      string     `gorm:"size:50" json:"promo_code,omitempty"`
	Status         Status     `gorm:"type:varchar(20);default:'CONFIRMED'" json:"status"`
	IdempotencyKey *string    `gorm:"size:100" json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`

	Seats []BookingSeat `json:"seats,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
}

func (Booking) TableName() string {
	return "bookings"
}

// BookingSeat snapshots one sold seat. Active rows are unique per
// (seat_id, show_id); cancellation deactivates them so the seat can be
// resold while the snapshot stays on the booking.
type BookingSeat struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	ShowID    uuid.UUID `gorm:"type:uuid;index;not null" json:"show_id"`
	SeatID    uuid.UUID `gorm:"type:uuid;index;not null" json:"seat_id"`
	SeatLabel string    `gorm:"not null;size:10" json:"seat_label"`
	Category  string    `gorm:"type:varchar(20);not null" json:"category"`
	Price     float64   `gorm:"not null" json:"price"`
	Active    bool      `gorm:"default:true" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (BookingSeat) TableName() string {
	return "booking_seats"
}

func (b *Booking) SeatLabels() []string {
	labels := make([]string, 0, len(b.Seats))
	for i := range b.Seats {
		labels = append(labels, b.Seats[i].SeatLabel)
	}
	return labels
}

type CheckoutRequest struct {
	ShowID        string           `json:"show_id" binding:"required,uuid"`
	PaymentMethod string           `json:"payment_method" binding:"required,oneof=upi card wallet"`
	UPIID         string           `json:"upi_id"`
	PromoCode     string           `json:"promo_code" binding:"omitempty,max=50"`
	FoodOrder     []food.OrderLine `json:"food_order" binding:"omitempty,dive"`
}

type BookingResponse struct {
	ID             string              `json:"id"`
	BookingRef     string              `json:"booking_ref"`
	ShowID         string              `json:"show_id"`
	Status         Status              `json:"status"`
	TotalSeats     int                 `json:"total_seats"`
	SeatLabels     []string            `json:"seat_labels"`
	TicketSubtotal float64             `json:"ticket_subtotal"`
	ConvenienceFee float64             `json:"convenience_fee"`
	FoodSubtotal   float64             `json:"food_subtotal"`
	Discount       float64             `json:"discount"`
	TotalAmount    float64             `json:"total_amount"`
	PaymentMethod  string              `json:"payment_method"`
	PromoCode      string              `json:"promo_code,omitempty"`
	FoodLineItems  []food.FoodLineItem `json:"food_line_items,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	CancelledAt    *time.Time          `json:"cancelled_at,omitempty"`
}

func (b *Booking) ToResponse(lines []food.FoodLineItem) BookingResponse {
	return BookingResponse{
		ID:             b.ID.String(),
		BookingRef:     b.BookingRef,
		ShowID:         b.ShowID.String(),
		Status:         b.Status,
		TotalSeats:     b.TotalSeats,
		SeatLabels:     b.SeatLabels(),
		TicketSubtotal: b.TicketSubtotal,
		ConvenienceFee: b.ConvenienceFee,
		FoodSubtotal:   b.FoodSubtotal,
		Discount:       b.Discount,
		TotalAmount:    b.TotalAmount,
		PaymentMethod:  b.PaymentMethod,
		PromoCode:      b.PromoCode,
		FoodLineItems:  lines,
		CreatedAt:      b.CreatedAt,
		CancelledAt:    b.CancelledAt,
	}
}
