package promos

import (
	"time"

	"github.com/google/uuid"
)

type PromoCode struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Code            string     `json:"code" gorm:"uniqueIndex;not null;size:50"`
	Description     string     `json:"description" gorm:"size:255"`
	DiscountPercent float64    `json:"discount_percent" gorm:"not null;check:discount_percent > 0 AND discount_percent <= 100"`
	MaxDiscount     float64    `json:"max_discount" gorm:"default:0"` // 0 means uncapped
	IsActive        bool       `json:"is_active" gorm:"default:true"`
	ValidFrom       *time.Time `json:"valid_from"`
	ValidUntil      *time.Time `json:"valid_until"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PromoCode) TableName() string {
	return "promo_codes"
}

// UsableAt reports whether the code can be applied at t.
func (p *PromoCode) UsableAt(t time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.ValidFrom != nil && t.Before(*p.ValidFrom) {
		return false
	}
	if p.ValidUntil != nil && t.After(*p.ValidUntil) {
		return false
	}
	return true
}

// DiscountOn computes the discount amount for a given base amount,
// respecting the cap when one is set.
func (p *PromoCode) DiscountOn(amount float64) float64 {
	discount := amount * p.DiscountPercent / 100
	if p.MaxDiscount > 0 && discount > p.MaxDiscount {
		discount = p.MaxDiscount
	}
	return discount
}

type CreatePromoRequest struct {
	Code            string     `json:"code" binding:"required,min=3,max=50,uppercase"`
	Description     string     `json:"description" binding:"omitempty,max=255"`
	DiscountPercent float64    `json:"discount_percent" binding:"required,gt=0,lte=100"`
	MaxDiscount     float64    `json:"max_discount" binding:"omitempty,min=0"`
	ValidFrom       *time.Time `json:"valid_from"`
	ValidUntil      *time.Time `json:"valid_until"`
}
