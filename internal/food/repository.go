package food

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// Catalog
	CreateItem(ctx context.Context, item *FoodItem) error
	GetItems(ctx context.Context, onlyAvailable bool) ([]FoodItem, error)
	GetItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]FoodItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*FoodItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error

	// Line items
	CreateLineItems(ctx context.Context, lines []FoodLineItem) error
	GetLineItemsByBooking(ctx context.Context, bookingID uuid.UUID) ([]FoodLineItem, error)
	GetActiveLineItems(ctx context.Context) ([]FoodLineItem, error)
	UpdateLineStatus(ctx context.Context, itemID uuid.UUID, status LineStatus) error
	UpdateBookingLineStatus(ctx context.Context, bookingID uuid.UUID, status LineStatus) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateItem(ctx context.Context, item *FoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) GetItems(ctx context.Context, onlyAvailable bool) ([]FoodItem, error) {
	var items []FoodItem
	db := r.db.WithContext(ctx)
	if onlyAvailable {
		db = db.Where("is_available = ?", true)
	}
	err := db.Order("category ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *repository) GetItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]FoodItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []FoodItem
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *repository) UpdateItem(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*FoodItem, error) {
	var item FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&FoodItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateLineItems(ctx context.Context, lines []FoodLineItem) error {
	if len(lines) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&lines).Error
}

func (r *repository) GetLineItemsByBooking(ctx context.Context, bookingID uuid.UUID) ([]FoodLineItem, error) {
	var lines []FoodLineItem
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&lines).Error
	return lines, err
}

// GetActiveLineItems returns every line item belonging to a confirmed
// booking. This is the kitchen board's snapshot query.
func (r *repository) GetActiveLineItems(ctx context.Context) ([]FoodLineItem, error) {
	var lines []FoodLineItem
	err := r.db.WithContext(ctx).
		Joins("JOIN bookings ON bookings.id = food_line_items.booking_id").
		Where("bookings.status = ?", "CONFIRMED").
		Find(&lines).Error
	return lines, err
}

func (r *repository) UpdateLineStatus(ctx context.Context, itemID uuid.UUID, status LineStatus) error {
	result := r.db.WithContext(ctx).
		Model(&FoodLineItem{}).
		Where("id = ?", itemID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) UpdateBookingLineStatus(ctx context.Context, bookingID uuid.UUID, status LineStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&FoodLineItem{}).
		Where("booking_id = ?", bookingID).
		Update("status", status)
	return result.RowsAffected, result.Error
}
