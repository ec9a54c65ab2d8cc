package seats

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateBatch(ctx context.Context, seats []Seat) error
	GetByScreen(ctx context.Context, screenID uuid.UUID) ([]Seat, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Seat, error)
	DeleteByScreen(ctx context.Context, screenID uuid.UUID) error
	CountByScreen(ctx context.Context, screenID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBatch(ctx context.Context, seats []Seat) error {
	if len(seats) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(seats, 500).Error
}

func (r *repository) GetByScreen(ctx context.Context, screenID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("screen_id = ?", screenID).
		Find(&seats).Error
	return seats, err
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Seat, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&seats).Error
	return seats, err
}

func (r *repository) DeleteByScreen(ctx context.Context, screenID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("screen_id = ?", screenID).
		Delete(&Seat{}).Error
}

func (r *repository) CountByScreen(ctx context.Context, screenID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Seat{}).
		Where("screen_id = ?", screenID).
		Count(&count).Error
	return count, err
}
