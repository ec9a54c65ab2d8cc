package promos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPromoNotFound = errors.New("promo code not found")
	ErrPromoExpired  = errors.New("promo code is not currently valid")
)

type ValidationResult struct {
	Code            string  `json:"code"`
	DiscountPercent float64 `json:"discount_percent"`
	Discount        float64 `json:"discount"`
}

type Service interface {
	CreatePromo(ctx context.Context, req CreatePromoRequest) (*PromoCode, error)
	GetAllPromos(ctx context.Context) ([]PromoCode, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	DeletePromo(ctx context.Context, id uuid.UUID) error

	// Validate resolves a code against an order amount. Used by the
	// checkout flow and the validation endpoint.
	Validate(ctx context.Context, code string, amount float64) (*ValidationResult, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePromo(ctx context.Context, req CreatePromoRequest) (*PromoCode, error) {
	if req.ValidFrom != nil && req.ValidUntil != nil && req.ValidUntil.Before(*req.ValidFrom) {
		return nil, fmt.Errorf("valid_until must be after valid_from")
	}

	promo := &PromoCode{
		Code:            req.Code,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		MaxDiscount:     req.MaxDiscount,
		IsActive:        true,
		ValidFrom:       req.ValidFrom,
		ValidUntil:      req.ValidUntil,
	}
	if err := s.repo.Create(ctx, promo); err != nil {
		return nil, fmt.Errorf("failed to create promo code: %w", err)
	}
	return promo, nil
}

func (s *service) GetAllPromos(ctx context.Context) ([]PromoCode, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPromoNotFound
		}
		return err
	}
	return nil
}

func (s *service) DeletePromo(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPromoNotFound
		}
		return err
	}
	return nil
}

func (s *service) Validate(ctx context.Context, code string, amount float64) (*ValidationResult, error) {
	promo, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, fmt.Errorf("failed to look up promo code: %w", err)
	}

	if !promo.UsableAt(time.Now()) {
		return nil, ErrPromoExpired
	}

	return &ValidationResult{
		Code:            promo.Code,
		DiscountPercent: promo.DiscountPercent,
		Discount:        promo.DiscountOn(amount),
	}, nil
}
