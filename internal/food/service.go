package food

import (
	"context"
	"errors"
	"fmt"

	"showtime/internal/feed"
	"showtime/internal/shared/constants"
	"showtime/pkg/cache"
	"showtime/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound     = errors.New("food item not found")
	ErrItemUnavailable  = errors.New("food item is not available")
	ErrLineItemNotFound = errors.New("food line item not found")
	ErrInvalidStatus    = errors.New("invalid line item status")
)

type Service interface {
	SetCacheService(cacheService cache.Service)

	// Catalog
	CreateItem(ctx context.Context, req CreateItemRequest) (*FoodItem, error)
	ListCatalog(ctx context.Context) ([]FoodItem, error)
	ListAllItems(ctx context.Context) ([]FoodItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*FoodItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error

	// Line items
	BuildLineItems(ctx context.Context, lines []OrderLine) ([]FoodLineItem, error)
	SaveLineItems(ctx context.Context, bookingID uuid.UUID, items []FoodLineItem) error
	CreateLineItems(ctx context.Context, bookingID uuid.UUID, lines []OrderLine) ([]FoodLineItem, error)
	GetLineItemsByBooking(ctx context.Context, bookingID uuid.UUID) ([]FoodLineItem, error)
	ActiveLineItems(ctx context.Context) ([]FoodLineItem, error)
	TransitionLineItem(ctx context.Context, itemID uuid.UUID, status LineStatus) error
	TransitionBookingLines(ctx context.Context, bookingID uuid.UUID, status LineStatus) error
}

type service struct {
	repo         Repository
	producer     feed.Producer
	cacheService cache.Service
	log          *logger.Logger
}

func NewService(repo Repository, producer feed.Producer, log *logger.Logger) Service {
	return &service{repo: repo, producer: producer, log: log}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) invalidateCatalogCache(ctx context.Context) {
	if s.cacheService != nil {
		_ = s.cacheService.Delete(ctx, constants.CACHE_KEY_FOOD_CATALOG)
	}
}

// publishChange is fire-and-forget: a lost event only delays the board
// until the next poll.
func (s *service) publishChange(ctx context.Context, change *feed.LineItemChange) {
	if s.producer == nil {
		return
	}
	if err := s.producer.PublishChange(ctx, change); err != nil {
		s.log.Warn("failed to publish line item change", "booking_id", change.BookingID, "error", err)
	}
}

func (s *service) CreateItem(ctx context.Context, req CreateItemRequest) (*FoodItem, error) {
	item := &FoodItem{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create food item: %w", err)
	}
	s.invalidateCatalogCache(ctx)
	return item, nil
}

func (s *service) ListCatalog(ctx context.Context) ([]FoodItem, error) {
	if s.cacheService != nil {
		var items []FoodItem
		err := s.cacheService.GetOrSet(ctx, constants.CACHE_KEY_FOOD_CATALOG, constants.TTL_SEMI_STATIC_QUICK,
			func() (interface{}, error) {
				return s.repo.GetItems(ctx, true)
			}, &items)
		if err == nil {
			return items, nil
		}
	}
	return s.repo.GetItems(ctx, true)
}

func (s *service) ListAllItems(ctx context.Context) ([]FoodItem, error) {
	return s.repo.GetItems(ctx, false)
}

func (s *service) UpdateItem(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*FoodItem, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}

	item, err := s.repo.UpdateItem(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update food item: %w", err)
	}
	s.invalidateCatalogCache(ctx)
	return item, nil
}

func (s *service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete food item: %w", err)
	}
	s.invalidateCatalogCache(ctx)
	return nil
}

// BuildLineItems resolves order lines against the catalog without
// persisting anything, snapshotting name, category and price. Checkout
// uses this to price the food portion of the fare before the booking
// row exists.
func (s *service) BuildLineItems(ctx context.Context, lines []OrderLine) ([]FoodLineItem, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		id, err := uuid.Parse(line.ItemID)
		if err != nil {
			return nil, fmt.Errorf("invalid item id %q: %w", line.ItemID, err)
		}
		ids = append(ids, id)
	}

	items, err := s.repo.GetItemsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve food items: %w", err)
	}
	byID := make(map[uuid.UUID]FoodItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	lineItems := make([]FoodLineItem, 0, len(lines))
	for i, line := range lines {
		item, ok := byID[ids[i]]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrItemNotFound, line.ItemID)
		}
		if !item.IsAvailable {
			return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name)
		}
		lineItems = append(lineItems, FoodLineItem{
			ItemID:   item.ID,
			FoodName: item.Name,
			Category: item.Category,
			Quantity: line.Quantity,
			Price:    item.Price,
			Status:   StatusPending,
		})
	}
	return lineItems, nil
}

func (s *service) SaveLineItems(ctx context.Context, bookingID uuid.UUID, items []FoodLineItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].BookingID = bookingID
	}
	if err := s.repo.CreateLineItems(ctx, items); err != nil {
		return fmt.Errorf("failed to create line items: %w", err)
	}

	s.publishChange(ctx, &feed.LineItemChange{
		Kind:      feed.ChangeCreated,
		BookingID: bookingID.String(),
	})
	return nil
}

func (s *service) CreateLineItems(ctx context.Context, bookingID uuid.UUID, lines []OrderLine) ([]FoodLineItem, error) {
	items, err := s.BuildLineItems(ctx, lines)
	if err != nil {
		return nil, err
	}
	if err := s.SaveLineItems(ctx, bookingID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *service) GetLineItemsByBooking(ctx context.Context, bookingID uuid.UUID) ([]FoodLineItem, error) {
	return s.repo.GetLineItemsByBooking(ctx, bookingID)
}

func (s *service) ActiveLineItems(ctx context.Context) ([]FoodLineItem, error) {
	return s.repo.GetActiveLineItems(ctx)
}

// TransitionLineItem overwrites one item's status unconditionally; the
// board is a passive aggregator and does not police transition order.
func (s *service) TransitionLineItem(ctx context.Context, itemID uuid.UUID, status LineStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	if err := s.repo.UpdateLineStatus(ctx, itemID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLineItemNotFound
		}
		return fmt.Errorf("failed to update line item status: %w", err)
	}

	s.log.LogKitchenTransition(ctx, "", itemID.String(), string(status))
	s.publishChange(ctx, &feed.LineItemChange{
		Kind:   feed.ChangeStatusUpdated,
		ItemID: itemID.String(),
		Status: string(status),
	})
	return nil
}

func (s *service) TransitionBookingLines(ctx context.Context, bookingID uuid.UUID, status LineStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	affected, err := s.repo.UpdateBookingLineStatus(ctx, bookingID, status)
	if err != nil {
		return fmt.Errorf("failed to update booking line items: %w", err)
	}
	if affected == 0 {
		return ErrLineItemNotFound
	}

	s.log.LogKitchenTransition(ctx, bookingID.String(), "", string(status))
	s.publishChange(ctx, &feed.LineItemChange{
		Kind:      feed.ChangeStatusUpdated,
		BookingID: bookingID.String(),
		Status:    string(status),
	})
	return nil
}
