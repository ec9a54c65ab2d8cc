package kitchen

import (
	"context"
	"fmt"
	"sync"
	"time"

	"showtime/internal/bookings"
	"showtime/internal/feed"
	"showtime/internal/food"
	"showtime/pkg/logger"

	"github.com/google/uuid"
)

// LineItemFeed is the slice of the food service the kitchen drives.
type LineItemFeed interface {
	ActiveLineItems(ctx context.Context) ([]food.FoodLineItem, error)
	TransitionLineItem(ctx context.Context, itemID uuid.UUID, status food.LineStatus) error
	TransitionBookingLines(ctx context.Context, bookingID uuid.UUID, status food.LineStatus) error
}

// BookingMetaSource resolves board context for a set of bookings.
type BookingMetaSource interface {
	GetBoardMeta(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID]bookings.BoardMeta, error)
}

type Service interface {
	// Refresh rebuilds the board snapshot from storage. Safe to call
	// from the poller and the change feed concurrently.
	Refresh(ctx context.Context) error

	Board(filter, query string) BoardResponse
	TransitionItem(ctx context.Context, itemID uuid.UUID, status food.LineStatus) error
	TransitionGroup(ctx context.Context, bookingID uuid.UUID, status food.LineStatus) error

	// HandleFeedChange is the consumer callback for pushed line item
	// changes.
	HandleFeedChange(ctx context.Context, change *feed.LineItemChange)
}

type BoardResponse struct {
	Orders      []OrderGroup `json:"orders"`
	RefreshedAt time.Time    `json:"refreshed_at"`
}

type service struct {
	foodSvc    LineItemFeed
	metaSource BookingMetaSource
	log        *logger.Logger

	mu          sync.RWMutex
	groups      []OrderGroup
	refreshedAt time.Time
}

func NewService(foodSvc LineItemFeed, metaSource BookingMetaSource, log *logger.Logger) Service {
	return &service{
		foodSvc:    foodSvc,
		metaSource: metaSource,
		log:        log,
	}
}

func (s *service) Refresh(ctx context.Context) error {
	items, err := s.foodSvc.ActiveLineItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch line items: %w", err)
	}

	ids := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]bool)
	for i := range items {
		if !seen[items[i].BookingID] {
			seen[items[i].BookingID] = true
			ids = append(ids, items[i].BookingID)
		}
	}

	meta, err := s.metaSource.GetBoardMeta(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch booking metadata: %w", err)
	}

	groups := GroupByBooking(items, meta)

	s.mu.Lock()
	s.groups = groups
	s.refreshedAt = time.Now()
	s.mu.Unlock()
	return nil
}

func (s *service) Board(filter, query string) BoardResponse {
	s.mu.RLock()
	groups := s.groups
	refreshedAt := s.refreshedAt
	s.mu.RUnlock()

	// Filters run on the shared snapshot without copying it; they
	// only ever build new slices of the same group values.
	filtered := FilterByStatus(groups, filter)
	filtered = FilterByQuery(filtered, query)
	return BoardResponse{Orders: filtered, RefreshedAt: refreshedAt}
}

func (s *service) TransitionItem(ctx context.Context, itemID uuid.UUID, status food.LineStatus) error {
	if err := s.foodSvc.TransitionLineItem(ctx, itemID, status); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *service) TransitionGroup(ctx context.Context, bookingID uuid.UUID, status food.LineStatus) error {
	if err := s.foodSvc.TransitionBookingLines(ctx, bookingID, status); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *service) HandleFeedChange(ctx context.Context, change *feed.LineItemChange) {
	if err := s.Refresh(ctx); err != nil {
		s.log.Warn("kitchen board refresh failed after feed change",
			"booking_id", change.BookingID,
			"kind", string(change.Kind),
			"error", err,
		)
	}
}
