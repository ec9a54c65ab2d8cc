package kitchen

import (
	"context"
	"testing"
	"time"

	"showtime/internal/bookings"
	"showtime/internal/feed"
	"showtime/internal/food"
	"showtime/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryFeed backs the kitchen service with an in-memory line item
// store so transitions and refreshes behave like the real pipeline.
type memoryFeed struct {
	items map[uuid.UUID]*food.FoodLineItem
}

func newMemoryFeed() *memoryFeed {
	return &memoryFeed{items: make(map[uuid.UUID]*food.FoodLineItem)}
}

func (f *memoryFeed) add(bookingID uuid.UUID, statuses ...food.LineStatus) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(statuses))
	for _, status := range statuses {
		item := &food.FoodLineItem{
			ID:        uuid.New(),
			BookingID: bookingID,
			FoodName:  "Nachos",
			Quantity:  1,
			Status:    status,
		}
		f.items[item.ID] = item
		ids = append(ids, item.ID)
	}
	return ids
}

func (f *memoryFeed) ActiveLineItems(ctx context.Context) ([]food.FoodLineItem, error) {
	out := make([]food.FoodLineItem, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, *item)
	}
	return out, nil
}

func (f *memoryFeed) TransitionLineItem(ctx context.Context, itemID uuid.UUID, status food.LineStatus) error {
	item, ok := f.items[itemID]
	if !ok {
		return food.ErrLineItemNotFound
	}
	item.Status = status
	return nil
}

func (f *memoryFeed) TransitionBookingLines(ctx context.Context, bookingID uuid.UUID, status food.LineStatus) error {
	found := false
	for _, item := range f.items {
		if item.BookingID == bookingID {
			item.Status = status
			found = true
		}
	}
	if !found {
		return food.ErrLineItemNotFound
	}
	return nil
}

type staticMetaSource struct {
	meta map[uuid.UUID]bookings.BoardMeta
}

func (s *staticMetaSource) GetBoardMeta(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID]bookings.BoardMeta, error) {
	return s.meta, nil
}

func groupFor(t *testing.T, board BoardResponse, ref string) *OrderGroup {
	t.Helper()
	for i := range board.Orders {
		if board.Orders[i].BookingRef == ref {
			return &board.Orders[i]
		}
	}
	return nil
}

func TestBoardScenario(t *testing.T) {
	feedStore := newMemoryFeed()
	bookingX := uuid.New()
	bookingY := uuid.New()
	feedStore.add(bookingX, food.StatusPending, food.StatusPending)
	feedStore.add(bookingY, food.StatusReady, food.StatusReady, food.StatusDelivered)

	base := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
	meta := &staticMetaSource{meta: map[uuid.UUID]bookings.BoardMeta{
		bookingX: {BookingID: bookingX, BookingRef: "QRX", CreatedAt: base},
		bookingY: {BookingID: bookingY, BookingRef: "QRY", CreatedAt: base.Add(time.Minute)},
	}}

	svc := NewService(feedStore, meta, logger.New())
	require.NoError(t, svc.Refresh(context.Background()))

	board := svc.Board(FilterAll, "")
	require.Len(t, board.Orders, 2)
	assert.Equal(t, food.StatusPending, groupFor(t, board, "QRX").Status)
	assert.Equal(t, food.StatusReady, groupFor(t, board, "QRY").Status)

	// Delivering the whole of Y removes it from the working view.
	require.NoError(t, svc.TransitionGroup(context.Background(), bookingY, food.StatusDelivered))

	board = svc.Board(FilterAll, "")
	require.Len(t, board.Orders, 1)
	assert.Equal(t, "QRX", board.Orders[0].BookingRef)

	delivered := svc.Board("Delivered", "")
	require.Len(t, delivered.Orders, 1)
	assert.Equal(t, "QRY", delivered.Orders[0].BookingRef)
}

func TestTransitionItemRecomputesComposite(t *testing.T) {
	feedStore := newMemoryFeed()
	bookingID := uuid.New()
	itemIDs := feedStore.add(bookingID, food.StatusPending, food.StatusPending)

	meta := &staticMetaSource{meta: map[uuid.UUID]bookings.BoardMeta{
		bookingID: {BookingID: bookingID, BookingRef: "QRZ", CreatedAt: time.Now()},
	}}
	svc := NewService(feedStore, meta, logger.New())
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.TransitionItem(context.Background(), itemIDs[0], food.StatusPreparing))
	assert.Equal(t, food.StatusPreparing, svc.Board(FilterAll, "").Orders[0].Status)

	require.NoError(t, svc.TransitionItem(context.Background(), itemIDs[0], food.StatusReady))
	require.NoError(t, svc.TransitionItem(context.Background(), itemIDs[1], food.StatusReady))
	assert.Equal(t, food.StatusReady, svc.Board(FilterAll, "").Orders[0].Status)
}

func TestTransitionUnknownItem(t *testing.T) {
	svc := NewService(newMemoryFeed(), &staticMetaSource{}, logger.New())
	err := svc.TransitionItem(context.Background(), uuid.New(), food.StatusReady)
	assert.ErrorIs(t, err, food.ErrLineItemNotFound)
}

func TestHandleFeedChangeRefreshes(t *testing.T) {
	feedStore := newMemoryFeed()
	bookingID := uuid.New()
	meta := &staticMetaSource{meta: map[uuid.UUID]bookings.BoardMeta{
		bookingID: {BookingID: bookingID, BookingRef: "QRF", CreatedAt: time.Now()},
	}}
	svc := NewService(feedStore, meta, logger.New())
	require.NoError(t, svc.Refresh(context.Background()))
	assert.Empty(t, svc.Board(FilterAll, "").Orders)

	// A pushed change lands between polls; the board picks it up
	// immediately.
	feedStore.add(bookingID, food.StatusPending)
	svc.HandleFeedChange(context.Background(), &feed.LineItemChange{
		Kind:      feed.ChangeCreated,
		BookingID: bookingID.String(),
	})

	assert.Len(t, svc.Board(FilterAll, "").Orders, 1)
}
