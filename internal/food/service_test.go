package food

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"showtime/internal/feed"
	"showtime/pkg/logger"
)

type mockRepository struct {
	getItemsByIDsFn           func(ctx context.Context, ids []uuid.UUID) ([]FoodItem, error)
	createLineItemsFn         func(ctx context.Context, lines []FoodLineItem) error
	updateLineStatusFn        func(ctx context.Context, itemID uuid.UUID, status LineStatus) error
	updateBookingLineStatusFn func(ctx context.Context, bookingID uuid.UUID, status LineStatus) (int64, error)

	createdLines []FoodLineItem
}

func (m *mockRepository) CreateItem(ctx context.Context, item *FoodItem) error { return nil }

func (m *mockRepository) GetItems(ctx context.Context, onlyAvailable bool) ([]FoodItem, error) {
	return nil, nil
}

func (m *mockRepository) GetItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]FoodItem, error) {
	if m.getItemsByIDsFn != nil {
		return m.getItemsByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockRepository) UpdateItem(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*FoodItem, error) {
	return nil, nil
}

func (m *mockRepository) DeleteItem(ctx context.Context, id uuid.UUID) error { return nil }

func (m *mockRepository) CreateLineItems(ctx context.Context, lines []FoodLineItem) error {
	m.createdLines = append(m.createdLines, lines...)
	if m.createLineItemsFn != nil {
		return m.createLineItemsFn(ctx, lines)
	}
	return nil
}

func (m *mockRepository) GetLineItemsByBooking(ctx context.Context, bookingID uuid.UUID) ([]FoodLineItem, error) {
	return nil, nil
}

func (m *mockRepository) GetActiveLineItems(ctx context.Context) ([]FoodLineItem, error) {
	return nil, nil
}

func (m *mockRepository) UpdateLineStatus(ctx context.Context, itemID uuid.UUID, status LineStatus) error {
	if m.updateLineStatusFn != nil {
		return m.updateLineStatusFn(ctx, itemID, status)
	}
	return nil
}

func (m *mockRepository) UpdateBookingLineStatus(ctx context.Context, bookingID uuid.UUID, status LineStatus) (int64, error) {
	if m.updateBookingLineStatusFn != nil {
		return m.updateBookingLineStatusFn(ctx, bookingID, status)
	}
	return 1, nil
}

type recordingProducer struct {
	changes []*feed.LineItemChange
	err     error
}

func (p *recordingProducer) PublishChange(ctx context.Context, change *feed.LineItemChange) error {
	p.changes = append(p.changes, change)
	return p.err
}

func (p *recordingProducer) Close() error { return nil }

func catalogItems() []FoodItem {
	return []FoodItem{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Salted Popcorn", Category: "snacks", Price: 250, IsAvailable: true},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "Cold Coffee", Category: "beverages", Price: 180, IsAvailable: true},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "Nachos Grande", Category: "snacks", Price: 320, IsAvailable: false},
	}
}

func newTestService(repo *mockRepository, producer feed.Producer) Service {
	return NewService(repo, producer, logger.New())
}

func TestBuildLineItemsSnapshotsCatalog(t *testing.T) {
	repo := &mockRepository{
		getItemsByIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]FoodItem, error) {
			return catalogItems(), nil
		},
	}
	svc := newTestService(repo, &recordingProducer{})

	items, err := svc.BuildLineItems(context.Background(), []OrderLine{
		{ItemID: "11111111-1111-1111-1111-111111111111", Quantity: 2},
		{ItemID: "22222222-2222-2222-2222-222222222222", Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Salted Popcorn", items[0].FoodName)
	assert.Equal(t, "snacks", items[0].Category)
	assert.Equal(t, 250.0, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, StatusPending, items[0].Status)
	assert.Equal(t, "Cold Coffee", items[1].FoodName)

	// Nothing persisted and nothing published until SaveLineItems.
	assert.Empty(t, repo.createdLines)
}

func TestBuildLineItemsEmptyOrder(t *testing.T) {
	svc := newTestService(&mockRepository{}, &recordingProducer{})

	items, err := svc.BuildLineItems(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestBuildLineItemsRejectsUnknownItem(t *testing.T) {
	repo := &mockRepository{
		getItemsByIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]FoodItem, error) {
			return catalogItems()[:1], nil
		},
	}
	svc := newTestService(repo, &recordingProducer{})

	_, err := svc.BuildLineItems(context.Background(), []OrderLine{
		{ItemID: "11111111-1111-1111-1111-111111111111", Quantity: 1},
		{ItemID: "99999999-9999-9999-9999-999999999999", Quantity: 1},
	})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestBuildLineItemsRejectsUnavailableItem(t *testing.T) {
	repo := &mockRepository{
		getItemsByIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]FoodItem, error) {
			return catalogItems(), nil
		},
	}
	svc := newTestService(repo, &recordingProducer{})

	_, err := svc.BuildLineItems(context.Background(), []OrderLine{
		{ItemID: "33333333-3333-3333-3333-333333333333", Quantity: 1},
	})
	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestBuildLineItemsRejectsMalformedID(t *testing.T) {
	svc := newTestService(&mockRepository{}, &recordingProducer{})

	_, err := svc.BuildLineItems(context.Background(), []OrderLine{
		{ItemID: "not-a-uuid", Quantity: 1},
	})
	assert.Error(t, err)
}

func TestSaveLineItemsStampsBookingAndPublishes(t *testing.T) {
	repo := &mockRepository{}
	producer := &recordingProducer{}
	svc := newTestService(repo, producer)

	bookingID := uuid.New()
	err := svc.SaveLineItems(context.Background(), bookingID, []FoodLineItem{
		{ItemID: uuid.New(), FoodName: "Salted Popcorn", Quantity: 2, Price: 250, Status: StatusPending},
	})
	require.NoError(t, err)

	require.Len(t, repo.createdLines, 1)
	assert.Equal(t, bookingID, repo.createdLines[0].BookingID)

	require.Len(t, producer.changes, 1)
	assert.Equal(t, feed.ChangeCreated, producer.changes[0].Kind)
	assert.Equal(t, bookingID.String(), producer.changes[0].BookingID)
}

func TestSaveLineItemsNoopOnEmpty(t *testing.T) {
	repo := &mockRepository{}
	producer := &recordingProducer{}
	svc := newTestService(repo, producer)

	require.NoError(t, svc.SaveLineItems(context.Background(), uuid.New(), nil))
	assert.Empty(t, repo.createdLines)
	assert.Empty(t, producer.changes)
}

func TestSaveLineItemsSwallowsPublishFailure(t *testing.T) {
	repo := &mockRepository{}
	producer := &recordingProducer{err: errors.New("broker down")}
	svc := newTestService(repo, producer)

	err := svc.SaveLineItems(context.Background(), uuid.New(), []FoodLineItem{
		{ItemID: uuid.New(), FoodName: "Cold Coffee", Quantity: 1, Price: 180, Status: StatusPending},
	})
	assert.NoError(t, err)
	assert.Len(t, repo.createdLines, 1)
}

func TestCreateLineItemsBuildsThenSaves(t *testing.T) {
	repo := &mockRepository{
		getItemsByIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]FoodItem, error) {
			return catalogItems(), nil
		},
	}
	producer := &recordingProducer{}
	svc := newTestService(repo, producer)

	bookingID := uuid.New()
	items, err := svc.CreateLineItems(context.Background(), bookingID, []OrderLine{
		{ItemID: "22222222-2222-2222-2222-222222222222", Quantity: 3},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Cold Coffee", items[0].FoodName)

	require.Len(t, repo.createdLines, 1)
	assert.Equal(t, bookingID, repo.createdLines[0].BookingID)
	require.Len(t, producer.changes, 1)
	assert.Equal(t, feed.ChangeCreated, producer.changes[0].Kind)
}

func TestTransitionLineItem(t *testing.T) {
	notFound := uuid.New()

	tests := []struct {
		name    string
		itemID  uuid.UUID
		status  LineStatus
		wantErr error
		publish bool
	}{
		{"valid transition", uuid.New(), StatusPreparing, nil, true},
		{"invalid status", uuid.New(), LineStatus("Burnt"), ErrInvalidStatus, false},
		{"unknown item", notFound, StatusReady, ErrLineItemNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{
				updateLineStatusFn: func(ctx context.Context, itemID uuid.UUID, status LineStatus) error {
					if itemID == notFound {
						return gorm.ErrRecordNotFound
					}
					return nil
				},
			}
			producer := &recordingProducer{}
			svc := newTestService(repo, producer)

			err := svc.TransitionLineItem(context.Background(), tt.itemID, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, producer.changes)
				return
			}
			require.NoError(t, err)
			require.Len(t, producer.changes, 1)
			assert.Equal(t, feed.ChangeStatusUpdated, producer.changes[0].Kind)
			assert.Equal(t, tt.itemID.String(), producer.changes[0].ItemID)
			assert.Equal(t, string(tt.status), producer.changes[0].Status)
		})
	}
}

func TestTransitionBookingLines(t *testing.T) {
	repo := &mockRepository{}
	producer := &recordingProducer{}
	svc := newTestService(repo, producer)

	bookingID := uuid.New()
	require.NoError(t, svc.TransitionBookingLines(context.Background(), bookingID, StatusDelivered))

	require.Len(t, producer.changes, 1)
	assert.Equal(t, feed.ChangeStatusUpdated, producer.changes[0].Kind)
	assert.Equal(t, bookingID.String(), producer.changes[0].BookingID)
	assert.Equal(t, string(StatusDelivered), producer.changes[0].Status)
}

func TestTransitionBookingLinesNoRows(t *testing.T) {
	repo := &mockRepository{
		updateBookingLineStatusFn: func(ctx context.Context, bookingID uuid.UUID, status LineStatus) (int64, error) {
			return 0, nil
		},
	}
	producer := &recordingProducer{}
	svc := newTestService(repo, producer)

	err := svc.TransitionBookingLines(context.Background(), uuid.New(), StatusReady)
	assert.ErrorIs(t, err, ErrLineItemNotFound)
	assert.Empty(t, producer.changes)
}

func TestTransitionBookingLinesInvalidStatus(t *testing.T) {
	svc := newTestService(&mockRepository{}, &recordingProducer{})

	err := svc.TransitionBookingLines(context.Background(), uuid.New(), LineStatus(""))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
