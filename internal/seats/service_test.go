package seats

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"showtime/internal/shows"
	"showtime/pkg/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is an in-process stand-in for the redis cache service.
type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memoryCache) DeletePattern(_ context.Context, _ string) error { return nil }

func (m *memoryCache) Exists(_ context.Context, key string) bool {
	_, ok := m.data[key]
	return ok
}

func (m *memoryCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	if err := m.Get(ctx, key, dest); err == nil {
		return nil
	}
	value, err := fetcher()
	if err != nil {
		return err
	}
	if err := m.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	raw, _ := json.Marshal(value)
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Ping(_ context.Context) error { return nil }

type mockRepository struct {
	getByScreenFn func(ctx context.Context, screenID uuid.UUID) ([]Seat, error)
	getByIDsFn    func(ctx context.Context, ids []uuid.UUID) ([]Seat, error)
}

func (m *mockRepository) CreateBatch(context.Context, []Seat) error { return nil }
func (m *mockRepository) GetByScreen(ctx context.Context, screenID uuid.UUID) ([]Seat, error) {
	return m.getByScreenFn(ctx, screenID)
}
func (m *mockRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Seat, error) {
	if m.getByIDsFn != nil {
		return m.getByIDsFn(ctx, ids)
	}
	return nil, nil
}
func (m *mockRepository) DeleteByScreen(context.Context, uuid.UUID) error { return nil }
func (m *mockRepository) CountByScreen(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

type mockShowSource struct {
	getShowFn func(id uuid.UUID) (*shows.Show, error)
}

func (m *mockShowSource) GetShow(id uuid.UUID) (*shows.Show, error) {
	return m.getShowFn(id)
}

type mockBookedSource struct {
	ids []uuid.UUID
}

func (m *mockBookedSource) BookedSeatIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return m.ids, nil
}

func newTestService(t *testing.T, layout []Seat, booked []uuid.UUID, maxSelected int) (Service, uuid.UUID, uuid.UUID) {
	t.Helper()

	showID := uuid.New()
	screenID := uuid.New()

	repo := &mockRepository{
		getByScreenFn: func(_ context.Context, id uuid.UUID) ([]Seat, error) {
			require.Equal(t, screenID, id)
			out := make([]Seat, len(layout))
			copy(out, layout)
			return out, nil
		},
	}
	showSource := &mockShowSource{
		getShowFn: func(id uuid.UUID) (*shows.Show, error) {
			require.Equal(t, showID, id)
			return &shows.Show{ID: showID, ScreenID: screenID, Kind: shows.KindMovie}, nil
		},
	}

	selections := NewSelectionStore(newMemoryCache(), 10*time.Minute)
	svc := NewService(repo, showSource, selections, maxSelected)
	svc.SetBookedSeatSource(&mockBookedSource{ids: booked})

	return svc, showID, uuid.New()
}

func TestToggleSeatSelectsAndDeselects(t *testing.T) {
	layout := []Seat{
		mkSeat("A", 1, CategoryRegular, 150, StatusAvailable),
		mkSeat("A", 2, CategoryRegular, 150, StatusAvailable),
	}
	svc, showID, userID := newTestService(t, layout, nil, 6)
	ctx := context.Background()

	grid, err := svc.ToggleSeat(ctx, showID, userID, layout[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, grid.SelectedCount)
	assert.Equal(t, 150.0, grid.TicketSubtotal)

	grid, err = svc.ToggleSeat(ctx, showID, userID, layout[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, grid.SelectedCount)
	assert.Equal(t, 0.0, grid.TicketSubtotal)
}

func TestToggleSeatBookedIsNoOp(t *testing.T) {
	layout := []Seat{
		mkSeat("A", 1, CategoryRegular, 150, StatusAvailable),
		mkSeat("A", 2, CategoryRegular, 150, StatusAvailable),
	}
	svc, showID, userID := newTestService(t, layout, []uuid.UUID{layout[1].ID}, 6)
	ctx := context.Background()

	grid, err := svc.ToggleSeat(ctx, showID, userID, layout[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, grid.SelectedCount, "booked seat must stay booked")

	// The overlay still reports the seat as booked.
	for _, row := range grid.Rows {
		for _, seat := range row.Seats {
			if seat.ID == layout[1].ID {
				assert.Equal(t, StatusBooked, seat.Status)
			}
		}
	}
}

func TestToggleSeatSelectionCap(t *testing.T) {
	layout := make([]Seat, 0, 7)
	for i := 1; i <= 7; i++ {
		layout = append(layout, mkSeat("A", i, CategoryRegular, 150, StatusAvailable))
	}
	svc, showID, userID := newTestService(t, layout, nil, 6)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := svc.ToggleSeat(ctx, showID, userID, layout[i].ID)
		require.NoError(t, err)
	}

	grid, err := svc.ToggleSeat(ctx, showID, userID, layout[6].ID)
	require.ErrorIs(t, err, ErrSelectionLimit)
	assert.Equal(t, 6, grid.SelectedCount, "rejected toggle leaves the grid unchanged")

	// Deselecting is still allowed at the cap.
	grid, err = svc.ToggleSeat(ctx, showID, userID, layout[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 5, grid.SelectedCount)
}

func TestClearSelection(t *testing.T) {
	layout := []Seat{mkSeat("A", 1, CategoryRegular, 150, StatusAvailable)}
	svc, showID, userID := newTestService(t, layout, nil, 6)
	ctx := context.Background()

	_, err := svc.ToggleSeat(ctx, showID, userID, layout[0].ID)
	require.NoError(t, err)

	require.NoError(t, svc.ClearSelection(ctx, showID, userID))

	grid, err := svc.GetGrid(ctx, showID, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, grid.SelectedCount)
}
