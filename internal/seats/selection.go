package seats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"showtime/internal/shared/constants"
	"showtime/pkg/cache"

	"github.com/google/uuid"
)

// MaxSelectedSeats is the default cap on seats held in one selection
// session; config can override it.
const MaxSelectedSeats = 6

// ErrSelectionLimit rejects an available to selected toggle once the
// session already holds the maximum number of seats. The grid is left
// unchanged; callers surface this as a user-facing warning.
var ErrSelectionLimit = errors.New("seat selection limit reached")

// selectionState is what gets stored in redis per (show, user) pair.
type selectionState struct {
	SeatIDs []string `json:"seat_ids"`
}

// SelectionStore holds transient per-user seat selections in redis with
// a TTL. Nothing is persisted; an expired session simply starts empty.
type SelectionStore struct {
	cache cache.Service
	ttl   time.Duration
}

func NewSelectionStore(cacheService cache.Service, ttl time.Duration) *SelectionStore {
	return &SelectionStore{cache: cacheService, ttl: ttl}
}

func (s *SelectionStore) Get(ctx context.Context, showID, userID uuid.UUID) ([]uuid.UUID, error) {
	key := constants.BuildSelectionKey(showID.String(), userID.String())

	var state selectionState
	if err := s.cache.Get(ctx, key, &state); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(state.SeatIDs))
	for _, raw := range state.SeatIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *SelectionStore) Save(ctx context.Context, showID, userID uuid.UUID, seatIDs []uuid.UUID) error {
	key := constants.BuildSelectionKey(showID.String(), userID.String())

	state := selectionState{SeatIDs: make([]string, 0, len(seatIDs))}
	for _, id := range seatIDs {
		state.SeatIDs = append(state.SeatIDs, id.String())
	}
	if err := s.cache.Set(ctx, key, state, s.ttl); err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}
	return nil
}

func (s *SelectionStore) Clear(ctx context.Context, showID, userID uuid.UUID) error {
	key := constants.BuildSelectionKey(showID.String(), userID.String())
	return s.cache.Delete(ctx, key)
}
