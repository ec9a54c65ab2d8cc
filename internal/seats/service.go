package seats

import (
	"context"
	"errors"
	"fmt"

	"showtime/internal/shows"

	"github.com/google/uuid"
)

var (
	ErrSeatNotFound = errors.New("seat not found in this show's layout")
)

// BookedSeatSource reports which seats are already sold for a show.
// Implemented by the booking repository; injected with a setter to
// avoid an import cycle.
type BookedSeatSource interface {
	BookedSeatIDs(ctx context.Context, showID uuid.UUID) ([]uuid.UUID, error)
}

// ShowSource is the narrow surface needed from the show module.
type ShowSource interface {
	GetShow(id uuid.UUID) (*shows.Show, error)
}

type GridResponse struct {
	ShowID         string     `json:"show_id"`
	Rows           []RowGroup `json:"rows"`
	SelectedCount  int        `json:"selected_count"`
	TicketSubtotal float64    `json:"ticket_subtotal"`
	MaxSeats       int        `json:"max_seats"`
}

type Service interface {
	SetBookedSeatSource(source BookedSeatSource)

	GetGrid(ctx context.Context, showID, userID uuid.UUID) (*GridResponse, error)
	ToggleSeat(ctx context.Context, showID, userID, seatID uuid.UUID) (*GridResponse, error)
	ClearSelection(ctx context.Context, showID, userID uuid.UUID) error

	// SelectedSeats resolves the current selection to seat records,
	// used by checkout to price the booking.
	SelectedSeats(ctx context.Context, showID, userID uuid.UUID) ([]Seat, error)
}

type service struct {
	repo        Repository
	showSource  ShowSource
	selections  *SelectionStore
	bookedSrc   BookedSeatSource
	maxSelected int
}

func NewService(repo Repository, showSource ShowSource, selections *SelectionStore, maxSelected int) Service {
	if maxSelected <= 0 {
		maxSelected = MaxSelectedSeats
	}
	return &service{
		repo:        repo,
		showSource:  showSource,
		selections:  selections,
		maxSelected: maxSelected,
	}
}

func (s *service) SetBookedSeatSource(source BookedSeatSource) {
	s.bookedSrc = source
}

// loadSeats fetches the show's layout with booked and selected
// overlays applied. The stored status is only ever available or
// disabled; booked comes from sold seats, selected from the session.
func (s *service) loadSeats(ctx context.Context, showID, userID uuid.UUID) ([]Seat, error) {
	show, err := s.showSource.GetShow(showID)
	if err != nil {
		return nil, err
	}

	layout, err := s.repo.GetByScreen(ctx, show.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seat layout: %w", err)
	}

	booked := make(map[uuid.UUID]bool)
	if s.bookedSrc != nil {
		bookedIDs, err := s.bookedSrc.BookedSeatIDs(ctx, showID)
		if err != nil {
			return nil, fmt.Errorf("failed to load booked seats: %w", err)
		}
		for _, id := range bookedIDs {
			booked[id] = true
		}
	}

	selected := make(map[uuid.UUID]bool)
	if userID != uuid.Nil {
		selectedIDs, err := s.selections.Get(ctx, showID, userID)
		if err != nil {
			return nil, err
		}
		for _, id := range selectedIDs {
			selected[id] = true
		}
	}

	for i := range layout {
		switch {
		case layout[i].Status == StatusDisabled:
			// stays disabled regardless of overlays
		case booked[layout[i].ID]:
			layout[i].Status = StatusBooked
		case selected[layout[i].ID]:
			layout[i].Status = StatusSelected
		}
	}
	return layout, nil
}

func (s *service) buildGrid(showID uuid.UUID, layout []Seat) *GridResponse {
	rows := ComposeGrid(layout)

	subtotal := 0.0
	for i := range layout {
		if layout[i].Status == StatusSelected {
			subtotal += layout[i].Price
		}
	}

	return &GridResponse{
		ShowID:         showID.String(),
		Rows:           rows,
		SelectedCount:  CountSelected(rows),
		TicketSubtotal: subtotal,
		MaxSeats:       s.maxSelected,
	}
}

func (s *service) GetGrid(ctx context.Context, showID, userID uuid.UUID) (*GridResponse, error) {
	layout, err := s.loadSeats(ctx, showID, userID)
	if err != nil {
		return nil, err
	}
	return s.buildGrid(showID, layout), nil
}

func (s *service) ToggleSeat(ctx context.Context, showID, userID, seatID uuid.UUID) (*GridResponse, error) {
	layout, err := s.loadSeats(ctx, showID, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range layout {
		if layout[i].ID == seatID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrSeatNotFound
	}

	target := layout[idx]
	if target.Status == StatusAvailable {
		// Selecting a new seat; enforce the session cap before mutating.
		selectedCount := 0
		for i := range layout {
			if layout[i].Status == StatusSelected {
				selectedCount++
			}
		}
		if selectedCount >= s.maxSelected {
			return s.buildGrid(showID, layout), ErrSelectionLimit
		}
	}

	layout[idx] = Toggle(target)

	// Booked and disabled seats are no-ops; only persist real changes.
	if layout[idx].Status != target.Status {
		selectedIDs := make([]uuid.UUID, 0, s.maxSelected)
		for i := range layout {
			if layout[i].Status == StatusSelected {
				selectedIDs = append(selectedIDs, layout[i].ID)
			}
		}
		if err := s.selections.Save(ctx, showID, userID, selectedIDs); err != nil {
			return nil, err
		}
	}

	return s.buildGrid(showID, layout), nil
}

func (s *service) ClearSelection(ctx context.Context, showID, userID uuid.UUID) error {
	return s.selections.Clear(ctx, showID, userID)
}

func (s *service) SelectedSeats(ctx context.Context, showID, userID uuid.UUID) ([]Seat, error) {
	ids, err := s.selections.Get(ctx, showID, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return s.repo.GetByIDs(ctx, ids)
}
