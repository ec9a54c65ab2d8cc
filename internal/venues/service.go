package venues

import (
	"context"
	"errors"
	"fmt"

	"showtime/internal/seats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrScreenNotFound  = errors.New("screen not found")
	ErrInvalidSections = errors.New("invalid section row configuration")
)

type Service interface {
	CreateVenue(ctx context.Context, req CreateVenueRequest) (*Venue, error)
	GetVenues(ctx context.Context, city string) ([]Venue, error)
	GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	UpdateVenue(ctx context.Context, id uuid.UUID, req UpdateVenueRequest) (*Venue, error)
	DeleteVenue(ctx context.Context, id uuid.UUID) error

	CreateScreen(ctx context.Context, venueID uuid.UUID, req CreateScreenRequest) (*ScreenResponse, error)
	GetScreens(ctx context.Context, venueID uuid.UUID) ([]ScreenResponse, error)
	DeleteScreen(ctx context.Context, id uuid.UUID) error

	// ScreenBelongsToVenue validates a show's venue/screen pairing.
	ScreenBelongsToVenue(ctx context.Context, screenID, venueID uuid.UUID) (bool, error)
}

type service struct {
	repo     Repository
	seatRepo seats.Repository
}

func NewService(repo Repository, seatRepo seats.Repository) Service {
	return &service{repo: repo, seatRepo: seatRepo}
}

func (s *service) CreateVenue(ctx context.Context, req CreateVenueRequest) (*Venue, error) {
	venue := &Venue{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
	}
	if err := s.repo.CreateVenue(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	return venue, nil
}

func (s *service) GetVenues(ctx context.Context, city string) ([]Venue, error) {
	return s.repo.GetVenues(ctx, city)
}

func (s *service) GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	venue, err := s.repo.GetVenueByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return venue, nil
}

func (s *service) UpdateVenue(ctx context.Context, id uuid.UUID, req UpdateVenueRequest) (*Venue, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if len(updates) == 0 {
		return s.GetVenueByID(ctx, id)
	}

	venue, err := s.repo.UpdateVenue(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}
	return venue, nil
}

func (s *service) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	screens, err := s.repo.GetScreensByVenue(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list screens: %w", err)
	}
	if len(screens) > 0 {
		return fmt.Errorf("venue still has %d screens", len(screens))
	}

	if err := s.repo.DeleteVenue(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVenueNotFound
		}
		return fmt.Errorf("failed to delete venue: %w", err)
	}
	return nil
}

// GenerateLayout expands section row bands into individual seats.
// Row labels run RowStart through RowEnd inclusive as single letters.
func GenerateLayout(screenID uuid.UUID, sections []ScreenSection) ([]seats.Seat, error) {
	var layout []seats.Seat
	for _, section := range sections {
		if len(section.RowStart) != 1 || len(section.RowEnd) != 1 ||
			section.RowStart[0] > section.RowEnd[0] {
			return nil, ErrInvalidSections
		}
		for row := section.RowStart[0]; row <= section.RowEnd[0]; row++ {
			for number := 1; number <= section.SeatsPerRow; number++ {
				layout = append(layout, seats.Seat{
					ScreenID: screenID,
					Row:      string(row),
					Number:   number,
					Category: seats.Category(section.Category),
					Price:    section.Price,
					Status:   seats.StatusAvailable,
				})
			}
		}
	}
	return layout, nil
}

func (s *service) CreateScreen(ctx context.Context, venueID uuid.UUID, req CreateScreenRequest) (*ScreenResponse, error) {
	if _, err := s.GetVenueByID(ctx, venueID); err != nil {
		return nil, err
	}

	screen := &Screen{VenueID: venueID, Name: req.Name}
	sections := make([]ScreenSection, 0, len(req.Sections))
	for _, sr := range req.Sections {
		sections = append(sections, ScreenSection{
			Category:    sr.Category,
			Price:       sr.Price,
			RowStart:    sr.RowStart,
			RowEnd:      sr.RowEnd,
			SeatsPerRow: sr.SeatsPerRow,
		})
	}

	// Validate the row bands before any writes happen.
	if _, err := GenerateLayout(uuid.Nil, sections); err != nil {
		return nil, err
	}

	if err := s.repo.CreateScreen(ctx, screen, sections); err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	layout, err := GenerateLayout(screen.ID, sections)
	if err != nil {
		return nil, err
	}
	if err := s.seatRepo.CreateBatch(ctx, layout); err != nil {
		return nil, fmt.Errorf("failed to generate seat layout: %w", err)
	}

	return &ScreenResponse{
		ID:        screen.ID.String(),
		VenueID:   venueID.String(),
		Name:      screen.Name,
		Sections:  sections,
		SeatCount: int64(len(layout)),
	}, nil
}

func (s *service) GetScreens(ctx context.Context, venueID uuid.UUID) ([]ScreenResponse, error) {
	screens, err := s.repo.GetScreensByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list screens: %w", err)
	}

	responses := make([]ScreenResponse, 0, len(screens))
	for i := range screens {
		sections, err := s.repo.GetSectionsByScreen(ctx, screens[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load sections: %w", err)
		}
		count, err := s.seatRepo.CountByScreen(ctx, screens[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count seats: %w", err)
		}
		responses = append(responses, ScreenResponse{
			ID:        screens[i].ID.String(),
			VenueID:   venueID.String(),
			Name:      screens[i].Name,
			Sections:  sections,
			SeatCount: count,
		})
	}
	return responses, nil
}

func (s *service) DeleteScreen(ctx context.Context, id uuid.UUID) error {
	if err := s.seatRepo.DeleteByScreen(ctx, id); err != nil {
		return fmt.Errorf("failed to delete seat layout: %w", err)
	}
	if err := s.repo.DeleteScreen(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScreenNotFound
		}
		return fmt.Errorf("failed to delete screen: %w", err)
	}
	return nil
}

func (s *service) ScreenBelongsToVenue(ctx context.Context, screenID, venueID uuid.UUID) (bool, error) {
	screen, err := s.repo.GetScreenByID(ctx, screenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return screen.VenueID == venueID, nil
}
