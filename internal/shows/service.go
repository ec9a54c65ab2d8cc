package shows

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"showtime/internal/shared/constants"
	"showtime/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrShowNotFound  = errors.New("show not found")
	ErrShowPublished = errors.New("published shows cannot be deleted")
)

type Service interface {
	SetCacheService(cacheService cache.Service)

	CreateShow(adminID uuid.UUID, req CreateShowRequest) (*ShowResponse, error)
	GetShowByID(id uuid.UUID) (*ShowResponse, error)
	GetAllShows(query ShowListQuery) (*PaginatedShows, error)
	GetUpcomingShows(city string, limit int) ([]ShowResponse, error)
	UpdateShow(id uuid.UUID, adminID uuid.UUID, req UpdateShowRequest) (*ShowResponse, error)
	DeleteShow(id uuid.UUID) error

	// Used by the booking and seat modules.
	GetShow(id uuid.UUID) (*Show, error)
}

type service struct {
	repo         Repository
	venueService VenueService
	cacheService cache.Service
}

// VenueService is the narrow surface the show module needs from venues,
// kept as a local interface to avoid an import cycle.
type VenueService interface {
	ScreenBelongsToVenue(ctx context.Context, screenID, venueID uuid.UUID) (bool, error)
}

func NewService(repo Repository, venueService VenueService) Service {
	return &service{repo: repo, venueService: venueService}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) invalidateShowCache(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	// Listing keys are parameterised, so invalidate by pattern.
	_ = s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_SHOWS_ALL)
}

func (s *service) CreateShow(adminID uuid.UUID, req CreateShowRequest) (*ShowResponse, error) {
	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue id: %w", err)
	}
	screenID, err := uuid.Parse(req.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("invalid screen id: %w", err)
	}

	if s.venueService != nil {
		ok, err := s.venueService.ScreenBelongsToVenue(context.Background(), screenID, venueID)
		if err != nil {
			return nil, fmt.Errorf("failed to validate screen: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("screen does not belong to the given venue")
		}
	}

	if req.ShowTime.Before(time.Now()) {
		return nil, fmt.Errorf("show time must be in the future")
	}

	show := &Show{
		Title:       req.Title,
		Description: req.Description,
		Kind:        Kind(req.Kind),
		Language:    req.Language,
		DurationMin: req.DurationMin,
		Certificate: req.Certificate,
		City:        req.City,
		VenueID:     venueID,
		ScreenID:    screenID,
		ShowTime:    req.ShowTime,
		PosterURL:   req.PosterURL,
		Status:      ShowStatusDraft,
		CreatedBy:   adminID,
	}
	if err := s.repo.Create(show); err != nil {
		return nil, fmt.Errorf("failed to create show: %w", err)
	}

	s.invalidateShowCache(context.Background())

	resp := show.ToResponse()
	return &resp, nil
}

func (s *service) GetShowByID(id uuid.UUID) (*ShowResponse, error) {
	ctx := context.Background()
	cacheKey := constants.BuildShowDetailKey(id.String())

	if s.cacheService != nil {
		var cached ShowResponse
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	show, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, fmt.Errorf("failed to fetch show: %w", err)
	}

	resp := show.ToResponse()
	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, resp, constants.TTL_SEMI_STATIC_MEDIUM)
	}
	return &resp, nil
}

func (s *service) GetShow(id uuid.UUID) (*Show, error) {
	show, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return show, nil
}

func (s *service) GetAllShows(query ShowListQuery) (*PaginatedShows, error) {
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	ctx := context.Background()
	var cacheKey string
	// Only the common browse query (city/kind, no search) is cached.
	if s.cacheService != nil && query.Search == "" && query.VenueID == "" && query.DateFrom == "" && query.Status == "" {
		cacheKey = constants.BuildShowListKey(query.City, query.Kind, query.Page, query.Limit)
		var cached PaginatedShows
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	showList, totalCount, err := s.repo.GetAll(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	responses := make([]ShowResponse, 0, len(showList))
	for i := range showList {
		responses = append(responses, showList[i].ToResponse())
	}

	result := &PaginatedShows{
		Shows:      responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}

	if cacheKey != "" {
		_ = s.cacheService.Set(ctx, cacheKey, result, constants.TTL_SEMI_STATIC_SHORT)
	}
	return result, nil
}

func (s *service) GetUpcomingShows(city string, limit int) ([]ShowResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	showList, err := s.repo.GetUpcoming(city, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming shows: %w", err)
	}
	responses := make([]ShowResponse, 0, len(showList))
	for i := range showList {
		responses = append(responses, showList[i].ToResponse())
	}
	return responses, nil
}

func (s *service) UpdateShow(id uuid.UUID, adminID uuid.UUID, req UpdateShowRequest) (*ShowResponse, error) {
	updates := map[string]interface{}{"updated_by": adminID}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Language != nil {
		updates["language"] = *req.Language
	}
	if req.DurationMin != nil {
		updates["duration_min"] = *req.DurationMin
	}
	if req.Certificate != nil {
		updates["certificate"] = *req.Certificate
	}
	if req.ShowTime != nil {
		updates["show_time"] = *req.ShowTime
	}
	if req.PosterURL != nil {
		updates["poster_url"] = *req.PosterURL
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	show, err := s.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, fmt.Errorf("failed to update show: %w", err)
	}

	s.invalidateShowCache(context.Background())

	resp := show.ToResponse()
	return &resp, nil
}

func (s *service) DeleteShow(id uuid.UUID) error {
	show, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShowNotFound
		}
		return fmt.Errorf("failed to fetch show: %w", err)
	}
	if show.Status == ShowStatusPublished && show.ShowTime.After(time.Now()) {
		return ErrShowPublished
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete show: %w", err)
	}
	s.invalidateShowCache(context.Background())
	return nil
}
