package regions

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

var ErrCityNotFound = errors.New("city not found")

type Service interface {
	GetDistricts(ctx context.Context) ([]District, error)
	GetCities(ctx context.Context, district string) ([]CityResponse, error)

	// Shared selection context: one process-wide default city, loaded at
	// startup and updated on change. Callers read it instead of carrying
	// their own ambient state.
	DefaultCity() string
	SetDefaultCity(ctx context.Context, name string) error
}

type service struct {
	repo Repository

	mu          sync.RWMutex
	defaultCity string
}

// NewService loads the startup default city before serving requests.
func NewService(repo Repository, startupCity string) Service {
	return &service{
		repo:        repo,
		defaultCity: startupCity,
	}
}

func (s *service) GetDistricts(ctx context.Context) ([]District, error) {
	return s.repo.GetDistricts(ctx)
}

func (s *service) GetCities(ctx context.Context, district string) ([]CityResponse, error) {
	cities, err := s.repo.GetCities(ctx, district)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}

	result := make([]CityResponse, 0, len(cities))
	for i := range cities {
		result = append(result, cities[i].ToResponse())
	}
	return result, nil
}

func (s *service) DefaultCity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultCity
}

func (s *service) SetDefaultCity(ctx context.Context, name string) error {
	city, err := s.repo.GetCityByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCityNotFound
		}
		return fmt.Errorf("failed to look up city: %w", err)
	}

	s.mu.Lock()
	s.defaultCity = city.Name
	s.mu.Unlock()
	return nil
}
