package announcements

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service interface {
	CreateAnnouncement(adminID uuid.UUID, req CreateAnnouncementRequest) (*Announcement, error)
	GetAnnouncement(id uuid.UUID) (*Announcement, error)
	GetAllAnnouncements() ([]Announcement, error)
	GetVisibleAnnouncements(city string) ([]Announcement, error)
	UpdateAnnouncement(id uuid.UUID, req UpdateAnnouncementRequest) (*Announcement, error)
	DeleteAnnouncement(id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateAnnouncement(adminID uuid.UUID, req CreateAnnouncementRequest) (*Announcement, error) {
	if req.StartsAt != nil && req.EndsAt != nil && req.EndsAt.Before(*req.StartsAt) {
		return nil, fmt.Errorf("ends_at must be after starts_at")
	}

	announcement := &Announcement{
		Title:     req.Title,
		Message:   req.Message,
		City:      req.City,
		IsActive:  true,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		CreatedBy: adminID,
	}
	if err := s.repo.Create(announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return announcement, nil
}

func (s *service) GetAnnouncement(id uuid.UUID) (*Announcement, error) {
	return s.repo.GetByID(id)
}

func (s *service) GetAllAnnouncements() ([]Announcement, error) {
	return s.repo.GetAll()
}

// GetVisibleAnnouncements filters the active set down to ones whose
// display window covers the current time.
func (s *service) GetVisibleAnnouncements(city string) ([]Announcement, error) {
	active, err := s.repo.GetActiveForCity(city)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch announcements: %w", err)
	}

	now := time.Now()
	visible := make([]Announcement, 0, len(active))
	for i := range active {
		if active[i].VisibleAt(now) {
			visible = append(visible, active[i])
		}
	}
	return visible, nil
}

func (s *service) UpdateAnnouncement(id uuid.UUID, req UpdateAnnouncementRequest) (*Announcement, error) {
	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Message != nil {
		updates["message"] = *req.Message
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.StartsAt != nil {
		updates["starts_at"] = *req.StartsAt
	}
	if req.EndsAt != nil {
		updates["ends_at"] = *req.EndsAt
	}
	if len(updates) == 0 {
		return s.repo.GetByID(id)
	}
	return s.repo.Update(id, updates)
}

func (s *service) DeleteAnnouncement(id uuid.UUID) error {
	return s.repo.Delete(id)
}
