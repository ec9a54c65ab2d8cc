package roles

import (
	"context"
	"errors"

	"showtime/internal/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRoleNotGranted = errors.New("role not granted to user")

type Repository interface {
	ListUsers(ctx context.Context) ([]users.User, error)
	ListRolesByUser(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]string, error)
	AddRole(ctx context.Context, userID uuid.UUID, role string) error
	RemoveRole(ctx context.Context, userID uuid.UUID, role string) error
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListUsers(ctx context.Context) ([]users.User, error) {
	var all []users.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&all).Error
	return all, err
}

func (r *repository) ListRolesByUser(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	var grants []UserRole
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at ASC").
		Find(&grants).Error
	if err != nil {
		return nil, err
	}

	byUser := make(map[uuid.UUID][]string, len(userIDs))
	for _, g := range grants {
		byUser[g.UserID] = append(byUser[g.UserID], g.Role)
	}
	return byUser, nil
}

func (r *repository) AddRole(ctx context.Context, userID uuid.UUID, role string) error {
	grant := UserRole{UserID: userID, Role: role}
	// Granting an already-held role is a no-op
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, role).
		FirstOrCreate(&grant).Error
	return err
}

func (r *repository) RemoveRole(ctx context.Context, userID uuid.UUID, role string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, role).
		Delete(&UserRole{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoleNotGranted
	}
	return nil
}

func (r *repository) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&users.User{}).Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}
