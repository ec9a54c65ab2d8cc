package roles

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is one granted role for one user; a user may hold several.
type UserRole struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_role"`
	Role      string    `json:"role" gorm:"not null;uniqueIndex:idx_user_role"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

// UserWithRoles is the admin listing shape
type UserWithRoles struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

// RoleRequest is the add/remove payload
type RoleRequest struct {
	Role string `json:"role" validate:"required,oneof=USER ADMIN KITCHEN"`
}
