package roles

import (
	"net/http"

	"showtime/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// ListUsers handles GET /admin/users
func (c *Controller) ListUsers(ctx *gin.Context) {
	result, err := c.service.ListUsersWithRoles(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list users", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Users retrieved successfully", gin.H{
		"users": result,
		"count": len(result),
	}, nil)
}

// AddRole handles POST /admin/users/:id/roles
func (c *Controller) AddRole(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return
	}

	var req RoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	if err := c.service.AddRole(ctx.Request.Context(), userID, req.Role); err != nil {
		switch err {
		case ErrUserNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "User not found", nil, nil)
		case ErrInvalidRole:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid role", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to add role", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Role added successfully", nil, nil)
}

// RemoveRole handles DELETE /admin/users/:id/roles
func (c *Controller) RemoveRole(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return
	}

	var req RoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	if err := c.service.RemoveRole(ctx.Request.Context(), userID, req.Role); err != nil {
		switch err {
		case ErrUserNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "User not found", nil, nil)
		case ErrRoleNotGranted:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Role not granted to user", nil, nil)
		case ErrInvalidRole:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid role", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to remove role", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Role removed successfully", nil, nil)
}
