package roles

import (
	"showtime/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoleRoutes configures the admin role management routes.
// Missing/invalid tokens get 401 from JWTAuth; authenticated non-admins get 403.
func SetupRoleRoutes(rg *gin.RouterGroup, controller *Controller) {
	admin := rg.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("/users", controller.ListUsers)
		admin.POST("/users/:id/roles", controller.AddRole)
		admin.DELETE("/users/:id/roles", controller.RemoveRole)
	}
}
