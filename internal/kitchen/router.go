package kitchen

import (
	"showtime/internal/shared/middleware"
	"showtime/internal/users"

	"github.com/gin-gonic/gin"
)

func SetupKitchenRoutes(router *gin.RouterGroup, controller *Controller) {
	kitchen := router.Group("/kitchen")
	kitchen.Use(middleware.JWTAuth(), middleware.RequireRoles(string(users.RoleKitchen), string(users.RoleAdmin)))
	{
		kitchen.GET("/orders", controller.GetBoard)                               // GET /api/v1/kitchen/orders
		kitchen.PATCH("/items/:item_id/status", controller.TransitionItem)        // PATCH /api/v1/kitchen/items/:item_id/status
		kitchen.PATCH("/bookings/:booking_id/status", controller.TransitionGroup) // PATCH /api/v1/kitchen/bookings/:booking_id/status
	}
}
