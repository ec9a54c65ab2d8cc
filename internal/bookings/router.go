package bookings

import (
	"showtime/internal/shared/middleware"
	"showtime/internal/users"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(router *gin.RouterGroup, controller *Controller) {
	userBookings := router.Group("/bookings")
	userBookings.Use(middleware.JWTAuth())
	{
		userBookings.POST("", controller.Checkout)            // POST /api/v1/bookings
		userBookings.GET("", controller.GetMyBookings)        // GET /api/v1/bookings
		userBookings.GET("/:id", controller.GetBooking)       // GET /api/v1/bookings/:id
		userBookings.POST("/:id/food", controller.AddFood)    // POST /api/v1/bookings/:id/food
		userBookings.DELETE("/:id", controller.CancelBooking) // DELETE /api/v1/bookings/:id
	}

	// QR reference lookup for venue and kitchen staff
	staffBookings := router.Group("/staff/bookings")
	staffBookings.Use(middleware.JWTAuth(), middleware.RequireRoles(string(users.RoleKitchen), string(users.RoleAdmin)))
	{
		staffBookings.GET("/ref/:ref", controller.GetBookingByRef) // GET /api/v1/staff/bookings/ref/:ref
	}
}
