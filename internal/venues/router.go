package venues

import (
	"showtime/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupVenueRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public routes - venue browsing
	publicVenues := router.Group("/venues")
	{
		publicVenues.GET("", controller.GetVenues)             // GET /api/v1/venues?city=
		publicVenues.GET("/:id", controller.GetVenue)          // GET /api/v1/venues/:id
		publicVenues.GET("/:id/screens", controller.GetScreens) // GET /api/v1/venues/:id/screens
	}

	// Admin routes - venue and screen management
	adminVenues := router.Group("/admin/venues")
	adminVenues.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminVenues.POST("", controller.CreateVenue)                         // POST /api/v1/admin/venues
		adminVenues.PUT("/:id", controller.UpdateVenue)                      // PUT /api/v1/admin/venues/:id
		adminVenues.DELETE("/:id", controller.DeleteVenue)                   // DELETE /api/v1/admin/venues/:id
		adminVenues.POST("/:id/screens", controller.CreateScreen)            // POST /api/v1/admin/venues/:id/screens
		adminVenues.DELETE("/screens/:screen_id", controller.DeleteScreen)   // DELETE /api/v1/admin/venues/screens/:screen_id
	}
}
