package shows

import (
	"showtime/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupShowRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public routes - anyone can browse shows
	publicShows := router.Group("/shows")
	{
		publicShows.GET("", controller.GetAllShows)               // GET /api/v1/shows?city=&kind=
		publicShows.GET("/upcoming", controller.GetUpcomingShows) // GET /api/v1/shows/upcoming
		publicShows.GET("/:id", controller.GetShow)               // GET /api/v1/shows/:id
	}

	// Admin routes - show management
	adminShows := router.Group("/admin/shows")
	adminShows.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminShows.POST("", controller.CreateShow)       // POST /api/v1/admin/shows
		adminShows.GET("", controller.GetAllShows)       // GET /api/v1/admin/shows
		adminShows.PUT("/:id", controller.UpdateShow)    // PUT /api/v1/admin/shows/:id
		adminShows.DELETE("/:id", controller.DeleteShow) // DELETE /api/v1/admin/shows/:id
	}
}
