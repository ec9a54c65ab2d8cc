package announcements

import (
	"showtime/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAnnouncementRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public routes
	router.GET("/announcements", controller.GetAnnouncements) // GET /api/v1/announcements?city=

	// Admin routes
	admin := router.Group("/admin/announcements")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("", controller.GetAllAnnouncements)      // GET /api/v1/admin/announcements
		admin.POST("", controller.CreateAnnouncement)      // POST /api/v1/admin/announcements
		admin.PUT("/:id", controller.UpdateAnnouncement)   // PUT /api/v1/admin/announcements/:id
		admin.DELETE("/:id", controller.DeleteAnnouncement) // DELETE /api/v1/admin/announcements/:id
	}
}
