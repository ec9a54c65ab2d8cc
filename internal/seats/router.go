package seats

import (
	"showtime/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSeatRoutes(router *gin.RouterGroup, controller *Controller) {
	grid := router.Group("/shows/:show_id/seats")
	{
		// Grid is public; OptionalAuth lets a signed-in user see their
		// own selection overlay.
		grid.GET("", middleware.OptionalAuth(), controller.GetGrid) // GET /api/v1/shows/:show_id/seats

		authed := grid.Group("")
		authed.Use(middleware.JWTAuth())
		{
			authed.POST("/toggle", controller.ToggleSeat)       // POST /api/v1/shows/:show_id/seats/toggle
			authed.DELETE("/selection", controller.ClearSelection) // DELETE /api/v1/shows/:show_id/seats/selection
		}
	}
}
