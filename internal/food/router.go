package food

import (
	"showtime/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupFoodRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public catalog
	router.GET("/food", controller.GetCatalog) // GET /api/v1/food

	// Admin catalog management
	adminFood := router.Group("/admin/food")
	adminFood.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminFood.GET("", controller.GetAllItems)       // GET /api/v1/admin/food
		adminFood.POST("", controller.CreateItem)       // POST /api/v1/admin/food
		adminFood.PUT("/:id", controller.UpdateItem)    // PUT /api/v1/admin/food/:id
		adminFood.DELETE("/:id", controller.DeleteItem) // DELETE /api/v1/admin/food/:id
	}
}
