package promos

import (
	"showtime/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPromoRoutes(router *gin.RouterGroup, controller *Controller) {
	// Validation requires a signed-in user
	promoGroup := router.Group("/promos")
	promoGroup.Use(middleware.JWTAuth())
	{
		promoGroup.POST("/validate", controller.ValidatePromo) // POST /api/v1/promos/validate
	}

	// Admin management
	adminPromos := router.Group("/admin/promos")
	adminPromos.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminPromos.POST("", controller.CreatePromo)        // POST /api/v1/admin/promos
		adminPromos.GET("", controller.GetAllPromos)        // GET /api/v1/admin/promos
		adminPromos.PATCH("/:id", controller.SetActive)     // PATCH /api/v1/admin/promos/:id
		adminPromos.DELETE("/:id", controller.DeletePromo)  // DELETE /api/v1/admin/promos/:id
	}
}
