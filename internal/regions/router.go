package regions

import (
	"showtime/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRegionRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public routes
	router.GET("/districts", controller.GetDistricts) // GET /api/v1/districts - List districts
	router.GET("/cities", controller.GetCities)       // GET /api/v1/cities?district= - List cities

	// Admin routes
	adminRegions := router.Group("/admin/regions")
	adminRegions.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminRegions.PUT("/default-city", controller.SetDefaultCity) // PUT /api/v1/admin/regions/default-city
	}
}
