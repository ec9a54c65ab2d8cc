package regions

import (
	"errors"
	"net/http"

	"showtime/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetDistricts godoc
// @Summary List districts
// @Tags regions
// @Produce json
// @Success 200 {object} response.StandardApiResponse
// @Router /districts [get]
func (c *Controller) GetDistricts(ctx *gin.Context) {
	districts, err := c.service.GetDistricts(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch districts", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Districts fetched successfully", districts)
}

// GetCities godoc
// @Summary List cities, optionally filtered by district
// @Tags regions
// @Produce json
// @Param district query string false "District name"
// @Success 200 {object} response.StandardApiResponse
// @Router /cities [get]
func (c *Controller) GetCities(ctx *gin.Context) {
	district := ctx.Query("district")

	cities, err := c.service.GetCities(ctx.Request.Context(), district)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch cities", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Cities fetched successfully", gin.H{
		"cities":       cities,
		"default_city": c.service.DefaultCity(),
	})
}

type setDefaultCityRequest struct {
	City string `json:"city" binding:"required"`
}

func (c *Controller) SetDefaultCity(ctx *gin.Context) {
	var req setDefaultCityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	if err := c.service.SetDefaultCity(ctx.Request.Context(), req.City); err != nil {
		if errors.Is(err, ErrCityNotFound) {
			response.Error(ctx, http.StatusNotFound, "City not found", err)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update default city", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Default city updated", gin.H{"default_city": c.service.DefaultCity()})
}
