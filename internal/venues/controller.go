package venues

import (
	"errors"
	"net/http"

	"showtime/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetVenues godoc
// @Summary List venues, optionally filtered by city
// @Tags venues
// @Produce json
// @Param city query string false "City"
// @Success 200 {object} response.StandardApiResponse
// @Router /venues [get]
func (c *Controller) GetVenues(ctx *gin.Context) {
	venues, err := c.service.GetVenues(ctx.Request.Context(), ctx.Query("city"))
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch venues", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Venues fetched successfully", venues)
}

func (c *Controller) GetVenue(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid venue ID", err)
		return
	}

	venue, err := c.service.GetVenueByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(ctx, http.StatusNotFound, "Venue not found", err)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch venue", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Venue fetched successfully", venue)
}

func (c *Controller) GetScreens(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid venue ID", err)
		return
	}

	screens, err := c.service.GetScreens(ctx.Request.Context(), venueID)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch screens", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Screens fetched successfully", screens)
}

func (c *Controller) CreateVenue(ctx *gin.Context) {
	var req CreateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	venue, err := c.service.CreateVenue(ctx.Request.Context(), req)
	if err != nil {
		response.BadRequest(ctx, "Failed to create venue", err)
		return
	}
	response.Success(ctx, http.StatusCreated, "Venue created successfully", venue)
}

func (c *Controller) UpdateVenue(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid venue ID", err)
		return
	}

	var req UpdateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	venue, err := c.service.UpdateVenue(ctx.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(ctx, http.StatusNotFound, "Venue not found", err)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update venue", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Venue updated successfully", venue)
}

func (c *Controller) DeleteVenue(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid venue ID", err)
		return
	}

	if err := c.service.DeleteVenue(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(ctx, http.StatusNotFound, "Venue not found", err)
			return
		}
		response.Error(ctx, http.StatusConflict, "Failed to delete venue", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Venue deleted successfully", nil)
}

func (c *Controller) CreateScreen(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid venue ID", err)
		return
	}

	var req CreateScreenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	screen, err := c.service.CreateScreen(ctx.Request.Context(), venueID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrVenueNotFound):
			response.Error(ctx, http.StatusNotFound, "Venue not found", err)
		case errors.Is(err, ErrInvalidSections):
			response.BadRequest(ctx, "Invalid section configuration", err)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to create screen", err)
		}
		return
	}
	response.Success(ctx, http.StatusCreated, "Screen created successfully", screen)
}

func (c *Controller) DeleteScreen(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("screen_id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid screen ID", err)
		return
	}

	if err := c.service.DeleteScreen(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, ErrScreenNotFound) {
			response.Error(ctx, http.StatusNotFound, "Screen not found", err)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to delete screen", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Screen deleted successfully", nil)
}
