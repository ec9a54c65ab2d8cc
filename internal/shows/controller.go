package shows

import (
	"errors"
	"net/http"
	"strconv"

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

// GetAllShows godoc
// @Summary Browse shows with filters
// @Tags shows
// @Produce json
// @Param city query string false "City"
// @Param kind query string false "movie|event|sport|play"
// @Param search query string false "Title contains"
// @Success 200 {object} response.StandardApiResponse
// @Router /shows [get]
func (c *Controller) GetAllShows(ctx *gin.Context) {
	var query ShowListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.BadRequest(ctx, "Invalid query parameters", err)
		return
	}

	result, err := c.service.GetAllShows(query)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch shows", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Shows fetched successfully", result)
}

// GetShow godoc
// @Summary Get show details
// @Tags shows
// @Produce json
// @Param id path string true "Show ID"
// @Success 200 {object} response.StandardApiResponse
// @Router /shows/{id} [get]
func (c *Controller) GetShow(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid show ID", err)
		return
	}

	show, err := c.service.GetShowByID(id)
	if err != nil {
		if errors.Is(err, ErrShowNotFound) {
			response.Error(ctx, http.StatusNotFound, "Show not found", err)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch show", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Show fetched successfully", show)
}

func (c *Controller) GetUpcomingShows(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	result, err := c.service.GetUpcomingShows(ctx.Query("city"), limit)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch upcoming shows", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Upcoming shows fetched successfully", result)
}

func (c *Controller) CreateShow(ctx *gin.Context) {
	var req CreateShowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	adminID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		response.Error(ctx, http.StatusUnauthorized, "Invalid user context", err)
		return
	}

	show, err := c.service.CreateShow(adminID, req)
	if err != nil {
		response.BadRequest(ctx, "Failed to create show", err)
		return
	}
	response.Success(ctx, http.StatusCreated, "Show created successfully", show)
}

func (c *Controller) UpdateShow(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid show ID", err)
		return
	}

	var req UpdateShowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	adminID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		response.Error(ctx, http.StatusUnauthorized, "Invalid user context", err)
		return
	}

	show, err := c.service.UpdateShow(id, adminID, req)
	if err != nil {
		if errors.Is(err, ErrShowNotFound) {
			response.Error(ctx, http.StatusNotFound, "Show not found", err)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update show", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Show updated successfully", show)
}

func (c *Controller) DeleteShow(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid show ID", err)
		return
	}

	if err := c.service.DeleteShow(id); err != nil {
		switch {
		case errors.Is(err, ErrShowNotFound):
			response.Error(ctx, http.StatusNotFound, "Show not found", err)
		case errors.Is(err, ErrShowPublished):
			response.Error(ctx, http.StatusConflict, "Published shows cannot be deleted", err)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to delete show", err)
		}
		return
	}
	response.Success(ctx, http.StatusOK, "Show deleted successfully", nil)
}
