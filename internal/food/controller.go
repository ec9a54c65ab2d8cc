package food

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

// GetCatalog godoc
// @Summary List available food items
// @Tags food
// @Produce json
// @Success 200 {object} response.StandardApiResponse
// @Router /food [get]
func (c *Controller) GetCatalog(ctx *gin.Context) {
	items, err := c.service.ListCatalog(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch food catalog", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Food catalog fetched successfully", items)
}

func (c *Controller) GetAllItems(ctx *gin.Context) {
	items, err := c.service.ListAllItems(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch food items", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Food items fetched successfully", items)
}

func (c *Controller) CreateItem(ctx *gin.Context) {
	var req CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	item, err := c.service.CreateItem(ctx.Request.Context(), req)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to create food item", err)
		return
	}
	response.Success(ctx, http.StatusCreated, "Food item created successfully", item)
}

func (c *Controller) UpdateItem(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid item ID", err)
		return
	}

	var req UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	item, err := c.service.UpdateItem(ctx.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.Error(ctx, http.StatusNotFound, "Food item not found", err)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update food item", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Food item updated successfully", item)
}

func (c *Controller) DeleteItem(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid item ID", err)
		return
	}

	if err := c.service.DeleteItem(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.Error(ctx, http.StatusNotFound, "Food item not found", err)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to delete food item", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Food item deleted successfully", nil)
}
