package kitchen

import (
	"errors"
	"net/http"

	"showtime/internal/food"
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

// GetBoard godoc
// @Summary Kitchen order board grouped by booking
// @Tags kitchen
// @Produce json
// @Param status query string false "Composite status filter (All, Pending, Preparing, Ready, Delivered)"
// @Param q query string false "Search by booking reference or seat label"
// @Success 200 {object} response.StandardApiResponse
// @Router /kitchen/orders [get]
func (c *Controller) GetBoard(ctx *gin.Context) {
	filter := ctx.DefaultQuery("status", FilterAll)
	query := ctx.Query("q")

	board := c.service.Board(filter, query)
	response.Success(ctx, http.StatusOK, "Kitchen orders fetched successfully", board)
}

type transitionRequest struct {
	Status food.LineStatus `json:"status" binding:"required"`
}

func (c *Controller) TransitionItem(ctx *gin.Context) {
	itemID, err := uuid.Parse(ctx.Param("item_id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid item ID", err)
		return
	}

	var req transitionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	if err := c.service.TransitionItem(ctx.Request.Context(), itemID, req.Status); err != nil {
		switch {
		case errors.Is(err, food.ErrInvalidStatus):
			response.BadRequest(ctx, "Invalid line item status", err)
		case errors.Is(err, food.ErrLineItemNotFound):
			response.Error(ctx, http.StatusNotFound, "Line item not found", err)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to update line item", err)
		}
		return
	}
	response.Success(ctx, http.StatusOK, "Line item updated successfully", nil)
}

// TransitionGroup moves every line item of a booking at once, e.g.
// marking a whole tray Delivered at handover.
func (c *Controller) TransitionGroup(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("booking_id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid booking ID", err)
		return
	}

	var req transitionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	if err := c.service.TransitionGroup(ctx.Request.Context(), bookingID, req.Status); err != nil {
		switch {
		case errors.Is(err, food.ErrInvalidStatus):
			response.BadRequest(ctx, "Invalid line item status", err)
		case errors.Is(err, food.ErrLineItemNotFound):
			response.Error(ctx, http.StatusNotFound, "No line items found for booking", err)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to update order", err)
		}
		return
	}
	response.Success(ctx, http.StatusOK, "Order updated successfully", nil)
}
