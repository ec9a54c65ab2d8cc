package seats

import (
	"errors"
	"net/http"

	"showtime/internal/shared/utils/response"
	"showtime/internal/shows"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetGrid godoc
// @Summary Seat grid for a show with booked and selected overlays
// @Tags seats
// @Produce json
// @Param show_id path string true "Show ID"
// @Success 200 {object} response.StandardApiResponse
// @Router /shows/{show_id}/seats [get]
func (c *Controller) GetGrid(ctx *gin.Context) {
	showID, err := uuid.Parse(ctx.Param("show_id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid show ID", err)
		return
	}

	// The grid is public; the selection overlay only applies when a
	// user is authenticated.
	userID := uuid.Nil
	if raw := ctx.GetString("user_id"); raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			userID = parsed
		}
	}

	grid, err := c.service.GetGrid(ctx.Request.Context(), showID, userID)
	if err != nil {
		if errors.Is(err, shows.ErrShowNotFound) {
			response.Error(ctx, http.StatusNotFound, "Show not found", err)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to load seat grid", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Seat grid fetched successfully", grid)
}

type toggleSeatRequest struct {
	SeatID string `json:"seat_id" binding:"required,uuid"`
}

// ToggleSeat godoc
// @Summary Select or deselect a seat
// @Tags seats
// @Accept json
// @Produce json
// @Param show_id path string true "Show ID"
// @Success 200 {object} response.StandardApiResponse
// @Router /shows/{show_id}/seats/toggle [post]
func (c *Controller) ToggleSeat(ctx *gin.Context) {
	showID, err := uuid.Parse(ctx.Param("show_id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid show ID", err)
		return
	}

	var req toggleSeatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}
	seatID, err := uuid.Parse(req.SeatID)
	if err != nil {
		response.BadRequest(ctx, "Invalid seat ID", err)
		return
	}

	userID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		response.Error(ctx, http.StatusUnauthorized, "Invalid user context", err)
		return
	}

	grid, err := c.service.ToggleSeat(ctx.Request.Context(), showID, userID, seatID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelectionLimit):
			// Grid comes back unchanged alongside the warning.
			response.Error(ctx, http.StatusUnprocessableEntity, "Seat selection limit reached", err)
		case errors.Is(err, ErrSeatNotFound):
			response.Error(ctx, http.StatusNotFound, "Seat not found", err)
		case errors.Is(err, shows.ErrShowNotFound):
			response.Error(ctx, http.StatusNotFound, "Show not found", err)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to toggle seat", err)
		}
		return
	}
	response.Success(ctx, http.StatusOK, "Seat toggled successfully", grid)
}

func (c *Controller) ClearSelection(ctx *gin.Context) {
	showID, err := uuid.Parse(ctx.Param("show_id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid show ID", err)
		return
	}

	userID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		response.Error(ctx, http.StatusUnauthorized, "Invalid user context", err)
		return
	}

	if err := c.service.ClearSelection(ctx.Request.Context(), showID, userID); err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to clear selection", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Selection cleared", nil)
}
