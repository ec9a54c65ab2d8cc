package bookings

import (
	"errors"
	"net/http"

	"showtime/internal/food"
	"showtime/internal/promos"
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

// Checkout godoc
// @Summary Create a booking from the current seat selection
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replay-safe checkout key"
// @Success 201 {object} response.StandardApiResponse
// @Router /bookings [post]
func (c *Controller) Checkout(ctx *gin.Context) {
	var req CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	userID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		response.Error(ctx, http.StatusUnauthorized, "Invalid user context", err)
		return
	}

	booking, err := c.service.Checkout(ctx.Request.Context(), userID, req, ctx.GetHeader("Idempotency-Key"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNoSeatsSelected):
			response.BadRequest(ctx, "Select at least one seat before checking out", err)
		case errors.Is(err, ErrEmptyUPIID):
			response.BadRequest(ctx, "UPI id is required for UPI payments", err)
		case errors.Is(err, ErrSeatsTaken):
			response.Error(ctx, http.StatusConflict, "One or more selected seats were just booked", err)
		case errors.Is(err, shows.ErrShowNotFound):
			response.Error(ctx, http.StatusNotFound, "Show not found", err)
		case errors.Is(err, food.ErrItemNotFound), errors.Is(err, food.ErrItemUnavailable):
			response.BadRequest(ctx, "Invalid food order", err)
		case errors.Is(err, promos.ErrPromoNotFound), errors.Is(err, promos.ErrPromoExpired):
			response.Error(ctx, http.StatusUnprocessableEntity, "Promo code cannot be applied", err)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to create booking", err)
		}
		return
	}
	response.Success(ctx, http.StatusCreated, "Booking created successfully", booking)
}

type AddFoodRequest struct {
	Items []food.OrderLine `json:"items" binding:"required,min=1,dive"`
}

// AddFood attaches a food order to an existing confirmed booking.
func (c *Controller) AddFood(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid booking ID", err)
		return
	}

	var req AddFoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	userID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		response.Error(ctx, http.StatusUnauthorized, "Invalid user context", err)
		return
	}

	booking, err := c.service.AddFood(ctx.Request.Context(), userID, bookingID, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(ctx, http.StatusNotFound, "Booking not found", err)
		case errors.Is(err, ErrNotBookingOwner):
			response.Error(ctx, http.StatusForbidden, "Booking belongs to another user", err)
		case errors.Is(err, ErrAlreadyCancelled):
			response.Error(ctx, http.StatusConflict, "Booking is not active", err)
		case errors.Is(err, food.ErrItemNotFound), errors.Is(err, food.ErrItemUnavailable):
			response.BadRequest(ctx, "Invalid food order", err)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to add food order", err)
		}
		return
	}
	response.Success(ctx, http.StatusCreated, "Food order added successfully", booking)
}

func (c *Controller) GetMyBookings(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		response.Error(ctx, http.StatusUnauthorized, "Invalid user context", err)
		return
	}

	bookings, err := c.service.GetUserBookings(ctx.Request.Context(), userID)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch bookings", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Bookings fetched successfully", bookings)
}

func (c *Controller) GetBooking(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid booking ID", err)
		return
	}

	userID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		response.Error(ctx, http.StatusUnauthorized, "Invalid user context", err)
		return
	}

	booking, err := c.service.GetBooking(ctx.Request.Context(), userID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(ctx, http.StatusNotFound, "Booking not found", err)
		case errors.Is(err, ErrNotBookingOwner):
			response.Error(ctx, http.StatusForbidden, "You do not have access to this booking", err)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to fetch booking", err)
		}
		return
	}
	response.Success(ctx, http.StatusOK, "Booking fetched successfully", booking)
}

// GetBookingByRef resolves a scanned QR booking reference. Staff only.
func (c *Controller) GetBookingByRef(ctx *gin.Context) {
	ref := ctx.Param("ref")
	if ref == "" {
		response.BadRequest(ctx, "Booking reference is required", nil)
		return
	}

	booking, err := c.service.GetBookingByRef(ctx.Request.Context(), ref)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(ctx, http.StatusNotFound, "Booking not found", err)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch booking", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Booking fetched successfully", booking)
}

func (c *Controller) CancelBooking(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid booking ID", err)
		return
	}

	userID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		response.Error(ctx, http.StatusUnauthorized, "Invalid user context", err)
		return
	}

	if err := c.service.CancelBooking(ctx.Request.Context(), userID, bookingID); err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(ctx, http.StatusNotFound, "Booking not found", err)
		case errors.Is(err, ErrNotBookingOwner):
			response.Error(ctx, http.StatusForbidden, "You do not have access to this booking", err)
		case errors.Is(err, ErrAlreadyCancelled):
			response.Error(ctx, http.StatusConflict, "Booking is already cancelled", err)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to cancel booking", err)
		}
		return
	}
	response.Success(ctx, http.StatusOK, "Booking cancelled successfully", nil)
}
