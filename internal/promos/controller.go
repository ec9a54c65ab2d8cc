package promos

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

type validatePromoRequest struct {
	Code   string  `json:"code" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// ValidatePromo godoc
// @Summary Validate a promo code against an order amount
// @Tags promos
// @Accept json
// @Produce json
// @Success 200 {object} response.StandardApiResponse
// @Router /promos/validate [post]
func (c *Controller) ValidatePromo(ctx *gin.Context) {
	var req validatePromoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	result, err := c.service.Validate(ctx.Request.Context(), req.Code, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ErrPromoNotFound):
			response.Error(ctx, http.StatusNotFound, "Promo code not found", err)
		case errors.Is(err, ErrPromoExpired):
			response.Error(ctx, http.StatusUnprocessableEntity, "Promo code is not currently valid", err)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to validate promo code", err)
		}
		return
	}
	response.Success(ctx, http.StatusOK, "Promo code applied", result)
}

func (c *Controller) CreatePromo(ctx *gin.Context) {
	var req CreatePromoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	promo, err := c.service.CreatePromo(ctx.Request.Context(), req)
	if err != nil {
		response.BadRequest(ctx, "Failed to create promo code", err)
		return
	}
	response.Success(ctx, http.StatusCreated, "Promo code created successfully", promo)
}

func (c *Controller) GetAllPromos(ctx *gin.Context) {
	promos, err := c.service.GetAllPromos(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch promo codes", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Promo codes fetched successfully", promos)
}

type setActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func (c *Controller) SetActive(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid promo ID", err)
		return
	}

	var req setActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	if err := c.service.SetActive(ctx.Request.Context(), id, *req.IsActive); err != nil {
		if errors.Is(err, ErrPromoNotFound) {
			response.Error(ctx, http.StatusNotFound, "Promo code not found", err)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update promo code", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Promo code updated successfully", nil)
}

func (c *Controller) DeletePromo(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid promo ID", err)
		return
	}

	if err := c.service.DeletePromo(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPromoNotFound) {
			response.Error(ctx, http.StatusNotFound, "Promo code not found", err)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to delete promo code", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Promo code deleted successfully", nil)
}
