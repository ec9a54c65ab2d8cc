package announcements

import (
	"errors"
	"net/http"

	"showtime/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetAnnouncements godoc
// @Summary List announcements visible in a city
// @Tags announcements
// @Produce json
// @Param city query string false "City name"
// @Success 200 {object} response.StandardApiResponse
// @Router /announcements [get]
func (c *Controller) GetAnnouncements(ctx *gin.Context) {
	announcements, err := c.service.GetVisibleAnnouncements(ctx.Query("city"))
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch announcements", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Announcements fetched successfully", announcements)
}

func (c *Controller) GetAllAnnouncements(ctx *gin.Context) {
	announcements, err := c.service.GetAllAnnouncements()
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch announcements", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Announcements fetched successfully", announcements)
}

func (c *Controller) CreateAnnouncement(ctx *gin.Context) {
	var req CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	adminID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		response.Error(ctx, http.StatusUnauthorized, "Invalid user context", err)
		return
	}

	announcement, err := c.service.CreateAnnouncement(adminID, req)
	if err != nil {
		response.BadRequest(ctx, "Failed to create announcement", err)
		return
	}
	response.Success(ctx, http.StatusCreated, "Announcement created successfully", announcement)
}

func (c *Controller) UpdateAnnouncement(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid announcement ID", err)
		return
	}

	var req UpdateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err)
		return
	}

	announcement, err := c.service.UpdateAnnouncement(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "Announcement not found", err)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update announcement", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Announcement updated successfully", announcement)
}

func (c *Controller) DeleteAnnouncement(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid announcement ID", err)
		return
	}

	if err := c.service.DeleteAnnouncement(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "Announcement not found", err)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to delete announcement", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Announcement deleted successfully", nil)
}
