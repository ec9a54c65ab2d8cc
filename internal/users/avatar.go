package users

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"showtime/internal/shared/utils/response"
	"showtime/pkg/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AvatarService stores profile pictures and records their public URL.
type AvatarService struct {
	db    *gorm.DB
	store storage.Store
}

func NewAvatarService(db *gorm.DB, store storage.Store) *AvatarService {
	return &AvatarService{db: db, store: store}
}

var allowedAvatarExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Upload stores the file and updates the user's avatar URL.
func (s *AvatarService) Upload(ctx context.Context, userID string, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedAvatarExts[ext] {
		return "", fmt.Errorf("unsupported avatar format: %s", ext)
	}

	f, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	url, err := s.store.Put(ctx, userID+ext, f, header.Size)
	if err != nil {
		return "", err
	}

	err = s.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error
	if err != nil {
		return "", fmt.Errorf("failed to save avatar url: %w", err)
	}

	return url, nil
}

// AvatarController exposes the upload endpoint.
type AvatarController struct {
	service *AvatarService
}

func NewAvatarController(service *AvatarService) *AvatarController {
	return &AvatarController{service: service}
}

// UploadAvatar handles POST /users/avatar
func (c *AvatarController) UploadAvatar(ctx *gin.Context) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	header, err := ctx.FormFile("avatar")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "avatar file is required", nil, err.Error())
		return
	}

	url, err := c.service.Upload(ctx.Request.Context(), userID.(string), header)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to upload avatar", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Avatar uploaded successfully", gin.H{"avatar_url": url}, nil)
}
