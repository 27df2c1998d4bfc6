package media

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/homehub-app/homehub/internal/pkg/cloudinary"
	"github.com/homehub-app/homehub/internal/pkg/response"
)

// AvatarStore persists the uploaded avatar location on the member record.
type AvatarStore interface {
	SetAvatar(ctx context.Context, userID, url, publicID string) error
}

type Handler struct {
	uploads *cloudinary.Service
	avatars AvatarStore
}

func NewHandler(uploads *cloudinary.Service, avatars AvatarStore) *Handler {
	return &Handler{uploads: uploads, avatars: avatars}
}

// UploadAvatar godoc
// @Summary Upload the caller's avatar image
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Avatar image"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /media/avatar [post]
func (h *Handler) UploadAvatar(c *gin.Context) {
	if h.uploads == nil {
		response.InternalServerError(c, "Media uploads are not configured")
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	file, err := header.Open()
	if err != nil {
		response.BadRequest(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.uploads.UploadImage(c.Request.Context(), file, header.Filename)
	if err != nil {
		log.Error().Err(err).Msg("avatar upload failed")
		response.InternalServerError(c, "Failed to upload image")
		return
	}

	userID := c.GetString("userID")
	if err := h.avatars.SetAvatar(c.Request.Context(), userID, result.URL, result.PublicID); err != nil {
		// The asset is orphaned if we cannot record it, clean it up.
		h.uploads.Delete(c.Request.Context(), result.PublicID)
		response.DatabaseError(c, "Failed to save avatar")
		return
	}

	response.Success(c, gin.H{"url": result.URL})
}
