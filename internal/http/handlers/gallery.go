package handlers

import (
	"net/http"

	"vitrine/internal/repo"
	"vitrine/internal/services"
	"vitrine/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GalleryHandler handles business gallery endpoints
type GalleryHandler struct {
	mediaRepo      *repo.MediaRepository
	storageService *services.StorageService
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(mediaRepo *repo.MediaRepository, storageService *services.StorageService) *GalleryHandler {
	return &GalleryHandler{mediaRepo: mediaRepo, storageService: storageService}
}

// List lists the authenticated business's gallery
func (h *GalleryHandler) List(c echo.Context) error {
	business := businessFromContext(c)
	if business == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No business attached to this account")
	}

	media, err := h.mediaRepo.ListByBusiness(business.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list gallery")
	}
	return c.JSON(http.StatusOK, media)
}

// Upload godoc
// @Summary Upload gallery image
// @Description Multipart image upload, stored on S3
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Param alt formData string false "Alt text"
// @Success 201 {object} models.BusinessMedia
// @Failure 400 {object} map[string]string
// @Router /business/gallery [post]
// @Security BearerAuth
func (h *GalleryHandler) Upload(c echo.Context) error {
	business := businessFromContext(c)
	if business == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No business attached to this account")
	}
	if h.storageService == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "File storage is not configured")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing image file")
	}

	url, key, err := h.storageService.UploadGalleryImage(file, business.ID.String())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	media := &models.BusinessMedia{
		BusinessID: business.ID,
		Type:       "image",
		URL:        url,
		S3Key:      key,
		Alt:        c.FormValue("alt"),
	}
	if err := h.mediaRepo.Create(media); err != nil {
		// Best effort cleanup so the bucket doesn't accumulate orphans
		if delErr := h.storageService.DeleteFile(key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("failed to clean up orphaned upload")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save gallery image")
	}

	return c.JSON(http.StatusCreated, media)
}

// Delete removes a gallery image
func (h *GalleryHandler) Delete(c echo.Context) error {
	business := businessFromContext(c)
	if business == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No business attached to this account")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid media ID")
	}

	media, err := h.mediaRepo.GetByID(business.ID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Media not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get media")
	}

	if err := h.mediaRepo.Delete(business.ID, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete media")
	}

	if h.storageService != nil && media.S3Key != "" {
		if err := h.storageService.DeleteFile(media.S3Key); err != nil {
			log.Warn().Err(err).Str("key", media.S3Key).Msg("failed to delete gallery file from S3")
		}
	}

	return c.NoContent(http.StatusNoContent)
}
