package repo

import (
	"vitrine/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MediaRepository handles business gallery data access
type MediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// GetByID gets a media row scoped to a business
func (r *MediaRepository) GetByID(businessID, id uuid.UUID) (*models.BusinessMedia, error) {
	var media models.BusinessMedia
	err := r.db.Where("id = ? AND business_id = ?", id, businessID).First(&media).Error
	if err != nil {
		return nil, err
	}
	return &media, nil
}

// ListByBusiness lists a business's gallery in display order
func (r *MediaRepository) ListByBusiness(businessID uuid.UUID) ([]models.BusinessMedia, error) {
	var media []models.BusinessMedia
	err := r.db.Where("business_id = ?", businessID).Order("sort_order, created_at").Find(&media).Error
	return media, err
}

// Create creates a media row
func (r *MediaRepository) Create(media *models.BusinessMedia) error {
	return r.db.Create(media).Error
}

// Delete removes a media row scoped to a business
func (r *MediaRepository) Delete(businessID, id uuid.UUID) error {
	return r.db.Where("id = ? AND business_id = ?", id, businessID).
		Delete(&models.BusinessMedia{}).Error
}
