package repo

import (
	"vitrine/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfferedServiceRepository handles offered-service data access
type OfferedServiceRepository struct {
	db *gorm.DB
}

// NewOfferedServiceRepository creates a new offered-service repository
func NewOfferedServiceRepository(db *gorm.DB) *OfferedServiceRepository {
	return &OfferedServiceRepository{db: db}
}

// GetByID gets an offered service scoped to a business
func (r *OfferedServiceRepository) GetByID(businessID, id uuid.UUID) (*models.OfferedService, error) {
	var service models.OfferedService
	err := r.db.Where("id = ? AND business_id = ?", id, businessID).First(&service).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// ListByBusiness lists a business's offered services in display order
func (r *OfferedServiceRepository) ListByBusiness(businessID uuid.UUID) ([]models.OfferedService, error) {
	var services []models.OfferedService
	err := r.db.Where("business_id = ? AND is_active = true", businessID).
		Order("sort_order, name").
		Find(&services).Error
	return services, err
}

// Create creates an offered service
func (r *OfferedServiceRepository) Create(service *models.OfferedService) error {
	return r.db.Create(service).Error
}

// Update updates an offered service
func (r *OfferedServiceRepository) Update(service *models.OfferedService) error {
	return r.db.Save(service).Error
}

// Delete soft deletes an offered service scoped to a business
func (r *OfferedServiceRepository) Delete(businessID, id uuid.UUID) error {
	return r.db.Where("id = ? AND business_id = ?", id, businessID).
		Delete(&models.OfferedService{}).Error
}
