package repo

import (
	"strings"

	"vitrine/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessFilters represents filters for directory queries
type BusinessFilters struct {
	CategoryID *string `json:"category_id,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	Search     *string `json:"search,omitempty"`
}

// BusinessRepository handles business data access
type BusinessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// GetByID gets a business by ID
func (r *BusinessRepository) GetByID(id uuid.UUID) (*models.Business, error) {
	var business models.Business
	err := r.db.Preload("Category").Where("id = ?", id).First(&business).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// GetByTag gets a public business by its window-page tag
func (r *BusinessRepository) GetByTag(tag string) (*models.Business, error) {
	var business models.Business
	err := r.db.Preload("Category").
		Where("tag = ? AND is_public = true AND is_active = true", strings.ToLower(tag)).
		First(&business).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// Create creates a new business
func (r *BusinessRepository) Create(business *models.Business) error {
	return r.db.Create(business).Error
}

// Update updates a business
func (r *BusinessRepository) Update(business *models.Business) error {
	return r.db.Save(business).Error
}

// Delete soft deletes a business
func (r *BusinessRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Business{}).Error
}

// UpdateSchedule writes only the schedule columns so a concurrent profile
// edit is never clobbered by the hours editor
func (r *BusinessRepository) UpdateSchedule(business *models.Business) error {
	return r.db.Model(&models.Business{}).
		Where("id = ?", business.ID).
		Select("weekday_schedule", "weekend_schedule", "holiday_hours", "schedule").
		Updates(map[string]interface{}{
			"weekday_schedule": business.WeekdaySchedule,
			"weekend_schedule": business.WeekendSchedule,
			"holiday_hours":    business.HolidayHours,
			"schedule":         business.Schedule,
		}).Error
}

// UpdateManualOverride writes the tri-state owner override column
func (r *BusinessRepository) UpdateManualOverride(id uuid.UUID, isManuallyOpen *bool) error {
	return r.db.Model(&models.Business{}).
		Where("id = ?", id).
		Update("is_manually_open", isManuallyOpen).Error
}

// List lists businesses for the public directory with pagination
func (r *BusinessRepository) List(page, perPage int, filters *BusinessFilters) (*models.PaginationResult[models.Business], error) {
	var businesses []models.Business
	var total int64

	query := r.db.Model(&models.Business{}).
		Where("is_public = true AND is_active = true")
	query = r.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * perPage
	err := query.Preload("Category").
		Order("name").
		Offset(offset).
		Limit(perPage).
		Find(&businesses).Error
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / perPage
	if int(total)%perPage > 0 {
		totalPages++
	}

	return &models.PaginationResult[models.Business]{
		Data:       businesses,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

// ListAdmin lists all businesses regardless of visibility
func (r *BusinessRepository) ListAdmin(page, perPage int) (*models.PaginationResult[models.Business], error) {
	var businesses []models.Business
	var total int64

	if err := r.db.Model(&models.Business{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * perPage
	err := r.db.Preload("Category").
		Order("created_at DESC").
		Offset(offset).
		Limit(perPage).
		Find(&businesses).Error
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / perPage
	if int(total)%perPage > 0 {
		totalPages++
	}

	return &models.PaginationResult[models.Business]{
		Data:       businesses,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

func (r *BusinessRepository) applyFilters(query *gorm.DB, filters *BusinessFilters) *gorm.DB {
	if filters == nil {
		return query
	}
	if filters.CategoryID != nil && *filters.CategoryID != "" {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.City != nil && *filters.City != "" {
		query = query.Where("LOWER(city) = LOWER(?)", *filters.City)
	}
	if filters.State != nil && *filters.State != "" {
		query = query.Where("LOWER(state) = LOWER(?)", *filters.State)
	}
	if filters.Search != nil && *filters.Search != "" {
		like := "%" + strings.ToLower(*filters.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(about) LIKE ?", like, like)
	}
	return query
}
