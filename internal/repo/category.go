package repo

import (
	"vitrine/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository handles category data access
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetByID gets a category by ID
func (r *CategoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// List lists active categories in display order
func (r *CategoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("is_active = true").Order("sort_order, name").Find(&categories).Error
	return categories, err
}

// Create creates a new category
func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update updates a category
func (r *CategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete soft deletes a category
func (r *CategoryRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Category{}).Error
}
