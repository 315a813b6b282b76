package models

// PaginationResult represents paginated results
type PaginationResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// Swagger-specific types (non-generic to avoid swag parsing issues)

// SwaggerBusiness represents a business for swagger docs (without GORM dependencies)
type SwaggerBusiness struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Tag            string `json:"tag,omitempty"`
	About          string `json:"about,omitempty"`
	Phone          string `json:"phone,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	IsManuallyOpen *bool  `json:"is_manually_open,omitempty"`
	IsPublic       bool   `json:"is_public"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// BusinessListResponse represents paginated business results for Swagger docs
type BusinessListResponse struct {
	Data       []SwaggerBusiness `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int               `json:"total_pages"`
}

// GetAllModels returns all models for GORM AutoMigrate
func GetAllModels() []interface{} {
	return []interface{}{
		// Core models
		&User{},
		&Category{},

		// Directory models
		&Business{},
		&OfferedService{},
		&BusinessMedia{},
	}
}
