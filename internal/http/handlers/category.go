package handlers

import (
	"net/http"

	"vitrine/internal/repo"
	"vitrine/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CategoryHandler handles directory category endpoints
type CategoryHandler struct {
	categoryRepo *repo.CategoryRepository
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo *repo.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

// List lists active categories for directory filters
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryRepo.List()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list categories")
	}
	return c.JSON(http.StatusOK, categories)
}

// Create creates a category (system admin only)
func (h *CategoryHandler) Create(c echo.Context) error {
	var category models.Category
	if err := c.Bind(&category); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&category); err != nil {
		return err
	}

	if err := h.categoryRepo.Create(&category); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create category")
	}

	return c.JSON(http.StatusCreated, category)
}

// Update updates a category (system admin only)
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category ID")
	}

	category, err := h.categoryRepo.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get category")
	}

	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		IsActive    *bool  `json:"is_active"`
		SortOrder   *int   `json:"sort_order"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category.Name = req.Name
	category.Description = req.Description
	category.Icon = req.Icon
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	if err := h.categoryRepo.Update(category); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update category")
	}

	return c.JSON(http.StatusOK, category)
}

// Delete soft deletes a category (system admin only)
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category ID")
	}

	if err := h.categoryRepo.Delete(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete category")
	}

	return c.NoContent(http.StatusNoContent)
}
