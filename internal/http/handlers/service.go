package handlers

import (
	"net/http"

	"vitrine/internal/repo"
	"vitrine/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ServiceHandler handles offered-service endpoints for the profile editor
type ServiceHandler struct {
	serviceRepo *repo.OfferedServiceRepository
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(serviceRepo *repo.OfferedServiceRepository) *ServiceHandler {
	return &ServiceHandler{serviceRepo: serviceRepo}
}

// OfferedServiceRequest represents offered-service create/update data
type OfferedServiceRequest struct {
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
	IsActive        *bool  `json:"is_active"`
	SortOrder       int    `json:"sort_order"`
}

// List lists the authenticated business's offered services
func (h *ServiceHandler) List(c echo.Context) error {
	business := businessFromContext(c)
	if business == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No business attached to this account")
	}

	services, err := h.serviceRepo.ListByBusiness(business.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list services")
	}
	return c.JSON(http.StatusOK, services)
}

// Create adds an offered service
func (h *ServiceHandler) Create(c echo.Context) error {
	business := businessFromContext(c)
	if business == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No business attached to this account")
	}

	var req OfferedServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	service := &models.OfferedService{
		BusinessID:      business.ID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
		SortOrder:       req.SortOrder,
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.serviceRepo.Create(service); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create service")
	}

	return c.JSON(http.StatusCreated, service)
}

// Update updates an offered service
func (h *ServiceHandler) Update(c echo.Context) error {
	business := businessFromContext(c)
	if business == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No business attached to this account")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid service ID")
	}

	service, err := h.serviceRepo.GetByID(business.ID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Service not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get service")
	}

	var req OfferedServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price
	service.DurationMinutes = req.DurationMinutes
	service.SortOrder = req.SortOrder
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.serviceRepo.Update(service); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update service")
	}

	return c.JSON(http.StatusOK, service)
}

// Delete removes an offered service
func (h *ServiceHandler) Delete(c echo.Context) error {
	business := businessFromContext(c)
	if business == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No business attached to this account")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid service ID")
	}

	if err := h.serviceRepo.Delete(business.ID, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete service")
	}

	return c.NoContent(http.StatusNoContent)
}
