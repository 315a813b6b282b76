package handlers

import (
	"net/http"

	"vitrine/internal/auth"
	"vitrine/internal/repo"
	"vitrine/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserHandler handles admin user management
type UserHandler struct {
	userRepo    *repo.UserRepository
	authService *auth.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(userRepo *repo.UserRepository, authService *auth.Service) *UserHandler {
	return &UserHandler{userRepo: userRepo, authService: authService}
}

// CreateOwner creates a business-owner account (system admin only)
func (h *UserHandler) CreateOwner(c echo.Context) error {
	var req struct {
		Name       string `json:"name" validate:"required"`
		Email      string `json:"email" validate:"required,email"`
		Password   string `json:"password" validate:"required,min=8"`
		Phone      string `json:"phone"`
		BusinessID string `json:"business_id" validate:"required,uuid"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid business ID")
	}

	hashedPassword, err := h.authService.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		BusinessID: &businessID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   hashedPassword,
		Role:       "owner",
		IsActive:   true,
	}

	if err := h.userRepo.Create(user); err != nil {
		return echo.NewHTTPError(http.StatusConflict, "Failed to create user, email may already be in use")
	}

	return c.JSON(http.StatusCreated, user)
}

// ListOwners lists the users attached to a business (system admin only)
func (h *UserHandler) ListOwners(c echo.Context) error {
	businessID, err := uuid.Parse(c.Param("business_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid business ID")
	}

	users, err := h.userRepo.ListByBusiness(businessID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list users")
	}

	return c.JSON(http.StatusOK, users)
}
