package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"vitrine/internal/events"
	"vitrine/internal/repo"
	"vitrine/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// BusinessHandler handles business profile and directory endpoints
type BusinessHandler struct {
	businessRepo *repo.BusinessRepository
	publisher    *events.Publisher
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(businessRepo *repo.BusinessRepository, publisher *events.Publisher) *BusinessHandler {
	return &BusinessHandler{businessRepo: businessRepo, publisher: publisher}
}

// BusinessProfileRequest represents profile create/update request data
type BusinessProfileRequest struct {
	Name         string   `json:"name" validate:"required"`
	Tag          *string  `json:"tag"`
	CategoryID   *string  `json:"category_id"`
	About        string   `json:"about"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Website      string   `json:"website"`
	Street       string   `json:"street"`
	Number       string   `json:"number"`
	Complement   string   `json:"complement"`
	Neighborhood string   `json:"neighborhood"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zip_code"`
	Country      string   `json:"country"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	IsPublic     bool     `json:"is_public"`
}

// List godoc
// @Summary List directory businesses
// @Description Public directory listing with category/city/search filters
// @Tags directory
// @Accept json
// @Produce json
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param category_id query string false "Category filter"
// @Param city query string false "City filter"
// @Param search query string false "Name/description search"
// @Success 200 {object} models.BusinessListResponse
// @Failure 500 {object} map[string]string
// @Router /directory [get]
func (h *BusinessHandler) List(c echo.Context) error {
	page, perPage := pagination(c)

	filters := &repo.BusinessFilters{}
	if v := c.QueryParam("category_id"); v != "" {
		filters.CategoryID = &v
	}
	if v := c.QueryParam("city"); v != "" {
		filters.City = &v
	}
	if v := c.QueryParam("state"); v != "" {
		filters.State = &v
	}
	if v := c.QueryParam("search"); v != "" {
		filters.Search = &v
	}

	result, err := h.businessRepo.List(page, perPage, filters)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list businesses")
	}

	return c.JSON(http.StatusOK, result)
}

// GetProfile returns the authenticated owner's business profile
func (h *BusinessHandler) GetProfile(c echo.Context) error {
	business := businessFromContext(c)
	if business == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No business attached to this account")
	}
	return c.JSON(http.StatusOK, business)
}

// UpdateProfile godoc
// @Summary Update business profile
// @Description Update the authenticated owner's business profile
// @Tags business
// @Accept json
// @Produce json
// @Param request body BusinessProfileRequest true "Profile"
// @Success 200 {object} models.Business
// @Failure 400 {object} map[string]string
// @Router /business/profile [put]
// @Security BearerAuth
func (h *BusinessHandler) UpdateProfile(c echo.Context) error {
	business := businessFromContext(c)
	if business == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No business attached to this account")
	}

	var req BusinessProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	applyProfile(business, &req)

	if err := h.businessRepo.Update(business); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update business")
	}

	h.publisher.Publish(c.Request().Context(), events.EntityBusiness, events.ActionUpdated, business.ID.String(), nil)

	return c.JSON(http.StatusOK, business)
}

// AdminList lists every business (system admin only)
func (h *BusinessHandler) AdminList(c echo.Context) error {
	page, perPage := pagination(c)

	result, err := h.businessRepo.ListAdmin(page, perPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list businesses")
	}

	return c.JSON(http.StatusOK, result)
}

// AdminCreate creates a business listing (system admin only)
func (h *BusinessHandler) AdminCreate(c echo.Context) error {
	var req BusinessProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	business := &models.Business{}
	applyProfile(business, &req)

	if err := h.businessRepo.Create(business); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create business")
	}

	h.publisher.Publish(c.Request().Context(), events.EntityBusiness, events.ActionCreated, business.ID.String(), nil)

	return c.JSON(http.StatusCreated, business)
}

// AdminGetByID gets a business by ID (system admin only)
func (h *BusinessHandler) AdminGetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid business ID")
	}

	business, err := h.businessRepo.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Business not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get business")
	}

	return c.JSON(http.StatusOK, business)
}

// AdminDelete soft deletes a business (system admin only)
func (h *BusinessHandler) AdminDelete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid business ID")
	}

	if err := h.businessRepo.Delete(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete business")
	}

	h.publisher.Publish(c.Request().Context(), events.EntityBusiness, events.ActionDeleted, id.String(), nil)

	return c.NoContent(http.StatusNoContent)
}

func applyProfile(business *models.Business, req *BusinessProfileRequest) {
	business.Name = req.Name
	business.About = req.About
	business.Phone = req.Phone
	business.Email = req.Email
	business.Website = req.Website
	business.Street = req.Street
	business.Number = req.Number
	business.Complement = req.Complement
	business.Neighborhood = req.Neighborhood
	business.City = req.City
	business.State = req.State
	business.ZipCode = req.ZipCode
	business.Latitude = req.Latitude
	business.Longitude = req.Longitude
	business.IsPublic = req.IsPublic

	if req.Country != "" {
		business.Country = req.Country
	}
	if req.Tag != nil {
		tag := strings.ToLower(strings.TrimSpace(*req.Tag))
		if tag == "" {
			business.Tag = nil
		} else {
			business.Tag = &tag
		}
	}
	if req.CategoryID != nil {
		if categoryID, err := uuid.Parse(*req.CategoryID); err == nil {
			business.CategoryID = &categoryID
		}
	}
}

// businessFromContext returns the record loaded by the RequireBusiness
// middleware, or nil outside that route group.
func businessFromContext(c echo.Context) *models.Business {
	business, _ := c.Get("business").(*models.Business)
	return business
}

// pagination reads page/per_page query params with the directory defaults
func pagination(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}
