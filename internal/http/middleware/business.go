package middleware

import (
	"net/http"

	"vitrine/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// RequireBusiness ensures the authenticated user is attached to a business
// and that the business still exists and is active. The loaded record is
// stored in the context so handlers don't refetch it.
func RequireBusiness(db *gorm.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			businessID, ok := c.Get("business_id").(uuid.UUID)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "No business attached to this account")
			}

			var business models.Business
			err := db.Where("id = ? AND is_active = true", businessID).First(&business).Error
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					return echo.NewHTTPError(http.StatusForbidden, "Business not found or inactive")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve business")
			}

			c.Set("business", &business)
			return next(c)
		}
	}
}
