package handlers

import (
	"net/http"
	"time"

	"vitrine/internal/repo"
	"vitrine/pkg/hours"
	"vitrine/pkg/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// WindowHandler serves the public window-display page data. These endpoints
// are polled by rendered views every few seconds, so they are read-only and
// compute everything from the stored record on each call.
type WindowHandler struct {
	businessRepo *repo.BusinessRepository
	serviceRepo  *repo.OfferedServiceRepository
	mediaRepo    *repo.MediaRepository
}

// NewWindowHandler creates a new window handler
func NewWindowHandler(businessRepo *repo.BusinessRepository, serviceRepo *repo.OfferedServiceRepository, mediaRepo *repo.MediaRepository) *WindowHandler {
	return &WindowHandler{businessRepo: businessRepo, serviceRepo: serviceRepo, mediaRepo: mediaRepo}
}

// DayRow is one rendered line of the hours table
type DayRow struct {
	Day   string `json:"day"`
	Label string `json:"label"`
}

// WindowResponse is the full window page payload
type WindowResponse struct {
	Business   *models.Business        `json:"business"`
	Status     hours.Status            `json:"status"`
	Rows       []DayRow                `json:"rows,omitempty"`
	HolidayRow *DayRow                 `json:"holiday_row,omitempty"`
	LegacyText string                  `json:"legacy_text,omitempty"`
	Services   []models.OfferedService `json:"services"`
	Gallery    []models.BusinessMedia  `json:"gallery"`
}

// Get godoc
// @Summary Window display page
// @Description Public business profile with live open/closed status and rendered hours rows
// @Tags window
// @Accept json
// @Produce json
// @Param tag path string true "Business tag"
// @Success 200 {object} WindowResponse
// @Failure 404 {object} map[string]string
// @Router /window/{tag} [get]
func (h *WindowHandler) Get(c echo.Context) error {
	business, err := h.businessRepo.GetByTag(c.Param("tag"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Business not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load business")
	}

	schedule := hours.Normalize(business.RawSchedule())
	status := hours.Resolve(schedule, business.IsManuallyOpen, time.Now())

	services, err := h.serviceRepo.ListByBusiness(business.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load services")
	}
	gallery, err := h.mediaRepo.ListByBusiness(business.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load gallery")
	}

	return c.JSON(http.StatusOK, WindowResponse{
		Business:   business,
		Status:     status,
		Rows:       displayRows(schedule),
		HolidayRow: holidayRow(schedule),
		LegacyText: schedule.LegacyText,
		Services:   services,
		Gallery:    gallery,
	})
}

// GetStatus godoc
// @Summary Window status badge
// @Description Just the open/closed badge, for lightweight polling
// @Tags window
// @Accept json
// @Produce json
// @Param tag path string true "Business tag"
// @Success 200 {object} hours.Status
// @Failure 404 {object} map[string]string
// @Router /window/{tag}/status [get]
func (h *WindowHandler) GetStatus(c echo.Context) error {
	business, err := h.businessRepo.GetByTag(c.Param("tag"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Business not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load business")
	}

	schedule := hours.Normalize(business.RawSchedule())
	return c.JSON(http.StatusOK, hours.Resolve(schedule, business.IsManuallyOpen, time.Now()))
}

// displayRows renders the weekly table in day order. Days the record never
// mentioned show up closed; a legacy-text schedule has no rows at all.
func displayRows(schedule hours.Schedule) []DayRow {
	if len(schedule.Weekly) == 0 {
		return nil
	}

	rows := make([]DayRow, 0, len(hours.Days))
	for _, day := range hours.Days {
		rows = append(rows, DayRow{Day: day, Label: dayLabel(schedule.Weekly[day])})
	}
	return rows
}

func holidayRow(schedule hours.Schedule) *DayRow {
	if schedule.Holiday == nil {
		return nil
	}
	return &DayRow{Day: "holiday", Label: dayLabel(*schedule.Holiday)}
}

func dayLabel(d hours.DaySchedule) string {
	if !d.IsOpen {
		return "Closed"
	}
	return hours.ToDisplay(d.Open) + " - " + hours.ToDisplay(d.Close)
}
