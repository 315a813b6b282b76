package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"vitrine/internal/events"
	"vitrine/internal/repo"
	"vitrine/pkg/hours"
	"vitrine/pkg/models"

	"github.com/labstack/echo/v4"
)

// ScheduleHandler handles the operating-hours editor endpoints
type ScheduleHandler struct {
	businessRepo *repo.BusinessRepository
	publisher    *events.Publisher
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(businessRepo *repo.BusinessRepository, publisher *events.Publisher) *ScheduleHandler {
	return &ScheduleHandler{businessRepo: businessRepo, publisher: publisher}
}

// ScheduleResponse is the editor's view of a business's hours
type ScheduleResponse struct {
	Schedule       hours.Schedule `json:"schedule"`
	Status         hours.Status   `json:"status"`
	IsManuallyOpen *bool          `json:"is_manually_open"`
}

// UpdateScheduleRequest carries the "individual" edit mode payload: every
// day's open, close and isOpen edited independently
type UpdateScheduleRequest struct {
	Weekly  map[string]hours.DaySchedule `json:"weekly" validate:"required"`
	Holiday *hours.DaySchedule           `json:"holiday"`
}

// ApplyGroupRequest carries the "same hours" edit mode payload: one
// open/close pair applied to a whole day-group
type ApplyGroupRequest struct {
	Group string `json:"group" validate:"required,oneof=weekday weekend"`
	Open  string `json:"open" validate:"required"`
	Close string `json:"close" validate:"required"`
}

// OverrideRequest carries the tri-state owner override; null clears it
type OverrideRequest struct {
	IsManuallyOpen *bool `json:"is_manually_open"`
}

// Get godoc
// @Summary Get operating hours
// @Description Normalized schedule, current status and override flag for the hours editor
// @Tags schedule
// @Accept json
// @Produce json
// @Success 200 {object} ScheduleResponse
// @Failure 403 {object} map[string]string
// @Router /business/schedule [get]
// @Security BearerAuth
func (h *ScheduleHandler) Get(c echo.Context) error {
	business := businessFromContext(c)
	if business == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No business attached to this account")
	}

	schedule := hours.Normalize(business.RawSchedule())

	return c.JSON(http.StatusOK, ScheduleResponse{
		Schedule:       schedule,
		Status:         hours.Resolve(schedule, business.IsManuallyOpen, time.Now()),
		IsManuallyOpen: business.IsManuallyOpen,
	})
}

// Update godoc
// @Summary Update operating hours
// @Description Per-day edit; validation failures come back field-scoped as {day}Open / {day}Close
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body UpdateScheduleRequest true "Weekly schedule"
// @Success 200 {object} ScheduleResponse
// @Failure 422 {object} map[string]interface{}
// @Router /business/schedule [put]
// @Security BearerAuth
func (h *ScheduleHandler) Update(c echo.Context) error {
	business := businessFromContext(c)
	if business == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No business attached to this account")
	}

	var req UpdateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	weekly, err := draftWeekly(req.Weekly)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if errs := hours.ValidateWeekly(weekly); len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"message": "Schedule validation failed",
			"errors":  errs,
		})
	}

	if err := h.persist(c, business, weekly, req.Holiday); err != nil {
		return err
	}

	schedule := hours.Normalize(business.RawSchedule())
	return c.JSON(http.StatusOK, ScheduleResponse{
		Schedule:       schedule,
		Status:         hours.Resolve(schedule, business.IsManuallyOpen, time.Now()),
		IsManuallyOpen: business.IsManuallyOpen,
	})
}

// ApplyGroup godoc
// @Summary Apply same hours to a day-group
// @Description Sets one open/close pair on every weekday or weekend day without touching isOpen flags
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body ApplyGroupRequest true "Group edit"
// @Success 200 {object} ScheduleResponse
// @Failure 422 {object} map[string]interface{}
// @Router /business/schedule/group [put]
// @Security BearerAuth
func (h *ScheduleHandler) ApplyGroup(c echo.Context) error {
	business := businessFromContext(c)
	if business == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No business attached to this account")
	}

	var req ApplyGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	errs := hours.FieldErrors{}
	if !hours.ValidateTime(req.Open) {
		errs["open"] = "invalid time, use HH:MM"
	}
	if !hours.ValidateTime(req.Close) {
		errs["close"] = "invalid time, use HH:MM"
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"message": "Schedule validation failed",
			"errors":  errs,
		})
	}

	group := hours.WeekdayGroup
	if req.Group == "weekend" {
		group = hours.WeekendGroup
	}

	current := hours.Normalize(business.RawSchedule())
	weekly := hours.ApplySameHours(current.Weekly, group, req.Open, req.Close)

	if err := h.persist(c, business, weekly, current.Holiday); err != nil {
		return err
	}

	schedule := hours.Normalize(business.RawSchedule())
	return c.JSON(http.StatusOK, ScheduleResponse{
		Schedule:       schedule,
		Status:         hours.Resolve(schedule, business.IsManuallyOpen, time.Now()),
		IsManuallyOpen: business.IsManuallyOpen,
	})
}

// UpdateOverride godoc
// @Summary Set the manual open/closed override
// @Description true forces open, false forces closed, null defers to the schedule
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body OverrideRequest true "Override"
// @Success 200 {object} ScheduleResponse
// @Router /business/schedule/override [put]
// @Security BearerAuth
func (h *ScheduleHandler) UpdateOverride(c echo.Context) error {
	business := businessFromContext(c)
	if business == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No business attached to this account")
	}

	var req OverrideRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := h.businessRepo.UpdateManualOverride(business.ID, req.IsManuallyOpen); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update override")
	}
	business.IsManuallyOpen = req.IsManuallyOpen

	h.publisher.Publish(c.Request().Context(), events.EntitySchedule, events.ActionUpdated, business.ID.String(), nil)

	schedule := hours.Normalize(business.RawSchedule())
	return c.JSON(http.StatusOK, ScheduleResponse{
		Schedule:       schedule,
		Status:         hours.Resolve(schedule, business.IsManuallyOpen, time.Now()),
		IsManuallyOpen: business.IsManuallyOpen,
	})
}

// persist writes the canonical structured encoding back to the record,
// replacing whichever legacy encoding it carried before.
func (h *ScheduleHandler) persist(c echo.Context, business *models.Business, weekly hours.WeeklySchedule, holiday *hours.DaySchedule) error {
	weekday := map[string]hours.DaySchedule{}
	weekend := map[string]hours.DaySchedule{}
	for _, day := range hours.WeekdayGroup {
		weekday[day] = weekly[day]
	}
	for _, day := range hours.WeekendGroup {
		weekend[day] = weekly[day]
	}

	weekdayJSON, err := json.Marshal(weekday)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to encode schedule")
	}
	weekendJSON, err := json.Marshal(weekend)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to encode schedule")
	}

	business.WeekdaySchedule = models.RawJSON(weekdayJSON)
	business.WeekendSchedule = models.RawJSON(weekendJSON)
	business.Schedule = nil

	if holiday != nil {
		holidayJSON, err := json.Marshal(holiday)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to encode schedule")
		}
		business.HolidayHours = models.RawJSON(holidayJSON)
	} else {
		business.HolidayHours = nil
	}

	if err := h.businessRepo.UpdateSchedule(business); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save schedule")
	}

	h.publisher.Publish(c.Request().Context(), events.EntitySchedule, events.ActionUpdated, business.ID.String(), nil)
	return nil
}

// draftWeekly canonicalizes an editor draft: day keys lower-cased, unknown
// days rejected, unmentioned days carried over as closed.
func draftWeekly(draft map[string]hours.DaySchedule) (hours.WeeklySchedule, error) {
	weekly := hours.WeeklySchedule{}
	for _, day := range hours.Days {
		weekly[day] = hours.DaySchedule{}
	}
	for name, d := range draft {
		day, ok := canonicalDay(name)
		if !ok {
			return nil, &unknownDayError{name: name}
		}
		weekly[day] = d
	}
	return weekly, nil
}

type unknownDayError struct {
	name string
}

func (e *unknownDayError) Error() string {
	return "unknown day name: " + e.name
}

func canonicalDay(name string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, day := range hours.Days {
		if lower == day {
			return day, true
		}
	}
	return "", false
}
