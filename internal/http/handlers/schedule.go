package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"storehours/internal/services"
	"storehours/internal/timezone"
	"storehours/pkg/models"
)

type ScheduleHandler struct {
	availability *services.AvailabilityService
}

func NewScheduleHandler(availability *services.AvailabilityService) *ScheduleHandler {
	return &ScheduleHandler{availability: availability}
}

// CompileIntervalsRequest represents the request to compile a rule list
// into concrete open intervals over a date range
type CompileIntervalsRequest struct {
	WorkTime  []models.WorkTimeRule `json:"worktime" validate:"required,min=1,dive"`
	StartDate string                `json:"start_date" validate:"required"`
	EndDate   string                `json:"end_date" validate:"required"`
	Timezone  string                `json:"timezone"`
	Compact   bool                  `json:"compact"`
}

// CompileIntervals compiles weekly rules into epoch-second open intervals.
// With compact=true the response carries [start, stop] pairs instead of
// objects; both forms hold the same boundaries in the same order.
func (h *ScheduleHandler) CompileIntervals(c echo.Context) error {
	var req CompileIntervalsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid start_date, expected yyyy-MM-dd"})
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid end_date, expected yyyy-MM-dd"})
	}

	intervals, err := h.availability.CompileIntervals(req.WorkTime, startDate, endDate, req.Timezone)
	if err != nil {
		switch {
		case errors.Is(err, timezone.ErrUnknownTimeZone):
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		case errors.Is(err, models.ErrInvalidArgument):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}
	}

	if req.Compact {
		return c.JSON(http.StatusOK, map[string]interface{}{"intervals": intervals.Pairs()})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"intervals": intervals})
}
