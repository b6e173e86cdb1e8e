package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"storehours/internal/services"
	"storehours/internal/timezone"
	"storehours/internal/worktime"
	"storehours/pkg/models"
)

type AvailabilityHandler struct {
	availability *services.AvailabilityService
}

func NewAvailabilityHandler(availability *services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// atInstant reads the optional ?at= query as RFC3339, defaulting to the
// current server time. The offset inside the value is the caller's local
// zone and feeds the day-rollover arithmetic.
func atInstant(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("at")
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse(time.RFC3339, raw)
}

// IsOpen answers whether the store is open at an instant
func (h *AvailabilityHandler) IsOpen(c echo.Context) error {
	id, err := storeID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid store id"})
	}
	at, err := atInstant(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid at value, expected RFC3339"})
	}

	result, err := h.availability.IsOpen(id, at)
	if err != nil {
		return availabilityError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// NextDeliveryTime returns the earliest possible delivery moment for a
// closed store; an open store answers 409 so the front-end knows the
// checkout gate is already open
func (h *AvailabilityHandler) NextDeliveryTime(c echo.Context) error {
	return h.nextSlot(c, h.availability.NextDeliverySlot)
}

// NextPickupTime is NextDeliveryTime for the self-service flow
func (h *AvailabilityHandler) NextPickupTime(c echo.Context) error {
	return h.nextSlot(c, h.availability.NextPickupSlot)
}

func (h *AvailabilityHandler) nextSlot(c echo.Context, slot func(id uuid.UUID, at time.Time) (string, error)) error {
	id, err := storeID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid store id"})
	}
	at, err := atInstant(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid at value, expected RFC3339"})
	}

	next, err := slot(id, at)
	if err != nil {
		return availabilityError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"next_time": next})
}

// MaxOrderDate returns the last date the store accepts orders for
func (h *AvailabilityHandler) MaxOrderDate(c echo.Context) error {
	id, err := storeID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid store id"})
	}
	at, err := atInstant(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid at value, expected RFC3339"})
	}

	max, err := h.availability.MaxOrderDate(id, at)
	if err != nil {
		return availabilityError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"max_order_date": max})
}

// WorkTime returns the rule governing a calendar date
func (h *AvailabilityHandler) WorkTime(c echo.Context) error {
	id, err := storeID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid store id"})
	}

	date := time.Now()
	if raw := c.QueryParam("date"); raw != "" {
		date, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid date value, expected yyyy-MM-dd"})
		}
	}

	rule, err := h.availability.WorkTimeFor(id, date)
	if err != nil {
		return availabilityError(c, err)
	}
	return c.JSON(http.StatusOK, rule)
}

// availabilityError maps domain errors onto HTTP statuses
func availabilityError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrStoreNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "store not found"})
	case errors.Is(err, worktime.ErrNotWorkingNow):
		return c.JSON(http.StatusConflict, map[string]interface{}{
			"error":    "not working now",
			"work_now": true,
		})
	case errors.Is(err, models.ErrInvalidArgument):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, timezone.ErrUnknownTimeZone),
		errors.Is(err, worktime.ErrNoScheduleForDay):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("Availability query failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
