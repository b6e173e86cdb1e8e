package handlers

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"storehours/internal/timezone"
)

type TimezoneHandler struct{}

func NewTimezoneHandler() *TimezoneHandler {
	return &TimezoneHandler{}
}

// Resolve returns the fixed UTC offset for a zone name. The route uses a
// wildcard segment since zone identifiers contain slashes.
func (h *TimezoneHandler) Resolve(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("*"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid zone name"})
	}

	offset, err := timezone.Resolve(name)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"timezone": name,
		"offset":   offset,
	})
}
