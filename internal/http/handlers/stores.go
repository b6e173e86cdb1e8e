package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"storehours/internal/services"
	"storehours/pkg/models"
)

type StoreHandler struct {
	registry *services.StoreRegistry
}

func NewStoreHandler(registry *services.StoreRegistry) *StoreHandler {
	return &StoreHandler{registry: registry}
}

// CreateStoreRequest represents the request to register a store
type CreateStoreRequest struct {
	Name                     string                `json:"name" validate:"required"`
	Timezone                 string                `json:"timezone"`
	WorkTime                 []models.WorkTimeRule `json:"worktime" validate:"dive"`
	MinDeliveryTimeInMinutes int                   `json:"min_delivery_time_in_minutes" validate:"min=0"`
	PossibleToOrderInMinutes int                   `json:"possible_to_order_in_minutes" validate:"min=0"`
}

func (r CreateStoreRequest) restrictions() models.RestrictionsOrder {
	return models.RestrictionsOrder{
		Restrictions: models.Restrictions{
			Timezone: r.Timezone,
			WorkTime: r.WorkTime,
		},
		MinDeliveryTimeInMinutes: r.MinDeliveryTimeInMinutes,
		PossibleToOrderInMinutes: r.PossibleToOrderInMinutes,
	}
}

// Create registers a store with its availability policy
func (h *StoreHandler) Create(c echo.Context) error {
	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	store := h.registry.Create(req.Name, req.restrictions())

	log.Info().
		Str("store_id", store.ID.String()).
		Str("name", store.Name).
		Int("rules", len(store.WorkTime)).
		Msg("Store registered")

	return c.JSON(http.StatusCreated, store)
}

// List returns all registered stores
func (h *StoreHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.registry.List())
}

// GetByID returns one store
func (h *StoreHandler) GetByID(c echo.Context) error {
	id, err := storeID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid store id"})
	}
	store, err := h.registry.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "store not found"})
	}
	return c.JSON(http.StatusOK, store)
}

// UpdateRestrictionsRequest represents the request to replace a store's policy
type UpdateRestrictionsRequest struct {
	Timezone                 string                `json:"timezone"`
	WorkTime                 []models.WorkTimeRule `json:"worktime" validate:"dive"`
	MinDeliveryTimeInMinutes int                   `json:"min_delivery_time_in_minutes" validate:"min=0"`
	PossibleToOrderInMinutes int                   `json:"possible_to_order_in_minutes" validate:"min=0"`
}

// UpdateRestrictions replaces a store's availability policy
func (h *StoreHandler) UpdateRestrictions(c echo.Context) error {
	id, err := storeID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid store id"})
	}

	var req UpdateRestrictionsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	store, err := h.registry.UpdateRestrictions(id, models.RestrictionsOrder{
		Restrictions: models.Restrictions{
			Timezone: req.Timezone,
			WorkTime: req.WorkTime,
		},
		MinDeliveryTimeInMinutes: req.MinDeliveryTimeInMinutes,
		PossibleToOrderInMinutes: req.PossibleToOrderInMinutes,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "store not found"})
	}

	log.Info().Str("store_id", store.ID.String()).Msg("Store restrictions updated")

	return c.JSON(http.StatusOK, store)
}

// Delete removes a store
func (h *StoreHandler) Delete(c echo.Context) error {
	id, err := storeID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid store id"})
	}
	if err := h.registry.Delete(id); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "store not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

func storeID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
