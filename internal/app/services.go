package app

import (
	"os"

	"storehours/internal/services"
	"storehours/internal/timezone"
)

// Services holds all application services
type Services struct {
	StoreRegistry *services.StoreRegistry
	Availability  *services.AvailabilityService
}

// NewServices creates a new services container
func NewServices() *Services {
	registry := services.NewStoreRegistry()

	// Default timezone for stores that declare none
	defaultTimezone := os.Getenv("DEFAULT_TIMEZONE")
	if defaultTimezone == "" {
		defaultTimezone = timezone.DefaultZone
	}
	availability := services.NewAvailabilityService(registry, defaultTimezone)

	return &Services{
		StoreRegistry: registry,
		Availability:  availability,
	}
}
