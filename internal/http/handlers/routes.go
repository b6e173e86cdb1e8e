package handlers

import (
	"storehours/internal/app"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all API routes
func SetupRoutes(api *echo.Group, services *app.Services) {
	storeHandler := NewStoreHandler(services.StoreRegistry)
	stores := api.Group("/stores")
	stores.POST("", storeHandler.Create)
	stores.GET("", storeHandler.List)
	stores.GET("/:id", storeHandler.GetByID)
	stores.PUT("/:id/restrictions", storeHandler.UpdateRestrictions)
	stores.DELETE("/:id", storeHandler.Delete)

	availabilityHandler := NewAvailabilityHandler(services.Availability)
	stores.GET("/:id/open", availabilityHandler.IsOpen)
	stores.GET("/:id/delivery-time", availabilityHandler.NextDeliveryTime)
	stores.GET("/:id/pickup-time", availabilityHandler.NextPickupTime)
	stores.GET("/:id/max-order-date", availabilityHandler.MaxOrderDate)
	stores.GET("/:id/worktime", availabilityHandler.WorkTime)

	scheduleHandler := NewScheduleHandler(services.Availability)
	api.POST("/schedule/intervals", scheduleHandler.CompileIntervals)

	timezoneHandler := NewTimezoneHandler()
	api.GET("/timezones/*", timezoneHandler.Resolve)
}
