package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"storehours/internal/worktime"
	"storehours/pkg/models"
)

func testRestrictions(zone string) models.RestrictionsOrder {
	return models.RestrictionsOrder{
		Restrictions: models.Restrictions{
			Timezone: zone,
			WorkTime: []models.WorkTimeRule{{
				DayOfWeek: models.DayList{models.WildcardAllDays},
				Start:     "10:00",
				Stop:      "20:00",
			}},
		},
		MinDeliveryTimeInMinutes: 60,
		PossibleToOrderInMinutes: 1440,
	}
}

func TestStoreRegistryLifecycle(t *testing.T) {
	registry := NewStoreRegistry()

	store := registry.Create("Corner Pharmacy", testRestrictions("Europe/Moscow"))
	if store.ID == uuid.Nil {
		t.Fatal("Create assigned no ID")
	}

	loaded, err := registry.GetByID(store.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if loaded.Name != "Corner Pharmacy" || loaded.Timezone != "Europe/Moscow" {
		t.Errorf("loaded store = %+v", loaded)
	}

	registry.Create("Airport Kiosk", testRestrictions("UTC"))
	stores := registry.List()
	if len(stores) != 2 {
		t.Fatalf("List returned %d stores, expected 2", len(stores))
	}
	if stores[0].Name != "Airport Kiosk" {
		t.Errorf("List not sorted by name: %q first", stores[0].Name)
	}

	updated := testRestrictions("Asia/Tokyo")
	if _, err := registry.UpdateRestrictions(store.ID, updated); err != nil {
		t.Fatalf("UpdateRestrictions: %v", err)
	}
	loaded, _ = registry.GetByID(store.ID)
	if loaded.Timezone != "Asia/Tokyo" {
		t.Errorf("timezone after update = %q", loaded.Timezone)
	}

	if err := registry.Delete(store.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := registry.GetByID(store.ID); !errors.Is(err, ErrStoreNotFound) {
		t.Errorf("GetByID after delete: %v, expected ErrStoreNotFound", err)
	}
	if err := registry.Delete(store.ID); !errors.Is(err, ErrStoreNotFound) {
		t.Errorf("second Delete: %v, expected ErrStoreNotFound", err)
	}
}

func TestAvailabilityServiceIsOpen(t *testing.T) {
	registry := NewStoreRegistry()
	svc := NewAvailabilityService(registry, "Etc/GMT+0")
	store := registry.Create("Corner Pharmacy", testRestrictions("Asia/Yekaterinburg"))

	// 06:00 UTC is 11:00 at the business.
	at := time.Date(2026, 8, 24, 6, 0, 0, 0, time.UTC)
	res, err := svc.IsOpen(store.ID, at)
	if err != nil {
		t.Fatalf("IsOpen: %v", err)
	}
	if !res.WorkNow {
		t.Error("expected open at business-local 11:00")
	}

	if _, err := svc.IsOpen(uuid.New(), at); !errors.Is(err, ErrStoreNotFound) {
		t.Errorf("unknown store error = %v, expected ErrStoreNotFound", err)
	}
}

func TestAvailabilityServiceDefaultTimezone(t *testing.T) {
	registry := NewStoreRegistry()
	svc := NewAvailabilityService(registry, "Asia/Yekaterinburg")
	// Store declares no zone: the configured default applies.
	store := registry.Create("Zoneless", testRestrictions(""))

	at := time.Date(2026, 8, 24, 6, 0, 0, 0, time.UTC)
	res, err := svc.IsOpen(store.ID, at)
	if err != nil {
		t.Fatalf("IsOpen: %v", err)
	}
	if !res.WorkNow || res.CurrentTime != 11*60 {
		t.Errorf("result = %+v, expected open at business-local 11:00", res)
	}
}

func TestNextDeliverySlot(t *testing.T) {
	registry := NewStoreRegistry()
	svc := NewAvailabilityService(registry, "Etc/GMT+0")
	store := registry.Create("Corner Pharmacy", testRestrictions("Asia/Yekaterinburg"))

	// Closed before hours: a concrete slot comes back.
	slot, err := svc.NextDeliverySlot(store.ID, time.Date(2026, 8, 24, 4, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NextDeliverySlot: %v", err)
	}
	if slot != "2026-08-24 11:00" {
		t.Errorf("slot = %q, expected 2026-08-24 11:00", slot)
	}

	// Already open: the fallback question is moot.
	_, err = svc.NextDeliverySlot(store.ID, time.Date(2026, 8, 24, 6, 0, 0, 0, time.UTC))
	if !errors.Is(err, worktime.ErrNotWorkingNow) {
		t.Errorf("open-store error = %v, expected ErrNotWorkingNow", err)
	}
}

func TestNextPickupSlotUsesOverride(t *testing.T) {
	registry := NewStoreRegistry()
	svc := NewAvailabilityService(registry, "Etc/GMT+0")

	restrictions := testRestrictions("Asia/Yekaterinburg")
	restrictions.WorkTime[0].SelfService = &models.SelfServiceHours{Start: "08:00", Stop: "18:00"}
	store := registry.Create("Corner Pharmacy", restrictions)

	at := time.Date(2026, 8, 24, 2, 0, 0, 0, time.UTC) // business-local 07:00
	pickup, err := svc.NextPickupSlot(store.ID, at)
	if err != nil {
		t.Fatalf("NextPickupSlot: %v", err)
	}
	if pickup != "2026-08-24 09:00" {
		t.Errorf("pickup slot = %q, expected 2026-08-24 09:00", pickup)
	}
}

func TestNextPickupSlotGatesOnPickupWindow(t *testing.T) {
	registry := NewStoreRegistry()
	svc := NewAvailabilityService(registry, "Etc/GMT+0")

	// Delivery 10:00-20:00, pickup 08:00-18:00: the two flows disagree
	// about being open for two hours on each side.
	restrictions := testRestrictions("Asia/Yekaterinburg")
	restrictions.WorkTime[0].SelfService = &models.SelfServiceHours{Start: "08:00", Stop: "18:00"}
	store := registry.Create("Corner Pharmacy", restrictions)

	// Business-local 19:00: delivery still open, pickup closed since
	// 18:00. The pickup gate answers for pickup: a slot on the next day.
	evening := time.Date(2026, 8, 24, 14, 0, 0, 0, time.UTC)
	pickup, err := svc.NextPickupSlot(store.ID, evening)
	if err != nil {
		t.Fatalf("NextPickupSlot: %v", err)
	}
	if pickup != "2026-08-25 09:00" {
		t.Errorf("pickup slot = %q, expected 2026-08-25 09:00", pickup)
	}
	if _, err := svc.NextDeliverySlot(store.ID, evening); !errors.Is(err, worktime.ErrNotWorkingNow) {
		t.Errorf("delivery gate at 19:00 = %v, expected ErrNotWorkingNow", err)
	}

	// Business-local 09:00: pickup already open, delivery not yet.
	morning := time.Date(2026, 8, 24, 4, 0, 0, 0, time.UTC)
	if _, err := svc.NextPickupSlot(store.ID, morning); !errors.Is(err, worktime.ErrNotWorkingNow) {
		t.Errorf("pickup gate at 09:00 = %v, expected ErrNotWorkingNow", err)
	}
	delivery, err := svc.NextDeliverySlot(store.ID, morning)
	if err != nil {
		t.Fatalf("NextDeliverySlot: %v", err)
	}
	if delivery != "2026-08-24 11:00" {
		t.Errorf("delivery slot = %q, expected 2026-08-24 11:00", delivery)
	}
}

func TestCompileIntervals(t *testing.T) {
	registry := NewStoreRegistry()
	svc := NewAvailabilityService(registry, "Etc/GMT+0")

	rules := []models.WorkTimeRule{{
		DayOfWeek: models.DayList{"monday"},
		Start:     "09:00",
		Stop:      "18:00",
		Break:     "12:00-12:10",
	}}
	monday := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	intervals, err := svc.CompileIntervals(rules, monday, monday, "")
	if err != nil {
		t.Fatalf("CompileIntervals: %v", err)
	}
	if len(intervals) != 2 {
		t.Errorf("want 2 intervals split at the break, got %d", len(intervals))
	}
}
