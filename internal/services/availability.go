package services

import (
	"time"

	"github.com/google/uuid"

	"storehours/internal/schedule"
	"storehours/internal/worktime"
	"storehours/pkg/models"
)

// AvailabilityService answers availability questions for registered
// stores. It owns the configured default timezone and a memoized
// work-time validator: every operation is a pure function of the store's
// policy and the instant, so repeat queries for the same moment are
// served from the cache.
type AvailabilityService struct {
	registry        *StoreRegistry
	validator       *worktime.Cached
	defaultTimezone string
}

func NewAvailabilityService(registry *StoreRegistry, defaultTimezone string) *AvailabilityService {
	return &AvailabilityService{
		registry:        registry,
		validator:       worktime.NewCached(),
		defaultTimezone: defaultTimezone,
	}
}

// restrictionsFor loads a store's policy, filling in the configured
// default timezone when the store declares none. The default is threaded
// here explicitly so the domain packages never read ambient state.
func (s *AvailabilityService) restrictionsFor(storeID uuid.UUID) (models.RestrictionsOrder, error) {
	store, err := s.registry.GetByID(storeID)
	if err != nil {
		return models.RestrictionsOrder{}, err
	}
	ro := store.RestrictionsOrder
	if ro.Timezone == "" {
		ro.Timezone = s.defaultTimezone
	}
	return ro, nil
}

// IsOpen checks whether the store is open at the given instant.
func (s *AvailabilityService) IsOpen(storeID uuid.UUID, at time.Time) (models.ValidatorResult, error) {
	ro, err := s.restrictionsFor(storeID)
	if err != nil {
		return models.ValidatorResult{}, err
	}
	return s.validator.IsWorkNow(ro.Restrictions, at)
}

// NextDeliverySlot returns the earliest deliverable moment for a store
// that is currently closed. When the store is already open the question
// is moot and the call reports worktime.ErrNotWorkingNow, which callers
// treat as an expected gate-is-open signal.
func (s *AvailabilityService) NextDeliverySlot(storeID uuid.UUID, at time.Time) (string, error) {
	ro, err := s.restrictionsFor(storeID)
	if err != nil {
		return "", err
	}
	res, err := s.validator.IsWorkNow(ro.Restrictions, at)
	if err != nil {
		return "", err
	}
	if res.WorkNow {
		return "", worktime.ErrNotWorkingNow
	}
	return s.validator.NextDeliveryTime(ro, at)
}

// NextPickupSlot is NextDeliverySlot for the self-service flow. The open
// check runs against the self-service rewrite of the rules: delivery and
// pickup windows can diverge, and the gate must answer for the flow being
// asked about.
func (s *AvailabilityService) NextPickupSlot(storeID uuid.UUID, at time.Time) (string, error) {
	ro, err := s.restrictionsFor(storeID)
	if err != nil {
		return "", err
	}
	res, err := s.validator.IsWorkNow(worktime.SelfServiceRestrictions(ro.Restrictions), at)
	if err != nil {
		return "", err
	}
	if res.WorkNow {
		return "", worktime.ErrNotWorkingNow
	}
	return s.validator.NextPickupTime(ro, at)
}

// MaxOrderDate returns the last date the store accepts orders for.
func (s *AvailabilityService) MaxOrderDate(storeID uuid.UUID, at time.Time) (string, error) {
	ro, err := s.restrictionsFor(storeID)
	if err != nil {
		return "", err
	}
	return s.validator.MaxOrderDate(ro, at)
}

// WorkTimeFor returns the rule governing the given date for the store.
func (s *AvailabilityService) WorkTimeFor(storeID uuid.UUID, date time.Time) (models.WorkTimeRule, error) {
	ro, err := s.restrictionsFor(storeID)
	if err != nil {
		return models.WorkTimeRule{}, err
	}
	return s.validator.CurrentWorkTime(ro.Restrictions, date)
}

// CompileIntervals compiles a rule list into concrete open intervals over
// a date range, for rendering calendars of open slots.
func (s *AvailabilityService) CompileIntervals(rules []models.WorkTimeRule, startDate, endDate time.Time, zone string) (schedule.Schedule, error) {
	if zone == "" {
		zone = s.defaultTimezone
	}
	generator, err := schedule.NewGenerator(rules)
	if err != nil {
		return nil, err
	}
	return generator.Generate(startDate, endDate, zone)
}
