package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// WildcardAllDays matches every weekday. It is compared case-sensitively,
// unlike day names.
const WildcardAllDays = "all"

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// DayList holds the weekdays a rule applies to. It accepts either a single
// day name or a list of day names in JSON, so both forms round-trip.
type DayList []string

func (d *DayList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*d = DayList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("day_of_week must be a day name or a list of day names")
	}
	*d = DayList(many)
	return nil
}

func (d DayList) MarshalJSON() ([]byte, error) {
	if len(d) == 1 {
		return json.Marshal(d[0])
	}
	return json.Marshal([]string(d))
}

// Matches reports whether the list covers the given lowercase weekday name.
// The "all" wildcard is matched against the literal string only.
func (d DayList) Matches(day string) bool {
	for _, name := range d {
		if name == WildcardAllDays {
			return true
		}
		if strings.EqualFold(name, day) {
			return true
		}
	}
	return false
}

// SelfServiceHours is an alternate open window used for pickup orders
// instead of delivery.
type SelfServiceHours struct {
	Start string `json:"start" validate:"required"`
	Stop  string `json:"stop" validate:"required"`
	Break string `json:"break,omitempty"`
}

// WorkTimeRule declares the open window for one or more weekdays.
// Start and Stop are business-local "HH:mm" values, Break is "HH:mm-HH:mm".
type WorkTimeRule struct {
	DayOfWeek   DayList           `json:"day_of_week" validate:"required,min=1"`
	Start       string            `json:"start" validate:"required"`
	Stop        string            `json:"stop" validate:"required"`
	Break       string            `json:"break,omitempty"`
	SelfService *SelfServiceHours `json:"self_service,omitempty"`
}

// Restrictions is a store's availability policy: a timezone and an ordered
// rule list. Order matters - the first rule matching a weekday wins.
type Restrictions struct {
	Timezone string         `json:"timezone"`
	WorkTime []WorkTimeRule `json:"worktime" validate:"dive"`
}

// RestrictionsOrder extends Restrictions with ordering limits.
type RestrictionsOrder struct {
	Restrictions
	MinDeliveryTimeInMinutes int `json:"min_delivery_time_in_minutes" validate:"min=0"`
	PossibleToOrderInMinutes int `json:"possible_to_order_in_minutes" validate:"min=0"`
}

// ValidatorResult is the outcome of an "open now" check. The minute fields
// are optional diagnostics but part of the contract: callers use them to
// compute the next possible order time. They are elided from JSON when
// zero, so the permissive no-restriction answer carries only workNow.
// JSON names keep the historical spelling.
type ValidatorResult struct {
	WorkNow             bool `json:"workNow"`
	IsNewDay            bool `json:"isNewDay,omitempty"`
	CurrentTime         int  `json:"currentTime,omitempty"`
	CurrentDayStartTime int  `json:"curentDayStartTime,omitempty"`
	CurrentDayStopTime  int  `json:"curentDayStopTime,omitempty"`
}

// Store is a registered business with its availability policy.
type Store struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name" validate:"required"`
	RestrictionsOrder
}

// RuleFor scans rules in declaration order and returns the first one
// matching the given lowercase weekday name. This is the single day
// resolver: every component resolving a rule for a calendar day goes
// through it, so interval generation and the minute-of-day checks cannot
// disagree on which rule applies.
func RuleFor(rules []WorkTimeRule, day string) (WorkTimeRule, bool) {
	for _, rule := range rules {
		if rule.DayOfWeek.Matches(day) {
			return rule, true
		}
	}
	return WorkTimeRule{}, false
}

// RuleFor returns the first declared rule matching the weekday name.
func (r Restrictions) RuleFor(day string) (WorkTimeRule, bool) {
	return RuleFor(r.WorkTime, day)
}
