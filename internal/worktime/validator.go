// Package worktime answers the business-facing availability questions:
// is the store open now, which rule governs a date, when is the next
// possible delivery or pickup moment, and how far ahead an order may be
// placed. It works in minutes from midnight over the same rule model the
// interval compiler uses, so both views resolve days identically.
package worktime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storehours/internal/timezone"
	"storehours/pkg/models"
)

var (
	// ErrNoScheduleForDay reports a configuration gap: no rule matches
	// the resolved weekday and there is no wildcard.
	ErrNoScheduleForDay = errors.New("no schedule for day")

	// ErrNotWorkingNow is returned by call sites that ask for a fallback
	// order time while the store is already open. Callers treat it as an
	// expected condition, distinct from the failure cases.
	ErrNotWorkingNow = errors.New("not working now")
)

// IsWorkNow checks a single instant against the restriction's rules.
//
// The caller's instant is shifted into business-local minutes from
// midnight by one combined delta: the business zone's fixed offset plus
// the caller's own UTC offset flipped to the minutes-west convention.
// When the delta pushes the instant past midnight, the minutes fold back
// into [0, 1440) and the check runs against the next calendar day's rule.
// Open and close boundaries are exclusive: exactly the opening or closing
// minute counts as closed.
func IsWorkNow(r models.Restrictions, now time.Time) (models.ValidatorResult, error) {
	if len(r.WorkTime) == 0 {
		// No restriction configured means always open.
		return models.ValidatorResult{WorkNow: true}, nil
	}
	if now.IsZero() {
		return models.ValidatorResult{}, fmt.Errorf("%w: missing date", models.ErrInvalidArgument)
	}

	offset, err := timezone.ResolveWithDefault(r.Timezone, timezone.DefaultZone)
	if err != nil {
		return models.ValidatorResult{}, err
	}
	businessMinutes, err := timezone.OffsetMinutes(offset)
	if err != nil {
		return models.ValidatorResult{}, err
	}

	_, callerOffsetSeconds := now.Zone()
	localDelta := businessMinutes - callerOffsetSeconds/60

	currentMinutes := now.Hour()*60 + now.Minute() + localDelta
	isNewDay := false
	if currentMinutes > models.MinutesPerDay {
		currentMinutes -= models.MinutesPerDay
		isNewDay = true
	}

	day := now
	if isNewDay {
		day = day.AddDate(0, 0, 1)
	}
	rule, err := CurrentWorkTime(r, day)
	if err != nil {
		return models.ValidatorResult{}, err
	}

	startMinutes, stopMinutes, err := rule.OpenWindow()
	if err != nil {
		return models.ValidatorResult{}, err
	}

	return models.ValidatorResult{
		WorkNow:             startMinutes < currentMinutes && currentMinutes < stopMinutes,
		IsNewDay:            isNewDay,
		CurrentTime:         currentMinutes,
		CurrentDayStartTime: startMinutes,
		CurrentDayStopTime:  stopMinutes,
	}, nil
}

// CurrentWorkTime returns the rule governing the date's weekday: the
// first declared match, with the "all" wildcard matching any day.
func CurrentWorkTime(r models.Restrictions, date time.Time) (models.WorkTimeRule, error) {
	if date.IsZero() {
		return models.WorkTimeRule{}, fmt.Errorf("%w: missing date", models.ErrInvalidArgument)
	}
	day := strings.ToLower(date.Weekday().String())
	rule, ok := r.RuleFor(day)
	if !ok {
		return models.WorkTimeRule{}, fmt.Errorf("%w: %s", ErrNoScheduleForDay, day)
	}
	return rule, nil
}

// NextDeliveryTime computes the earliest deliverable moment as a
// "yyyy-MM-dd HH:mm" value against the caller's calendar date.
//
// Open store: current business-local minutes plus the delivery pad, on
// today's date. Closed store: the applicable day's opening minute plus
// the pad; the date rolls one day forward when the instant already folded
// into the next business day or the day's window has closed. Closed
// because it is still before opening stays on today.
func NextDeliveryTime(ro models.RestrictionsOrder, now time.Time) (string, error) {
	return nextOrderTime(ro, now)
}

// NextPickupTime is NextDeliveryTime over the self-service rewrite of the
// rules: each rule's window is replaced by its self-service override when
// present. The input restriction is never modified.
func NextPickupTime(ro models.RestrictionsOrder, now time.Time) (string, error) {
	rewritten := ro
	rewritten.Restrictions = SelfServiceRestrictions(ro.Restrictions)
	return nextOrderTime(rewritten, now)
}

func nextOrderTime(ro models.RestrictionsOrder, now time.Time) (string, error) {
	if now.IsZero() {
		return "", fmt.Errorf("%w: missing date", models.ErrInvalidArgument)
	}
	if ro.MinDeliveryTimeInMinutes < 0 {
		return "", fmt.Errorf("%w: negative delivery pad", models.ErrInvalidArgument)
	}
	if len(ro.WorkTime) == 0 {
		// Without rules there is no day window to derive a moment from.
		return "", fmt.Errorf("%w: restriction has no worktime rules", models.ErrInvalidArgument)
	}

	res, err := IsWorkNow(ro.Restrictions, now)
	if err != nil {
		return "", err
	}

	date := now
	var minutes int
	if res.WorkNow {
		minutes = res.CurrentTime + ro.MinDeliveryTimeInMinutes
	} else {
		minutes = res.CurrentDayStartTime + ro.MinDeliveryTimeInMinutes
		if res.IsNewDay || res.CurrentTime > res.CurrentDayStopTime {
			date = date.AddDate(0, 0, 1)
		}
	}
	if minutes >= models.MinutesPerDay {
		minutes -= models.MinutesPerDay
		date = date.AddDate(0, 0, 1)
	}

	return date.Format("2006-01-02") + " " + models.FormatClock(minutes), nil
}

// MaxOrderDate returns the last calendar date an order may target:
// now plus the restriction's ordering horizon, as yyyy-MM-dd.
func MaxOrderDate(ro models.RestrictionsOrder, now time.Time) (string, error) {
	if now.IsZero() {
		return "", fmt.Errorf("%w: missing date", models.ErrInvalidArgument)
	}
	if ro.PossibleToOrderInMinutes <= 0 {
		return "", fmt.Errorf("%w: missing ordering horizon", models.ErrInvalidArgument)
	}
	limit := now.Add(time.Duration(ro.PossibleToOrderInMinutes) * time.Minute)
	return limit.Format("2006-01-02"), nil
}

// SelfServiceRestrictions rewrites every rule carrying a self-service
// override, substituting its start, stop and break. The result is a new
// restriction object; the caller's rules stay untouched. Callers checking
// whether the pickup flow is open must run IsWorkNow over this rewrite,
// not over the delivery windows.
func SelfServiceRestrictions(r models.Restrictions) models.Restrictions {
	rules := make([]models.WorkTimeRule, len(r.WorkTime))
	for i, rule := range r.WorkTime {
		if ss := rule.SelfService; ss != nil {
			rule.Start = ss.Start
			rule.Stop = ss.Stop
			rule.Break = ss.Break
		}
		rules[i] = rule
	}
	return models.Restrictions{Timezone: r.Timezone, WorkTime: rules}
}
