package schedule

import (
	"errors"
	"fmt"
	"time"

	"storehours/internal/timezone"
)

// ErrNotImplemented marks a contract operation that deliberately has no
// implementation yet. Callers get the sentinel, never a silently computed
// value.
var ErrNotImplemented = errors.New("not implemented")

// DayLimitMode selects which end of the schedule FindDayLimit reports.
type DayLimitMode string

const (
	DayLimitEarliest DayLimitMode = "earliest"
	DayLimitLatest   DayLimitMode = "latest"
)

// Validator answers repeated containment queries against a generated
// schedule without recompiling it.
type Validator struct {
	intervals Schedule
}

func NewValidator(s Schedule) *Validator {
	return &Validator{intervals: s}
}

// NewValidatorFromPairs accepts the compact schedule form.
func NewValidatorFromPairs(pairs [][2]int64) *Validator {
	return &Validator{intervals: FromPairs(pairs)}
}

// ContainsInstant reports whether the instant falls inside any interval.
// Both boundaries are inclusive: an instant exactly on an open or close
// boundary counts as contained.
func (v *Validator) ContainsInstant(t time.Time) bool {
	sec := t.Unix()
	for _, iv := range v.intervals {
		if iv.Start <= sec && sec <= iv.Stop {
			return true
		}
	}
	return false
}

// ContainsDuration reports whether the whole span [start, start+d] fits
// inside a single interval. A span covered only by the union of two
// intervals (across a break or a day boundary) is rejected.
func (v *Validator) ContainsDuration(start time.Time, d time.Duration) bool {
	from := start.Unix()
	to := from + int64(d.Seconds())
	for _, iv := range v.intervals {
		if iv.Start <= from && to <= iv.Stop {
			return true
		}
	}
	return false
}

// FindDayLimit scans the schedule for its earliest or latest interval
// start and formats that instant as a yyyy-MM-dd date in the given zone.
// The second return value is false when the schedule is empty.
func (v *Validator) FindDayLimit(mode DayLimitMode, zone string) (string, bool, error) {
	if len(v.intervals) == 0 {
		return "", false, nil
	}
	offset, err := timezone.ResolveWithDefault(zone, timezone.DefaultZone)
	if err != nil {
		return "", false, err
	}
	shift, err := timezone.OffsetSeconds(offset)
	if err != nil {
		return "", false, err
	}

	limit := v.intervals[0].Start
	switch mode {
	case DayLimitEarliest:
		for _, iv := range v.intervals[1:] {
			if iv.Start < limit {
				limit = iv.Start
			}
		}
	case DayLimitLatest:
		for _, iv := range v.intervals[1:] {
			if iv.Start > limit {
				limit = iv.Start
			}
		}
	default:
		return "", false, fmt.Errorf("unknown day limit mode %q", mode)
	}

	return time.Unix(limit+shift, 0).UTC().Format("2006-01-02"), true, nil
}

// FindLatestEndDate would report the latest date where the given duration
// still fits inside an interval. It is part of the contract but has never
// been implemented; it always returns ErrNotImplemented.
func (v *Validator) FindLatestEndDate(d time.Duration) (string, error) {
	return "", ErrNotImplemented
}
