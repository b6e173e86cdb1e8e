// Package schedule compiles weekly work-time rules into concrete,
// timezone-shifted epoch-second intervals and answers containment queries
// against them.
package schedule

import (
	"strings"
	"time"

	"storehours/internal/timezone"
	"storehours/pkg/models"
)

// Interval is one open window in absolute epoch seconds, boundaries
// already shifted by the requested zone offset.
type Interval struct {
	Start int64 `json:"start"`
	Stop  int64 `json:"stop"`
}

// Schedule is an ordered list of open intervals.
type Schedule []Interval

// Pairs projects the schedule into its compact [start, stop] form. The
// pair form carries exactly the verbose form's boundaries in the same
// order.
func (s Schedule) Pairs() [][2]int64 {
	pairs := make([][2]int64, 0, len(s))
	for _, iv := range s {
		pairs = append(pairs, [2]int64{iv.Start, iv.Stop})
	}
	return pairs
}

// FromPairs rebuilds a schedule from its compact form, preserving order.
func FromPairs(pairs [][2]int64) Schedule {
	s := make(Schedule, 0, len(pairs))
	for _, p := range pairs {
		s = append(s, Interval{Start: p[0], Stop: p[1]})
	}
	return s
}

// compiledDay is one weekday's open window in seconds from midnight,
// with an optional break to split the day around.
type compiledDay struct {
	start int64
	stop  int64
	brk   *models.BreakWindow
}

// Generator holds rules compiled per weekday, ready to be expanded over
// any date range.
type Generator struct {
	days map[string]compiledDay
}

var weekdayNames = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// NewGenerator compiles a rule list. Each weekday resolves to its rule via
// the shared first-match-wins resolver, so generated intervals always
// agree with the minute-of-day validator about which rule governs a day.
func NewGenerator(rules []models.WorkTimeRule) (*Generator, error) {
	days := make(map[string]compiledDay)
	for _, day := range weekdayNames {
		rule, ok := models.RuleFor(rules, day)
		if !ok {
			continue
		}
		start, stop, err := rule.OpenWindow()
		if err != nil {
			return nil, err
		}
		compiled := compiledDay{
			start: int64(start) * 60,
			stop:  int64(stop) * 60,
		}
		if brk, ok, err := rule.BreakWindow(); err != nil {
			return nil, err
		} else if ok {
			compiled.brk = &brk
		}
		days[day] = compiled
	}
	return &Generator{days: days}, nil
}

// Generate expands the compiled rules over every calendar day from
// startDate to endDate inclusive. Days without a compiled entry are
// skipped; a range matching nothing yields an empty schedule. A day with
// a break becomes two intervals split at the break, otherwise one. Every
// boundary is the date's UTC midnight plus the seconds-from-midnight
// value, shifted by the resolved offset of zone (default Etc/GMT+0).
func (g *Generator) Generate(startDate, endDate time.Time, zone string) (Schedule, error) {
	offset, err := timezone.ResolveWithDefault(zone, timezone.DefaultZone)
	if err != nil {
		return nil, err
	}
	shift, err := timezone.OffsetSeconds(offset)
	if err != nil {
		return nil, err
	}

	var out Schedule
	for day := midnightUTC(startDate); !day.After(midnightUTC(endDate)); day = day.AddDate(0, 0, 1) {
		compiled, ok := g.days[strings.ToLower(day.Weekday().String())]
		if !ok {
			continue
		}
		base := day.Unix()
		if compiled.brk != nil {
			breakStart := int64(compiled.brk.Start) * 60
			breakStop := int64(compiled.brk.Stop) * 60
			out = append(out,
				Interval{Start: base + compiled.start + shift, Stop: base + breakStart + shift},
				Interval{Start: base + breakStop + shift, Stop: base + compiled.stop + shift},
			)
		} else {
			out = append(out, Interval{Start: base + compiled.start + shift, Stop: base + compiled.stop + shift})
		}
	}
	return out, nil
}

func midnightUTC(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
