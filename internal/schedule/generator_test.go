package schedule

import (
	"reflect"
	"testing"
	"time"

	"storehours/pkg/models"
)

// 2026-02-02 is a Monday.
var monday = time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

func mondayRule(brk string) models.WorkTimeRule {
	return models.WorkTimeRule{
		DayOfWeek: models.DayList{"monday"},
		Start:     "09:00",
		Stop:      "18:00",
		Break:     brk,
	}
}

func TestGenerateSplitsDayAtBreak(t *testing.T) {
	g, err := NewGenerator([]models.WorkTimeRule{mondayRule("12:00-12:10")})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	intervals, err := g.Generate(monday, monday, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(intervals) != 2 {
		t.Fatalf("want 2 intervals, got %d: %v", len(intervals), intervals)
	}

	base := monday.Unix()
	expected := Schedule{
		{Start: base + 9*3600, Stop: base + 12*3600},
		{Start: base + 12*3600 + 10*60, Stop: base + 18*3600},
	}
	if !reflect.DeepEqual(intervals, expected) {
		t.Errorf("intervals = %v, expected %v", intervals, expected)
	}
	if intervals[0].Stop > intervals[1].Start {
		t.Errorf("first interval ends after second starts: %v", intervals)
	}
}

func TestGenerateNoopBreakSentinel(t *testing.T) {
	tests := []struct {
		name string
		brk  string
	}{
		{"no break", ""},
		{"zero sentinel", "00:00-00:00"},
		{"reversed window", "13:00-12:00"},
		{"empty window", "12:00-12:00"},
	}

	for _, test := range tests {
		g, err := NewGenerator([]models.WorkTimeRule{mondayRule(test.brk)})
		if err != nil {
			t.Fatalf("%s: NewGenerator: %v", test.name, err)
		}
		intervals, err := g.Generate(monday, monday, "")
		if err != nil {
			t.Fatalf("%s: Generate: %v", test.name, err)
		}
		if len(intervals) != 1 {
			t.Errorf("%s: want 1 interval, got %d", test.name, len(intervals))
			continue
		}
		base := monday.Unix()
		if intervals[0].Start != base+9*3600 || intervals[0].Stop != base+18*3600 {
			t.Errorf("%s: interval = %v", test.name, intervals[0])
		}
	}
}

func TestGenerateAppliesZoneShift(t *testing.T) {
	g, err := NewGenerator([]models.WorkTimeRule{mondayRule("")})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	plain, err := g.Generate(monday, monday, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	shifted, err := g.Generate(monday, monday, "Asia/Yekaterinburg")
	if err != nil {
		t.Fatalf("Generate with zone: %v", err)
	}
	if len(plain) != 1 || len(shifted) != 1 {
		t.Fatalf("want 1 interval each, got %d and %d", len(plain), len(shifted))
	}
	const fiveHours = 5 * 3600
	if shifted[0].Start != plain[0].Start+fiveHours || shifted[0].Stop != plain[0].Stop+fiveHours {
		t.Errorf("zone shift: plain %v, shifted %v", plain[0], shifted[0])
	}
}

func TestGenerateUnknownZone(t *testing.T) {
	g, err := NewGenerator([]models.WorkTimeRule{mondayRule("")})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	if _, err := g.Generate(monday, monday, "Mars/Olympus_Mons"); err == nil {
		t.Error("Generate with unknown zone succeeded, expected error")
	}
}

func TestGenerateSkipsUnmatchedDays(t *testing.T) {
	g, err := NewGenerator([]models.WorkTimeRule{mondayRule("")})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	// Tuesday through Sunday: no Monday in range.
	tuesday := monday.AddDate(0, 0, 1)
	sunday := monday.AddDate(0, 0, 6)
	intervals, err := g.Generate(tuesday, sunday, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(intervals) != 0 {
		t.Errorf("want empty schedule, got %v", intervals)
	}
}

func TestGenerateWildcardCoversEveryDay(t *testing.T) {
	g, err := NewGenerator([]models.WorkTimeRule{{
		DayOfWeek: models.DayList{models.WildcardAllDays},
		Start:     "10:00",
		Stop:      "20:00",
	}})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	intervals, err := g.Generate(monday, monday.AddDate(0, 0, 6), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(intervals) != 7 {
		t.Errorf("want 7 intervals for a full week, got %d", len(intervals))
	}
}

func TestGenerateMultiDayList(t *testing.T) {
	g, err := NewGenerator([]models.WorkTimeRule{{
		DayOfWeek: models.DayList{"monday", "Wednesday", "FRIDAY"},
		Start:     "08:00",
		Stop:      "16:00",
	}})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	intervals, err := g.Generate(monday, monday.AddDate(0, 0, 6), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(intervals) != 3 {
		t.Errorf("want 3 intervals (mon/wed/fri), got %d: %v", len(intervals), intervals)
	}
}

func TestGenerateFirstDeclaredRuleWins(t *testing.T) {
	g, err := NewGenerator([]models.WorkTimeRule{
		{DayOfWeek: models.DayList{"monday"}, Start: "09:00", Stop: "12:00"},
		{DayOfWeek: models.DayList{models.WildcardAllDays}, Start: "10:00", Stop: "20:00"},
	})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	intervals, err := g.Generate(monday, monday.AddDate(0, 0, 1), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(intervals) != 2 {
		t.Fatalf("want 2 intervals, got %d", len(intervals))
	}
	// Monday takes its dedicated rule, Tuesday the wildcard.
	base := monday.Unix()
	if intervals[0].Start != base+9*3600 || intervals[0].Stop != base+12*3600 {
		t.Errorf("monday interval = %v, expected dedicated rule window", intervals[0])
	}
	tuesdayBase := monday.AddDate(0, 0, 1).Unix()
	if intervals[1].Start != tuesdayBase+10*3600 || intervals[1].Stop != tuesdayBase+20*3600 {
		t.Errorf("tuesday interval = %v, expected wildcard window", intervals[1])
	}
}

func TestGenerateIdempotent(t *testing.T) {
	g, err := NewGenerator([]models.WorkTimeRule{mondayRule("12:00-13:00")})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	first, err := g.Generate(monday, monday.AddDate(0, 0, 13), "Europe/Moscow")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := g.Generate(monday, monday.AddDate(0, 0, 13), "Europe/Moscow")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated generation differs: %v vs %v", first, second)
	}
}

func TestPairsRoundTrip(t *testing.T) {
	g, err := NewGenerator([]models.WorkTimeRule{mondayRule("12:00-12:30")})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	verbose, err := g.Generate(monday, monday.AddDate(0, 0, 7), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	pairs := verbose.Pairs()
	if len(pairs) != len(verbose) {
		t.Fatalf("pair count %d != interval count %d", len(pairs), len(verbose))
	}
	for i, p := range pairs {
		if p[0] != verbose[i].Start || p[1] != verbose[i].Stop {
			t.Errorf("pair %d = %v, interval = %v", i, p, verbose[i])
		}
	}

	if !reflect.DeepEqual(FromPairs(pairs), verbose) {
		t.Errorf("FromPairs(Pairs()) differs from original")
	}
}

func TestGenerateMalformedRule(t *testing.T) {
	_, err := NewGenerator([]models.WorkTimeRule{{
		DayOfWeek: models.DayList{"monday"},
		Start:     "9 o'clock",
		Stop:      "18:00",
	}})
	if err == nil {
		t.Error("NewGenerator accepted malformed start time")
	}
}
