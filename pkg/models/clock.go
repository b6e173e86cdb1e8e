package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument reports a malformed restriction object, a missing
// date or a malformed clock value. It is surfaced to the caller as-is,
// never retried.
var ErrInvalidArgument = errors.New("invalid argument")

// ParseClock parses a 24-hour "HH:mm" value into minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: malformed clock value %q", ErrInvalidArgument, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: malformed clock value %q", ErrInvalidArgument, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: malformed clock value %q", ErrInvalidArgument, s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: clock value %q out of range", ErrInvalidArgument, s)
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes from midnight as a zero-padded "HH:mm".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// BreakWindow is a pause inside an open day, in minutes from midnight.
type BreakWindow struct {
	Start int
	Stop  int
}

// ParseBreak parses a "HH:mm-HH:mm" break declaration. The second return
// value is false when there is no usable break: an empty string, the
// "00:00-00:00" no-op sentinel, or a window whose start is not before its
// stop. Returning an explicit no-break flag keeps callers from confusing
// "no break configured" with a midnight-to-midnight pause.
func ParseBreak(s string) (BreakWindow, bool, error) {
	if s == "" {
		return BreakWindow{}, false, nil
	}
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return BreakWindow{}, false, fmt.Errorf("%w: malformed break value %q", ErrInvalidArgument, s)
	}
	start, err := ParseClock(parts[0])
	if err != nil {
		return BreakWindow{}, false, err
	}
	stop, err := ParseClock(parts[1])
	if err != nil {
		return BreakWindow{}, false, err
	}
	// A reversed or empty window is dropped rather than rejected, matching
	// the historical permissive policy for the 00:00-00:00 sentinel.
	if start >= stop {
		return BreakWindow{}, false, nil
	}
	return BreakWindow{Start: start, Stop: stop}, true, nil
}

// OpenWindow returns the rule's open and close times as minutes from
// midnight.
func (r WorkTimeRule) OpenWindow() (start, stop int, err error) {
	start, err = ParseClock(r.Start)
	if err != nil {
		return 0, 0, err
	}
	stop, err = ParseClock(r.Stop)
	if err != nil {
		return 0, 0, err
	}
	return start, stop, nil
}

// BreakWindow returns the rule's break, if it has a usable one.
func (r WorkTimeRule) BreakWindow() (BreakWindow, bool, error) {
	return ParseBreak(r.Break)
}
