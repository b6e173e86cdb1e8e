// Package timezone maps IANA-style zone names to fixed UTC offsets.
//
// The mapping is a static table and deliberately ignores daylight-saving
// transitions: every zone resolves to its standard offset as baked into
// the table. It is the single source of truth for converting a named zone
// into minutes to add or subtract from UTC; no other package interprets
// zone names.
package timezone

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownTimeZone reports a zone name missing from the offset table.
var ErrUnknownTimeZone = errors.New("unknown time zone")

// DefaultZone is used when a restriction does not name a timezone and the
// caller supplied no other default.
const DefaultZone = "Etc/GMT+0"

// Resolve returns the fixed UTC offset for a zone name as "±HH:MM".
func Resolve(name string) (string, error) {
	offset, ok := offsets[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTimeZone, name)
	}
	return offset, nil
}

// ResolveWithDefault resolves name, falling back to fallback when name is
// empty. The fallback is an explicit parameter so that callers thread
// their configured default through instead of the resolver reading
// ambient state.
func ResolveWithDefault(name, fallback string) (string, error) {
	if name == "" {
		name = fallback
	}
	if name == "" {
		name = DefaultZone
	}
	return Resolve(name)
}

// OffsetMinutes parses a "±HH:MM" offset into signed minutes east of UTC.
func OffsetMinutes(offset string) (int, error) {
	if len(offset) != 6 || (offset[0] != '+' && offset[0] != '-') || offset[3] != ':' {
		return 0, fmt.Errorf("malformed offset %q", offset)
	}
	hours, err := strconv.Atoi(offset[1:3])
	if err != nil {
		return 0, fmt.Errorf("malformed offset %q", offset)
	}
	minutes, err := strconv.Atoi(offset[4:6])
	if err != nil {
		return 0, fmt.Errorf("malformed offset %q", offset)
	}
	total := hours*60 + minutes
	if strings.HasPrefix(offset, "-") {
		total = -total
	}
	return total, nil
}

// OffsetSeconds is OffsetMinutes in seconds, for epoch arithmetic.
func OffsetSeconds(offset string) (int64, error) {
	minutes, err := OffsetMinutes(offset)
	if err != nil {
		return 0, err
	}
	return int64(minutes) * 60, nil
}
