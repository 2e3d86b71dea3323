package timeutil

import (
	"strings"
	"time"
)

// ISO output format sent to the platform: seconds precision, UTC, Z suffix.
const isoUTC = "2006-01-02T15:04:05Z"

// Layouts accepted for bare datetime-local input. Bare values carry no zone
// marker and mean local wall-clock time, matching a datetime-local control.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Layouts with an explicit zone or UTC marker, parsed as given.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04Z07:00",
}

// FormatUTC renders t as a canonical UTC ISO-8601 string.
func FormatUTC(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(isoUTC)
}

// ToUTCISO normalizes a datetime string to canonical UTC ISO-8601. Empty
// input and unparseable input report ok=false; callers keep the raw value in
// that case rather than failing hard.
func ToUTCISO(raw string) (string, bool) {
	return ToUTCISOIn(raw, time.Local)
}

// ToUTCISOIn is ToUTCISO with an explicit location for bare local values.
func ToUTCISOIn(raw string, loc *time.Location) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return FormatUTC(t), true
		}
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return FormatUTC(t), true
		}
	}

	return "", false
}

// NormalizeOrRaw applies ToUTCISOIn and falls back to the raw input when the
// value cannot be parsed.
func NormalizeOrRaw(raw string, loc *time.Location) string {
	if iso, ok := ToUTCISOIn(raw, loc); ok {
		return iso
	}
	return raw
}

// ParseUTCISO parses a canonical or RFC3339 timestamp for comparisons such
// as deadline-before-event checks.
func ParseUTCISO(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
