package scheduling

import (
	"fmt"
	"time"
)

// Accepted date-time grains for inbound appointment requests.
// Seconds are optional and default to :00. Instants are naive local times;
// they carry no zone and are only ever compared to each other.
const (
	layoutMinutes = "2006-01-02T15:04"
	layoutSeconds = "2006-01-02T15:04:05"
)

// ParseLocalDateTime parses an ISO-like local date-time string in one of the
// two accepted grains. Any other shape is rejected with an error naming the
// offending input.
func ParseLocalDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(layoutSeconds, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(layoutMinutes, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q: expected YYYY-MM-DDTHH:MM or YYYY-MM-DDTHH:MM:SS", s)
}

// FormatLocalDateTime renders the canonical textual form: seconds are omitted
// when zero, so a stored instant round-trips through ParseLocalDateTime.
func FormatLocalDateTime(t time.Time) string {
	if t.Second() == 0 {
		return t.Format(layoutMinutes)
	}
	return t.Format(layoutSeconds)
}
