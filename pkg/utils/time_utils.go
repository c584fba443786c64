package utils

import (
	"fmt"
	"time"
)

func NowUnixSeconds() int64 { return time.Now().Unix() }

func FormatRFC3339(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(time.RFC3339)
}

// Remaining renders the time left until target as "<d>d <h>h".
func Remaining(now, target time.Time) string {
	diff := target.Sub(now)
	if diff < 0 {
		diff = 0
	}
	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	return fmt.Sprintf("%dd %dh", days, hours)
}

const DateLayout = "2006-01-02"

// ParseDate accepts a calendar date ("2006-01-02") or an RFC 3339 timestamp.
// Calendar dates are placed at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidInput, s)
	}
	return t, nil
}

// ParseOptionalDate returns nil for an empty string.
func ParseOptionalDate(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
