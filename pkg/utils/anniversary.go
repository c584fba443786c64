package utils

import (
	"fmt"
	"time"
)

const KeyDateLayout = "02/01/2006"

// Elapsed is the calendar distance between two instants.
type Elapsed struct {
	Years   int `json:"years"`
	Months  int `json:"months"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// ParseKeyDate parses a DD/MM/YYYY date at local midnight in loc.
func ParseKeyDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(KeyDateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse key date %q: %w", s, err)
	}
	return t, nil
}

// ElapsedSince computes the years/months/days/hours/minutes from start to now.
// Components are subtracted independently and then normalized by borrowing:
// minutes from hours, hours from days, days from the months preceding now's
// month until they are non-negative, months from years. now is converted to
// start's location first.
func ElapsedSince(start, now time.Time) Elapsed {
	now = now.In(start.Location())

	years := now.Year() - start.Year()
	months := int(now.Month()) - int(start.Month())
	days := now.Day() - start.Day()
	hours := now.Hour() - start.Hour()
	minutes := now.Minute() - start.Minute()

	if minutes < 0 {
		minutes += 60
		hours--
	}
	if hours < 0 {
		hours += 24
		days--
	}
	// Day 0 of a month is the last day of the month before it.
	for back := 0; days < 0; back++ {
		months--
		days += time.Date(now.Year(), now.Month()-time.Month(back), 0, 0, 0, 0, 0, now.Location()).Day()
	}
	if months < 0 {
		years--
		months += 12
	}

	return Elapsed{Years: years, Months: months, Days: days, Hours: hours, Minutes: minutes}
}
