package utils

import "time"

// DayStringLayout renders dates like "Mon Jan 01 2024".
const DayStringLayout = "Mon Jan 02 2006"

// DayString renders t in loc using DayStringLayout.
func DayString(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayStringLayout)
}

// DailyIndex sums the character codes of day and reduces them modulo n.
// The distribution is poor for short strings; callers rely on it being stable.
// It returns -1 when n is not positive.
func DailyIndex(day string, n int) int {
	if n <= 0 {
		return -1
	}
	sum := 0
	for _, r := range day {
		sum += int(r)
	}
	return sum % n
}
