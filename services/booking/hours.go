package booking

import (
	"time"

	"coworking/models"
)

const dateLayout = "2006-01-02"

// HoursCheck is the verdict of the opening-hours validator.
type HoursCheck struct {
	Valid bool   `json:"valid"`
	Error string `json:"error"`
}

type openingWindow struct {
	open, close int
	message     string
}

// openingHours is indexed by time.Weekday; a nil entry means closed.
var openingHours = [7]*openingWindow{
	time.Sunday:    nil,
	time.Monday:    {open: 9 * 60, close: 19 * 60, message: msgWeekdayHours},
	time.Tuesday:   {open: 9 * 60, close: 19 * 60, message: msgWeekdayHours},
	time.Wednesday: {open: 9 * 60, close: 19 * 60, message: msgWeekdayHours},
	time.Thursday:  {open: 9 * 60, close: 19 * 60, message: msgWeekdayHours},
	time.Friday:    {open: 9 * 60, close: 19 * 60, message: msgWeekdayHours},
	time.Saturday:  {open: 10 * 60, close: 18 * 60, message: msgSaturdayHours},
}

// ParseDate parses a "YYYY-MM-DD" calendar day. The result is midnight UTC,
// so its weekday is the calendar weekday regardless of server timezone.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(dateLayout, date)
}

// CheckOpeningHours decides whether the interval lies inside the opening
// window of the day's weekday.
func CheckOpeningHours(day time.Time, iv models.TimeInterval) HoursCheck {
	w := openingHours[day.Weekday()]
	if w == nil {
		return HoursCheck{Valid: false, Error: msgClosedSunday}
	}
	if iv.Start < w.open || iv.End > w.close {
		return HoursCheck{Valid: false, Error: w.message}
	}
	return HoursCheck{Valid: true}
}
