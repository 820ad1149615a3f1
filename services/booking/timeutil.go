package booking

import (
	"fmt"
	"strconv"
	"strings"

	"coworking/models"
)

// ToMinutes parses an "HH:MM" clock time into minutes since midnight.
func ToMinutes(hhmm string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(hhmm), ":")
	if !ok || len(h) == 0 || len(h) > 2 || len(m) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrParse, hhmm)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrParse, hhmm)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrParse, hhmm)
	}
	return hour*60 + minute, nil
}

// FormatMinutes renders minutes since midnight as "HH:MM".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseInterval builds the interval between two clock times. It does not
// check ordering: callers reject End <= Start.
func ParseInterval(arrival, departure string) (models.TimeInterval, error) {
	start, err := ToMinutes(arrival)
	if err != nil {
		return models.TimeInterval{}, err
	}
	end, err := ToMinutes(departure)
	if err != nil {
		return models.TimeInterval{}, err
	}
	return models.TimeInterval{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals share at least a minute.
// Touching intervals do not overlap.
func Overlaps(a, b models.TimeInterval) bool {
	return a.Start < b.End && a.End > b.Start
}

// floorTo truncates minutes down to a multiple of step.
func floorTo(minutes, step int) int {
	return minutes / step * step
}
