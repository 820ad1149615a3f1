package booking

import (
	"testing"

	"coworking/models"
)

func mustInterval(t *testing.T, arrival, departure string) models.TimeInterval {
	t.Helper()
	iv, err := ParseInterval(arrival, departure)
	if err != nil {
		t.Fatalf("ParseInterval(%q, %q): %v", arrival, departure, err)
	}
	return iv
}

func TestCheckOpeningHours(t *testing.T) {
	cases := []struct {
		date, arrival, departure string
		valid                    bool
		msg                      string
	}{
		// 2024-01-07 is a Sunday.
		{"2024-01-07", "10:00", "12:00", false, msgClosedSunday},
		{"2024-01-07", "09:00", "19:00", false, msgClosedSunday},
		// 2024-01-06 is a Saturday.
		{"2024-01-06", "09:30", "11:00", false, msgSaturdayHours},
		{"2024-01-06", "10:00", "17:00", true, ""},
		{"2024-01-06", "10:00", "18:00", true, ""},
		{"2024-01-06", "17:00", "18:30", false, msgSaturdayHours},
		// 2024-01-08 is a Monday.
		{"2024-01-08", "09:00", "19:00", true, ""},
		{"2024-01-08", "08:59", "10:00", false, msgWeekdayHours},
		{"2024-01-08", "18:00", "19:01", false, msgWeekdayHours},
	}
	for _, tc := range cases {
		day, err := ParseDate(tc.date)
		if err != nil {
			t.Fatal(err)
		}
		got := CheckOpeningHours(day, mustInterval(t, tc.arrival, tc.departure))
		if got.Valid != tc.valid || got.Error != tc.msg {
			t.Errorf("%s %s-%s: got %+v, want valid=%v msg=%q", tc.date, tc.arrival, tc.departure, got, tc.valid, tc.msg)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "2024-13-01", "07/01/2024", "2024-1-7"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) succeeded", in)
		}
	}
}
