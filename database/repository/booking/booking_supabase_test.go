package bookingRepo

import "testing"

func TestDecodeBookingsTrimsSeconds(t *testing.T) {
	payload := []byte(`[{"id":"1","booking_date":"2024-01-08","arrival_time":"09:00:00","departure_time":"13:30:00","booking_type":"coworking","status":"confirmed","cost":20,"duration":4.5}]`)
	got, err := decodeBookings(payload)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("decoded %d bookings", len(got))
	}
	if got[0].ArrivalTime != "09:00" || got[0].DepartureTime != "13:30" {
		t.Errorf("times = %q-%q", got[0].ArrivalTime, got[0].DepartureTime)
	}
	if got[0].Cost != 20 || got[0].Duration != 4.5 {
		t.Errorf("booking = %+v", got[0])
	}
}

func TestDecodeBookingsRejectsGarbage(t *testing.T) {
	if _, err := decodeBookings([]byte(`{"message":"boom"}`)); err == nil {
		t.Fatal("object payload decoded as list")
	}
}

func TestTrimSeconds(t *testing.T) {
	for in, want := range map[string]string{"09:00:00": "09:00", "09:00": "09:00", "": ""} {
		if got := trimSeconds(in); got != want {
			t.Errorf("trimSeconds(%q) = %q", in, got)
		}
	}
}
