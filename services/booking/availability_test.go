package booking

import (
	"fmt"
	"testing"

	"coworking/models"
)

func repeat(iv models.TimeInterval, n int) []models.TimeInterval {
	out := make([]models.TimeInterval, n)
	for i := range out {
		out[i] = iv
	}
	return out
}

func TestCheckCoworkingSaturates(t *testing.T) {
	candidate := models.TimeInterval{Start: 600, End: 720}

	// 19 concurrent desks plus the candidate fill the room exactly.
	res := CheckCoworking(candidate, repeat(candidate, 19), DefaultCoworkingCapacity)
	if !res.Available {
		t.Fatalf("20th desk refused: %+v", res)
	}
	if res.SpotsRemaining == nil || *res.SpotsRemaining != 1 {
		t.Fatalf("spots remaining = %v, want 1", res.SpotsRemaining)
	}
	if res.Message != "1 place disponible" {
		t.Errorf("message = %q", res.Message)
	}

	// With 20 desks held the 21st request is rejected.
	res = CheckCoworking(candidate, repeat(candidate, 20), DefaultCoworkingCapacity)
	if res.Available {
		t.Fatalf("21st desk admitted: %+v", res)
	}
	if res.Message != msgCapacityReached {
		t.Errorf("message = %q", res.Message)
	}
}

func TestCheckCoworkingSpotsDecreaseMonotonically(t *testing.T) {
	candidate := models.TimeInterval{Start: 600, End: 720}
	prev := DefaultCoworkingCapacity + 1
	for n := 0; n < DefaultCoworkingCapacity; n++ {
		res := CheckCoworking(candidate, repeat(candidate, n), DefaultCoworkingCapacity)
		if !res.Available || res.SpotsRemaining == nil {
			t.Fatalf("n=%d: %+v", n, res)
		}
		if *res.SpotsRemaining >= prev {
			t.Fatalf("n=%d: spots %d not below %d", n, *res.SpotsRemaining, prev)
		}
		prev = *res.SpotsRemaining
	}
	if empty := CheckCoworking(candidate, nil, DefaultCoworkingCapacity); *empty.SpotsRemaining != DefaultCoworkingCapacity {
		t.Errorf("empty day: spots %d", *empty.SpotsRemaining)
	}
}

func TestCheckCoworkingCountsPeakNotTotal(t *testing.T) {
	candidate := models.TimeInterval{Start: 540, End: 1140}
	// Three desks per hour across the day: the peak is 3 plus the candidate,
	// far below the 30 bookings overlapping it.
	var existing []models.TimeInterval
	for i := 0; i < 30; i++ {
		start := 540 + (i%10)*60
		existing = append(existing, models.TimeInterval{Start: start, End: start + 60})
	}
	res := CheckCoworking(candidate, existing, 3)
	if res.Available {
		t.Fatalf("peak of 4 admitted against capacity 3: %+v", res)
	}
	res = CheckCoworking(candidate, existing, 4)
	if !res.Available {
		t.Fatalf("peak of 4 refused against capacity 4: %+v", res)
	}
}

func TestCheckCoworkingDeparturesBeforeArrivals(t *testing.T) {
	candidate := models.TimeInterval{Start: 540, End: 720}
	// Twenty desks leave at 10:00 as twenty others arrive.
	existing := append(repeat(models.TimeInterval{Start: 540, End: 600}, 20),
		repeat(models.TimeInterval{Start: 600, End: 660}, 20)...)
	res := CheckCoworking(candidate, existing, 21)
	if !res.Available || *res.SpotsRemaining != 1 {
		t.Fatalf("hand-over at 10:00 double counted: %+v", res)
	}
}

func TestCheckMeetingRoom(t *testing.T) {
	held := []models.TimeInterval{{Start: 600, End: 660}}
	cases := []struct {
		name      string
		candidate models.TimeInterval
		available bool
	}{
		{"ends at start", models.TimeInterval{Start: 540, End: 600}, true},
		{"starts at end", models.TimeInterval{Start: 660, End: 720}, true},
		{"overlap", models.TimeInterval{Start: 630, End: 690}, false},
		{"inside", models.TimeInterval{Start: 610, End: 620}, false},
	}
	for _, tc := range cases {
		res := CheckMeetingRoom(tc.candidate, held)
		if res.Available != tc.available {
			t.Errorf("%s: %+v", tc.name, res)
		}
		if res.SpotsRemaining != nil {
			t.Errorf("%s: meeting room reports spots", tc.name)
		}
	}
}

func TestAdmitWording(t *testing.T) {
	candidate := models.TimeInterval{Start: 600, End: 660}
	var full []models.Booking
	for i := 0; i < 2; i++ {
		full = append(full, models.Booking{ID: fmt.Sprint(i), ArrivalTime: "10:00", DepartureTime: "11:00"})
	}

	err := Admit(models.Coworking, candidate, full, 2)
	if KindOf(err) != KindConflict || PublicMessage(err) != msgCoworkingFull {
		t.Errorf("coworking: %v", err)
	}
	err = Admit(models.MeetingRoom, candidate, full[:1], 1)
	if KindOf(err) != KindConflict || PublicMessage(err) != msgRoomConflict {
		t.Errorf("meeting room: %v", err)
	}
	if err := Admit(models.Coworking, candidate, full[:1], 2); err != nil {
		t.Errorf("free desk refused: %v", err)
	}

	corrupt := []models.Booking{{ID: "x", ArrivalTime: "noon", DepartureTime: "11:00"}}
	if err := Admit(models.Coworking, candidate, corrupt, 2); KindOf(err) != KindInternal {
		t.Errorf("unreadable stored booking: %v", err)
	}
}
