package draft

import (
	"testing"

	"coworking/models"
)

func TestRecompute(t *testing.T) {
	base := New().WithBookingDate("2024-01-08")
	cases := []struct {
		name string
		d    Draft
		want Quote
	}{
		{"incomplete", base.WithArrivalTime("09:00"), Quote{}},
		{"morning", base.WithArrivalTime("09:00").WithDepartureTime("12:00"),
			Quote{Cost: 14, DurationHours: 3, Detail: "Offre matinale : 3h avant 12h30"}},
		{"meeting room", base.WithType(models.MeetingRoom).WithArrivalTime("09:00").WithDepartureTime("13:00"),
			Quote{Cost: 100, DurationHours: 4, Detail: "Forfait 4h (100€)"}},
		{"inverted", base.WithArrivalTime("12:00").WithDepartureTime("10:00"),
			Quote{TimeError: "L'heure de départ doit être après l'heure d'arrivée"}},
		{"sunday", New().WithBookingDate("2024-01-07").WithArrivalTime("10:00").WithDepartureTime("12:00"),
			Quote{TimeError: "Le coworking est fermé le dimanche."}},
		{"bad time", base.WithArrivalTime("9h").WithDepartureTime("12:00"),
			Quote{TimeError: "Format d'heure invalide (HH:MM attendu)"}},
	}
	for _, tc := range cases {
		if got := Recompute(tc.d); got != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestDraftIsImmutable(t *testing.T) {
	d := New().WithArrivalTime("09:00")
	_ = d.WithArrivalTime("10:00").WithEmail("a@b.c")
	if d.ArrivalTime != "09:00" || d.Email != "" {
		t.Fatalf("draft mutated: %+v", d)
	}
}

func TestReady(t *testing.T) {
	d := New().
		WithFirstName("Ada").WithLastName("Lovelace").WithEmail("ada@example.com").
		WithBookingDate("2024-01-08").WithArrivalTime("09:00").WithDepartureTime("13:00")
	q := Recompute(d)
	if !d.Ready(q) {
		t.Fatalf("complete draft not ready: %+v %+v", d, q)
	}
	if d.WithEmail("").Ready(q) {
		t.Error("ready without email")
	}
	bad := d.WithDepartureTime("20:00")
	if bad.Ready(Recompute(bad)) {
		t.Error("ready outside opening hours")
	}

	req := d.CreateRequest(q)
	if req.Cost != 20 || req.Duration != 4 || req.PriceDetail != "Forfait 4h" || req.BookingType != models.Coworking {
		t.Errorf("request = %+v", req)
	}
}
