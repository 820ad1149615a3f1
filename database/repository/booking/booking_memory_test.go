package bookingRepo

import (
	"context"
	"errors"
	"sync"
	"testing"

	"coworking/models"
)

func confirmed(id, date, arrival, departure string, t models.ResourceType) models.Booking {
	return models.Booking{ID: id, BookingDate: date, ArrivalTime: arrival, DepartureTime: departure, BookingType: t, Status: models.StatusConfirmed}
}

func TestMemoryListConfirmedFilters(t *testing.T) {
	other := confirmed("x", "2024-01-08", "09:00", "10:00", models.Coworking)
	other.Status = "cancelled"
	repo := NewMemoryBookingRepo(
		confirmed("b", "2024-01-08", "11:00", "12:00", models.Coworking),
		confirmed("a", "2024-01-08", "09:00", "10:00", models.Coworking),
		confirmed("m", "2024-01-08", "09:00", "10:00", models.MeetingRoom),
		confirmed("n", "2024-01-09", "09:00", "10:00", models.Coworking),
		other,
	)

	got, err := repo.ListConfirmed(context.Background(), "2024-01-08", models.Coworking)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("got %+v", got)
	}

	all, _ := repo.ListByDate(context.Background(), "2024-01-08")
	if len(all) != 4 {
		t.Fatalf("ListByDate returned %d", len(all))
	}
}

func TestMemoryInsertIfAdmitted(t *testing.T) {
	repo := NewMemoryBookingRepo(confirmed("a", "2024-01-08", "09:00", "10:00", models.MeetingRoom))
	refuse := errors.New("refused")

	var seen []models.Booking
	b := confirmed("b", "2024-01-08", "10:00", "11:00", models.MeetingRoom)
	err := repo.InsertIfAdmitted(context.Background(), &b, func(existing []models.Booking) error {
		seen = existing
		return refuse
	})
	if !errors.Is(err, refuse) {
		t.Fatalf("err = %v", err)
	}
	if len(seen) != 1 || seen[0].ID != "a" {
		t.Fatalf("admit saw %+v", seen)
	}
	if repo.Len() != 1 {
		t.Fatal("refused booking stored")
	}

	if err := repo.InsertIfAdmitted(context.Background(), &b, func([]models.Booking) error { return nil }); err != nil {
		t.Fatal(err)
	}
	if repo.Len() != 2 {
		t.Fatal("admitted booking not stored")
	}
}

func TestMemoryInsertIfAdmittedIsAtomic(t *testing.T) {
	repo := NewMemoryBookingRepo()
	onlyIfEmpty := func(existing []models.Booking) error {
		if len(existing) > 0 {
			return ErrSlotTaken
		}
		return nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := confirmed("x", "2024-01-08", "09:00", "10:00", models.MeetingRoom)
			_ = repo.InsertIfAdmitted(context.Background(), &b, onlyIfEmpty)
		}()
	}
	wg.Wait()
	if repo.Len() != 1 {
		t.Fatalf("stored %d bookings", repo.Len())
	}
}

func TestMemoryHonoursCancelledContext(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := repo.ListConfirmed(ctx, "2024-01-08", models.Coworking); !errors.Is(err, context.Canceled) {
		t.Errorf("ListConfirmed: %v", err)
	}
	b := confirmed("x", "2024-01-08", "09:00", "10:00", models.Coworking)
	if err := repo.InsertIfAdmitted(ctx, &b, func([]models.Booking) error { return nil }); !errors.Is(err, context.Canceled) {
		t.Errorf("InsertIfAdmitted: %v", err)
	}
}

func TestLockKey(t *testing.T) {
	if got := lockKey("2024-01-08", models.MeetingRoom); got != "booking:2024-01-08:meeting_room" {
		t.Errorf("lockKey = %q", got)
	}
}
