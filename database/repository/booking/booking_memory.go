package bookingRepo

import (
	"context"
	"sort"
	"sync"

	"coworking/models"
)

// MemoryBookingRepo keeps bookings in process memory. It backs tests and
// STORE_BACKEND=memory; a single mutex makes InsertIfAdmitted atomic.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

// NewMemoryBookingRepo returns an empty in-memory repository, optionally
// seeded with existing bookings.
func NewMemoryBookingRepo(seed ...models.Booking) *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: append([]models.Booking(nil), seed...)}
}

func (r *MemoryBookingRepo) ListConfirmed(ctx context.Context, date string, bookingType models.ResourceType) ([]models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.confirmedLocked(date, bookingType), nil
}

func (r *MemoryBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.BookingDate == date {
			out = append(out, b)
		}
	}
	sortByArrival(out)
	return out, nil
}

func (r *MemoryBookingRepo) InsertIfAdmitted(ctx context.Context, booking *models.Booking, admit AdmitFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := admit(r.confirmedLocked(booking.BookingDate, booking.BookingType)); err != nil {
		return err
	}
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *MemoryBookingRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Len returns the number of stored bookings.
func (r *MemoryBookingRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}

func (r *MemoryBookingRepo) confirmedLocked(date string, bookingType models.ResourceType) []models.Booking {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BookingDate == date && b.BookingType == bookingType && b.Status == models.StatusConfirmed {
			out = append(out, b)
		}
	}
	sortByArrival(out)
	return out
}

func sortByArrival(bookings []models.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].ArrivalTime < bookings[j].ArrivalTime
	})
}
