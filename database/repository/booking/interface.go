// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"coworking/models"
)

// ErrSlotTaken is returned when the datastore itself refuses an insert
// because the slot is already held (for example an exclusion constraint).
var ErrSlotTaken = errors.New("slot already taken")

// AdmitFunc inspects the confirmed bookings of the candidate's date and
// resource type and returns a non-nil error to refuse the insert.
type AdmitFunc func(existing []models.Booking) error

// BookingRepository is the datastore contract of the booking service. Only
// reads and inserts exist: persisted bookings are immutable.
type BookingRepository interface {
	// ListConfirmed returns confirmed bookings of a date and resource type,
	// ordered by arrival time.
	ListConfirmed(ctx context.Context, date string, bookingType models.ResourceType) ([]models.Booking, error)
	// ListByDate returns every booking of a date, all resource types.
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	// InsertIfAdmitted reads the confirmed bookings of the booking's date and
	// type, calls admit with them and inserts only if admit returns nil. The
	// read, the decision and the insert form one critical section per
	// (date, type): concurrent callers cannot both be admitted against the
	// same snapshot. An admit error is returned unchanged.
	InsertIfAdmitted(ctx context.Context, booking *models.Booking, admit AdmitFunc) error
	// Ping reports whether the datastore is reachable.
	Ping(ctx context.Context) error
}

// Locker serializes critical sections across processes.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// newContext derives a bounded context for a single datastore round trip.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// lockKey names the critical section of a date and resource type.
func lockKey(date string, bookingType models.ResourceType) string {
	return "booking:" + date + ":" + string(bookingType)
}
