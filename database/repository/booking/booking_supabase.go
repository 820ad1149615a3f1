package bookingRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"coworking/models"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

const supabaseTable = "bookings"

// exclusionViolation is the Postgres SQLSTATE raised by the meeting-room
// no-overlap constraint.
const exclusionViolation = "23P01"

// SupabaseBookingRepo implements BookingRepository on a Supabase (PostgREST)
// "bookings" table. PostgREST offers no multi-statement transaction, so
// InsertIfAdmitted holds a distributed lock per (date, type) around the read
// and the insert. The table additionally carries an exclusion constraint for
// meeting rooms (database/migrations).
type SupabaseBookingRepo struct {
	client *supa.Client
	locker Locker
}

// NewSupabaseBookingRepo connects to a Supabase project with the service key.
func NewSupabaseBookingRepo(url, serviceKey string, locker Locker) (*SupabaseBookingRepo, error) {
	client, err := supa.NewClient(url, serviceKey, &supa.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}
	return &SupabaseBookingRepo{client: client, locker: locker}, nil
}

func (r *SupabaseBookingRepo) ListConfirmed(ctx context.Context, date string, bookingType models.ResourceType) ([]models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, _, err := r.client.From(supabaseTable).
		Select("*", "", false).
		Eq("booking_date", date).
		Eq("booking_type", string(bookingType)).
		Eq("status", models.StatusConfirmed).
		Order("arrival_time", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}
	return decodeBookings(data)
}

func (r *SupabaseBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, _, err := r.client.From(supabaseTable).
		Select("*", "", false).
		Eq("booking_date", date).
		Order("arrival_time", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}
	return decodeBookings(data)
}

func (r *SupabaseBookingRepo) InsertIfAdmitted(ctx context.Context, booking *models.Booking, admit AdmitFunc) error {
	unlock, err := r.locker.Lock(ctx, lockKey(booking.BookingDate, booking.BookingType))
	if err != nil {
		return fmt.Errorf("acquire booking lock: %w", err)
	}
	defer unlock()

	existing, err := r.ListConfirmed(ctx, booking.BookingDate, booking.BookingType)
	if err != nil {
		return err
	}
	if err := admit(existing); err != nil {
		return err
	}

	data, _, err := r.client.From(supabaseTable).
		Insert(booking, false, "", "representation", "").
		Execute()
	if err != nil {
		if strings.Contains(err.Error(), exclusionViolation) {
			return fmt.Errorf("%w: %v", ErrSlotTaken, err)
		}
		return fmt.Errorf("insert booking failed: %w", err)
	}
	inserted, err := decodeBookings(data)
	if err != nil {
		return err
	}
	if len(inserted) > 0 {
		*booking = inserted[0]
	}
	return nil
}

func (r *SupabaseBookingRepo) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := r.client.From(supabaseTable).Select("id", "", true).Limit(1, "").Execute()
	return err
}

// decodeBookings parses a PostgREST payload. Postgres "time" columns come
// back as "HH:MM:SS"; they are trimmed to the "HH:MM" the service stores.
func decodeBookings(data []byte) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	for i := range bookings {
		bookings[i].ArrivalTime = trimSeconds(bookings[i].ArrivalTime)
		bookings[i].DepartureTime = trimSeconds(bookings[i].DepartureTime)
	}
	return bookings, nil
}

func trimSeconds(t string) string {
	if strings.Count(t, ":") == 2 {
		return t[:strings.LastIndex(t, ":")]
	}
	return t
}
