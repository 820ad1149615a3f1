package booking

import (
	"context"
	"time"

	bookingRepo "coworking/database/repository/booking"
	"coworking/models"
	"coworking/services/tasks"

	"go.uber.org/zap"
)

// BookingService is the server side of the booking widget.
type BookingService interface {
	Quote(req models.QuoteRequest) (models.QuoteResponse, error)
	CheckAvailability(ctx context.Context, req models.AvailabilityRequest) (models.AvailabilityResult, error)
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	ListBookings(ctx context.Context, date string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Tasks    tasks.Enqueuer // optional; nil disables confirmation tasks
	Capacity int            // coworking seats; DefaultCoworkingCapacity when zero
	Location *time.Location // timezone deciding "today"; UTC when nil
	Now      func() time.Time
	Logger   *zap.Logger
}
