package booking

import (
	"context"
	"errors"
	"math"
	"time"

	bookingRepo "coworking/database/repository/booking"
	"coworking/models"
	"coworking/services/tasks"
	"coworking/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// priceTolerance absorbs float formatting of the client's cost.
const priceTolerance = 0.005

// Quote prices an interval after the same checks a submission goes through.
func (s *DefaultBookingService) Quote(req models.QuoteRequest) (models.QuoteResponse, error) {
	if err := validate.Struct(req); err != nil {
		if req.BookingType != "" && !req.BookingType.Valid() {
			return models.QuoteResponse{}, NewInputError(msgInvalidType)
		}
		return models.QuoteResponse{}, NewInputError(msgMissingParams)
	}
	sl, err := parseSlot(req.BookingDate, req.ArrivalTime, req.DepartureTime, req.BookingType)
	if err != nil {
		return models.QuoteResponse{}, err
	}
	pr, err := Price(sl.bookingType, sl.interval)
	if err != nil {
		return models.QuoteResponse{}, err
	}
	return models.QuoteResponse{Cost: pr.Cost, Detail: pr.Detail, DurationHours: DurationHours(sl.interval)}, nil
}

// CheckAvailability answers an advisory availability request. Only a
// request with missing or unparsable fields yields an error; every other
// outcome, including datastore failures, is an unavailable result.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, req models.AvailabilityRequest) (models.AvailabilityResult, error) {
	logger := s.logger()

	if err := validate.Struct(req); err != nil {
		return unavailable(msgMissingParams), NewInputError(msgMissingParams)
	}
	day, err := ParseDate(req.BookingDate)
	if err != nil {
		return unavailable(msgInvalidDate), NewInputError(msgInvalidDate)
	}
	iv, err := ParseInterval(req.ArrivalTime, req.DepartureTime)
	if err != nil {
		return unavailable(msgInvalidTime), NewInputError(msgInvalidTime)
	}
	if iv.End <= iv.Start {
		return unavailable(msgInvertedInterval), nil
	}
	if !req.BookingType.Valid() {
		return unavailable(msgInvalidType), nil
	}
	if hc := CheckOpeningHours(day, iv); !hc.Valid {
		return unavailable(hc.Error), nil
	}

	existing, err := s.Repo.ListConfirmed(ctx, req.BookingDate, req.BookingType)
	if err != nil {
		logger.Error("CheckAvailability: error fetching bookings",
			zap.String("date", req.BookingDate), zap.String("type", string(req.BookingType)), zap.Error(err))
		return unavailable(msgAvailabilityFailed), nil
	}
	res, err := Evaluate(req.BookingType, iv, existing, s.capacity())
	if err != nil {
		logger.Error("CheckAvailability: unreadable stored booking", zap.Error(err))
		return unavailable(msgAvailabilityFailed), nil
	}
	return res, nil
}

// CreateBooking re-validates and re-prices the request, then admits and
// inserts it in one critical section of the repository. Nothing is written
// unless every step passes.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	logger := s.logger()

	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}
	sl, err := parseSlot(req.BookingDate, req.ArrivalTime, req.DepartureTime, req.BookingType)
	if err != nil {
		return nil, err
	}
	if isPast(sl.day, s.now(), s.location()) {
		return nil, NewBusinessRuleError(msgPastDate)
	}
	pr, err := Price(sl.bookingType, sl.interval)
	if err != nil {
		return nil, err
	}
	if math.Abs(pr.Cost-req.Cost) > priceTolerance {
		logger.Warn("CreateBooking: client price differs from tariff",
			zap.Float64("client", req.Cost), zap.Float64("server", pr.Cost))
		return nil, NewBusinessRuleError(msgPriceMismatch)
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		BookingDate:   req.BookingDate,
		ArrivalTime:   FormatMinutes(sl.interval.Start),
		DepartureTime: FormatMinutes(sl.interval.End),
		BookingType:   sl.bookingType,
		Duration:      DurationHours(sl.interval),
		Cost:          pr.Cost,
		PriceDetail:   pr.Detail,
		Status:        models.StatusConfirmed,
		CreatedAt:     s.now().UTC(),
	}

	var rejected error
	err = s.Repo.InsertIfAdmitted(ctx, b, func(existing []models.Booking) error {
		rejected = Admit(b.BookingType, sl.interval, existing, s.capacity())
		return rejected
	})
	switch {
	case rejected != nil:
		logger.Info("CreateBooking: slot refused",
			zap.String("date", b.BookingDate), zap.String("type", string(b.BookingType)), zap.Error(rejected))
		return nil, rejected
	case errors.Is(err, bookingRepo.ErrSlotTaken):
		return nil, NewConflictError(conflictMessage(b.BookingType))
	case err != nil:
		logger.Error("CreateBooking: insert failed", zap.String("bookingID", b.ID), zap.Error(err))
		return nil, NewDependencyError(msgCreateFailed, err)
	}

	logger.Info("CreateBooking: booking confirmed",
		zap.String("bookingID", b.ID), zap.String("date", b.BookingDate),
		zap.String("type", string(b.BookingType)), zap.Float64("cost", b.Cost))
	s.enqueueConfirmation(*b)
	return b, nil
}

// ListBookings returns every booking of a date.
func (s *DefaultBookingService) ListBookings(ctx context.Context, date string) ([]models.Booking, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, NewInputError(msgInvalidDate)
	}
	bookings, err := s.Repo.ListByDate(ctx, date)
	if err != nil {
		return nil, NewDependencyError(msgServerError, err)
	}
	return bookings, nil
}

// enqueueConfirmation never fails the request: the booking is persisted.
func (s *DefaultBookingService) enqueueConfirmation(b models.Booking) {
	if s.Tasks == nil {
		return
	}
	task, opts, err := tasks.NewConfirmationTask(b)
	if err != nil {
		s.logger().Error("enqueueConfirmation: build task", zap.String("bookingID", b.ID), zap.Error(err))
		return
	}
	if _, err := s.Tasks.Enqueue(task, opts...); err != nil {
		s.logger().Warn("enqueueConfirmation: enqueue failed", zap.String("bookingID", b.ID), zap.Error(err))
	}
}

func conflictMessage(t models.ResourceType) string {
	if t == models.MeetingRoom {
		return msgRoomConflict
	}
	return msgCoworkingFull
}

func unavailable(msg string) models.AvailabilityResult {
	return models.AvailabilityResult{Available: false, Message: msg}
}

func (s *DefaultBookingService) capacity() int {
	if s.Capacity > 0 {
		return s.Capacity
	}
	return DefaultCoworkingCapacity
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.UTC
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}
