package booking

import (
	"errors"
	"time"

	"coworking/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// slot is a parsed and validated (date, interval, type) triple.
type slot struct {
	day         time.Time
	interval    models.TimeInterval
	bookingType models.ResourceType
}

// validateCreateRequest checks the fields of a create request in submission
// order and returns the first failing condition.
func validateCreateRequest(req models.CreateBookingRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewInputError(msgInvalidBooking)
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" || fe.Field() == "Cost" {
			return NewInputError(msgInvalidBooking)
		}
	}
	switch fieldErrs[0].Field() {
	case "Email":
		return NewInputError(msgInvalidEmail)
	case "BookingType":
		return NewInputError(msgInvalidType)
	default:
		return NewInputError(msgInvalidBooking)
	}
}

// parseSlot parses date and clock times, then applies ordering and
// opening-hours rules.
func parseSlot(date, arrival, departure string, t models.ResourceType) (slot, error) {
	day, err := ParseDate(date)
	if err != nil {
		return slot{}, NewInputError(msgInvalidDate)
	}
	iv, err := ParseInterval(arrival, departure)
	if err != nil {
		return slot{}, NewInputError(msgInvalidTime)
	}
	if iv.End <= iv.Start {
		return slot{}, NewBusinessRuleError(msgInvertedInterval)
	}
	if hc := CheckOpeningHours(day, iv); !hc.Valid {
		return slot{}, NewBusinessRuleError(hc.Error)
	}
	return slot{day: day, interval: iv, bookingType: t}, nil
}

// isPast reports whether day is strictly before today in loc.
func isPast(day time.Time, now time.Time, loc *time.Location) bool {
	y, m, d := now.In(loc).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}

// ValidateSlot runs the network-free checks of a slot (date and time
// formats, ordering, opening hours) and returns its interval.
func ValidateSlot(date, arrival, departure string) (models.TimeInterval, error) {
	sl, err := parseSlot(date, arrival, departure, "")
	if err != nil {
		return models.TimeInterval{}, err
	}
	return sl.interval, nil
}
