// Package draft holds the client side of the booking widget: the form state
// as an immutable value, its pure recomputation, the debounced advisory
// availability checker and the HTTP client of the booking API.
package draft

import (
	"coworking/models"
	"coworking/services/booking"
)

// Draft is the booking form as typed so far. Every With method returns a
// modified copy; a Draft is never mutated in place.
type Draft struct {
	FirstName     string
	LastName      string
	Email         string
	BookingDate   string
	ArrivalTime   string
	DepartureTime string
	BookingType   models.ResourceType
}

// New returns an empty coworking draft.
func New() Draft {
	return Draft{BookingType: models.Coworking}
}

func (d Draft) WithFirstName(v string) Draft         { d.FirstName = v; return d }
func (d Draft) WithLastName(v string) Draft          { d.LastName = v; return d }
func (d Draft) WithEmail(v string) Draft             { d.Email = v; return d }
func (d Draft) WithBookingDate(v string) Draft       { d.BookingDate = v; return d }
func (d Draft) WithArrivalTime(v string) Draft       { d.ArrivalTime = v; return d }
func (d Draft) WithDepartureTime(v string) Draft     { d.DepartureTime = v; return d }
func (d Draft) WithType(t models.ResourceType) Draft { d.BookingType = t; return d }

// Quote is what the form displays for a draft.
type Quote struct {
	Cost          float64
	DurationHours float64
	Detail        string
	TimeError     string
}

// Recompute derives the displayed quote from a draft. It is pure: identical
// drafts always yield identical quotes. Until date and both times are set
// the quote is empty; a slot error zeroes the price and sets TimeError.
func Recompute(d Draft) Quote {
	if d.BookingDate == "" || d.ArrivalTime == "" || d.DepartureTime == "" {
		return Quote{}
	}
	iv, err := booking.ValidateSlot(d.BookingDate, d.ArrivalTime, d.DepartureTime)
	if err != nil {
		return Quote{TimeError: booking.PublicMessage(err)}
	}
	pr, err := booking.Price(resourceType(d), iv)
	if err != nil {
		return Quote{TimeError: booking.PublicMessage(err)}
	}
	return Quote{Cost: pr.Cost, DurationHours: booking.DurationHours(iv), Detail: pr.Detail}
}

// Ready reports whether the form may be submitted.
func (d Draft) Ready(q Quote) bool {
	return d.FirstName != "" && d.LastName != "" && d.Email != "" &&
		d.BookingDate != "" && d.ArrivalTime != "" && d.DepartureTime != "" &&
		q.Cost > 0 && q.TimeError == ""
}

// CreateRequest builds the submission payload from a draft and its quote.
func (d Draft) CreateRequest(q Quote) models.CreateBookingRequest {
	return models.CreateBookingRequest{
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		Email:         d.Email,
		BookingDate:   d.BookingDate,
		ArrivalTime:   d.ArrivalTime,
		DepartureTime: d.DepartureTime,
		Duration:      q.DurationHours,
		Cost:          q.Cost,
		PriceDetail:   q.Detail,
		BookingType:   resourceType(d),
	}
}

// AvailabilityRequest builds the advisory check payload of a draft.
func (d Draft) AvailabilityRequest() models.AvailabilityRequest {
	return models.AvailabilityRequest{
		BookingDate:   d.BookingDate,
		ArrivalTime:   d.ArrivalTime,
		DepartureTime: d.DepartureTime,
		BookingType:   resourceType(d),
	}
}

func resourceType(d Draft) models.ResourceType {
	if d.BookingType == "" {
		return models.Coworking
	}
	return d.BookingType
}
