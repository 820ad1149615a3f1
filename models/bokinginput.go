package models

// AvailabilityRequest is the body of a check-availability call. An unknown
// bookingType is answered, not rejected, so it is only required here.
type AvailabilityRequest struct {
	BookingDate   string       `json:"bookingDate" validate:"required"`
	ArrivalTime   string       `json:"arrivalTime" validate:"required"`
	DepartureTime string       `json:"departureTime" validate:"required"`
	BookingType   ResourceType `json:"bookingType" validate:"required"`
}

// CreateBookingRequest is the body of a create-booking call.
// Duration, Cost and PriceDetail are the client's own computation; the server
// recomputes them and persists its values.
type CreateBookingRequest struct {
	FirstName     string       `json:"firstName" validate:"required"`
	LastName      string       `json:"lastName" validate:"required"`
	Email         string       `json:"email" validate:"required,email"`
	BookingDate   string       `json:"bookingDate" validate:"required"`
	ArrivalTime   string       `json:"arrivalTime" validate:"required"`
	DepartureTime string       `json:"departureTime" validate:"required"`
	Duration      float64      `json:"duration"`
	Cost          float64      `json:"cost" validate:"gt=0"`
	PriceDetail   string       `json:"priceDetail"`
	BookingType   ResourceType `json:"bookingType" validate:"required,oneof=coworking meeting_room"`
}

// QuoteRequest asks for the price of an interval without booking it.
type QuoteRequest struct {
	BookingDate   string       `json:"bookingDate" validate:"required"`
	ArrivalTime   string       `json:"arrivalTime" validate:"required"`
	DepartureTime string       `json:"departureTime" validate:"required"`
	BookingType   ResourceType `json:"bookingType" validate:"required,oneof=coworking meeting_room"`
}
