// models/booking_response.go
package models

// CreateBookingResponse is returned with HTTP 201 once a booking is persisted.
type CreateBookingResponse struct {
	Success bool     `json:"success"`
	Booking *Booking `json:"booking"`
}

// QuoteResponse carries the server-side price of an interval.
type QuoteResponse struct {
	Cost          float64 `json:"cost"`
	Detail        string  `json:"detail"`
	DurationHours float64 `json:"durationHours"`
}

// ErrorResponse is the body of every non-2xx booking response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConfirmationPayload is queued after a booking is persisted.
type ConfirmationPayload struct {
	BookingID     string       `json:"bookingId"`
	Email         string       `json:"email"`
	FirstName     string       `json:"firstName"`
	BookingDate   string       `json:"bookingDate"`
	ArrivalTime   string       `json:"arrivalTime"`
	DepartureTime string       `json:"departureTime"`
	BookingType   ResourceType `json:"bookingType"`
	Cost          float64      `json:"cost"`
}
