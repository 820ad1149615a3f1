// File: coworking/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Widget endpoints
	CheckAvailability gin.HandlerFunc
	CreateBooking     gin.HandlerFunc
	Quote             gin.HandlerFunc

	// Admin endpoints
	ListBookings gin.HandlerFunc

	Health gin.HandlerFunc

	// JWTSecret signs admin tokens.
	JWTSecret string
}

// NewHandlerBundle wires the booking and admin handlers into a bundle.
func NewHandlerBundle(bh *BookingHandler, ah *AdminHandler, jwtSecret string) *HandlerBundle {
	return &HandlerBundle{
		CheckAvailability: bh.CheckAvailability,
		CreateBooking:     bh.CreateBooking,
		Quote:             bh.Quote,
		ListBookings:      ah.ListBookingsHandler,
		Health:            HealthHandler,
		JWTSecret:         jwtSecret,
	}
}
